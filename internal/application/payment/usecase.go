// Package payment caso de uso del pago: procesa el cobro y, como mejor
// esfuerzo, descuenta el stock de la compra pendiente que dejó el checkout.
package payment

import (
	"context"
	"fmt"

	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/internal/domain/repository"
	"github.com/shadows/nblb-console/internal/infrastructure/gateway"
	"github.com/shadows/nblb-console/pkg/logger"
)

// DefaultMethod método de pago cuando el usuario no indica uno.
const DefaultMethod = "CARD"

// ProcessorAPI puerto hacia el payment-service.
type ProcessorAPI interface {
	Process(ctx context.Context, orderID int64, amount float64, method string) error
}

// StockAPI puerto del descuento de inventario post-pago.
type StockAPI interface {
	ReduceStock(ctx context.Context, items []gateway.StockItem) error
}

// UseCase flujo de pago completo.
type UseCase struct {
	payments ProcessorAPI
	stock    StockAPI
	pending  repository.PendingOrderRepository
	log      *logger.Logger
}

func NewUseCase(payments ProcessorAPI, stock StockAPI, pending repository.PendingOrderRepository, log *logger.Logger) *UseCase {
	return &UseCase{payments: payments, stock: stock, pending: pending, log: log}
}

// Pay cobra el pedido y después intenta el descuento de stock con la compra
// pendiente que dejó el checkout. El pago manda: si el descuento falla se
// loguea y el flujo sigue; la compra pendiente se consume igual una vez
// cobrado, y el carrito vigente no se toca.
func (uc *UseCase) Pay(ctx context.Context, orderID int64, amount float64, method string) error {
	if orderID <= 0 || amount <= 0 {
		return fmt.Errorf("%w: referencia de pago incompleta", domain.ErrInvalidInput)
	}
	if method == "" {
		method = DefaultMethod
	}

	if err := uc.payments.Process(ctx, orderID, amount, method); err != nil {
		return err
	}

	if lines := uc.pending.Load(); len(lines) > 0 {
		items := make([]gateway.StockItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, gateway.StockItem{ProductID: line.ID, Quantity: line.Quantity})
		}
		if err := uc.stock.ReduceStock(ctx, items); err != nil {
			uc.log.Warn().Err(err).Int64("order_id", orderID).Msg("descuento de stock falló tras un pago exitoso")
		}
	}

	if err := uc.pending.Clear(); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo limpiar la compra pendiente tras el pago")
	}

	uc.log.Info().Int64("order_id", orderID).Float64("amount", amount).Str("method", method).Msg("pago procesado")
	return nil
}
