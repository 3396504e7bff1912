// Package cart caso de uso del carrito: mutaciones con persistencia
// read-modify-write y el checkout que lo convierte en pedido.
package cart

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/internal/domain/repository"
	"github.com/shadows/nblb-console/internal/infrastructure/gateway"
	"github.com/shadows/nblb-console/pkg/logger"
)

// CheckoutAPI puerto hacia el order-service; lo implementa gateway.OrderAPI.
type CheckoutAPI interface {
	Checkout(ctx context.Context, items []gateway.CheckoutItem, total float64) (gateway.PaymentRef, error)
}

// UseCase operaciones del carrito. Cada mutación carga la secuencia completa,
// la transforma con las operaciones puras de domain.Cart y la persiste.
type UseCase struct {
	carts   repository.CartRepository
	pending repository.PendingOrderRepository
	orders  CheckoutAPI
	log     *logger.Logger
}

func NewUseCase(carts repository.CartRepository, pending repository.PendingOrderRepository, orders CheckoutAPI, log *logger.Logger) *UseCase {
	return &UseCase{carts: carts, pending: pending, orders: orders, log: log}
}

// View devuelve la secuencia actual de líneas.
func (uc *UseCase) View() domain.Cart {
	return uc.carts.Load()
}

// Add agrega el producto (o incrementa su cantidad) y devuelve el count
// actualizado para el badge.
func (uc *UseCase) Add(item domain.CartLine) (int, error) {
	cart := uc.carts.Load().Add(item)
	if err := uc.carts.Save(cart); err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

// Remove elimina la línea; no-op si el id no está.
func (uc *UseCase) Remove(id int64) error {
	return uc.carts.Save(uc.carts.Load().Remove(id))
}

// SetQuantity fija la cantidad; qty <= 0 elimina la línea.
func (uc *UseCase) SetQuantity(id int64, qty int) error {
	return uc.carts.Save(uc.carts.Load().SetQuantity(id, qty))
}

// Total suma precio×cantidad del carrito vigente.
func (uc *UseCase) Total() decimal.Decimal {
	return uc.carts.Load().Total()
}

// Count suma de cantidades del carrito vigente.
func (uc *UseCase) Count() int {
	return uc.carts.Load().Count()
}

// Clear vacía el carrito.
func (uc *UseCase) Clear() error {
	return uc.carts.Clear()
}

// Checkout envía el carrito al order-service. Solo si el backend confirma con
// un orderId y un total válidos se vacía el carrito; cualquier fallo (incluida
// una respuesta 2xx incompleta) lo deja intacto. Las líneas compradas quedan
// guardadas como compra pendiente para que el pago descuente el stock.
func (uc *UseCase) Checkout(ctx context.Context) (gateway.PaymentRef, error) {
	cart := uc.carts.Load()
	if len(cart) == 0 {
		return gateway.PaymentRef{}, domain.ErrEmptyCart
	}

	items := make([]gateway.CheckoutItem, 0, len(cart))
	for _, line := range cart {
		items = append(items, gateway.CheckoutItem{
			ProductID: line.ID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	total, _ := cart.Total().Float64()
	ref, err := uc.orders.Checkout(ctx, items, total)
	if err != nil {
		return gateway.PaymentRef{}, err
	}

	if err := uc.pending.Save(cart); err != nil {
		// Sin la foto, el pago no podrá descontar stock; el pedido igual existe.
		uc.log.Warn().Err(err).Int64("order_id", ref.OrderID).Msg("no se pudo guardar la compra pendiente")
	}
	if err := uc.carts.Clear(); err != nil {
		// El pedido ya existe en el backend; el carrito huérfano solo se loguea.
		uc.log.Warn().Err(err).Int64("order_id", ref.OrderID).Msg("no se pudo vaciar el carrito tras el checkout")
	}
	uc.log.Info().Int64("order_id", ref.OrderID).Float64("amount", ref.Amount).Msg("checkout confirmado")
	return ref, nil
}
