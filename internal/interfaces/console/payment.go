package console

import (
	"context"
	"errors"

	"github.com/shadows/nblb-console/internal/application/guard"
	"github.com/shadows/nblb-console/internal/application/payment"
	"github.com/shadows/nblb-console/internal/domain"
)

// PaymentController la vista de pago. La referencia (order, amount) llega por
// flags, tal como la dejó impresa el checkout.
type PaymentController struct {
	guard    *guard.Guard
	payments *payment.UseCase
	r        *Renderer
}

func NewPaymentController(g *guard.Guard, payments *payment.UseCase, r *Renderer) *PaymentController {
	return &PaymentController{guard: g, payments: payments, r: r}
}

// Pay procesa el cobro. Una referencia incompleta manda de vuelta al carrito,
// no muestra un banner de error.
func (c *PaymentController) Pay(ctx context.Context, orderID int64, amount float64, method string) {
	if _, err := c.guard.Require(); err != nil {
		c.r.LoginRedirect()
		return
	}

	err := c.payments.Pay(ctx, orderID, amount, method)
	switch {
	case err == nil:
		c.r.Infof("Pago del pedido #%d registrado.", orderID)
		c.r.Infof("Vea sus pedidos con: nblb orders")
	case errors.Is(err, domain.ErrInvalidInput):
		c.r.Infof("Referencia de pago incompleta. Vuelva al carrito con: nblb cart")
	default:
		c.r.FetchError("procesar pago", err)
	}
}
