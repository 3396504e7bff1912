package console

import (
	"context"
	"strconv"

	"github.com/shadows/nblb-console/internal/application/guard"
	"github.com/shadows/nblb-console/internal/infrastructure/gateway"
)

type myOrdersAPI interface {
	MyOrders(ctx context.Context) ([]gateway.MyOrder, error)
}

// OrdersController la vista "mis pedidos" del comprador.
type OrdersController struct {
	guard  *guard.Guard
	orders myOrdersAPI
	r      *Renderer
}

func NewOrdersController(g *guard.Guard, orders myOrdersAPI, r *Renderer) *OrdersController {
	return &OrdersController{guard: g, orders: orders, r: r}
}

// Show lista los pedidos del usuario autenticado.
func (c *OrdersController) Show(ctx context.Context) {
	if _, err := c.guard.Require(); err != nil {
		c.r.LoginRedirect()
		return
	}

	c.r.Loading("pedidos")

	orders, err := c.orders.MyOrders(ctx)
	if err != nil {
		c.r.FetchError("cargar pedidos", err)
		return
	}
	if len(orders) == 0 {
		c.r.Empty("No se encontraron pedidos.")
		return
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			strconv.FormatInt(o.ID, 10),
			o.OrderDate,
			money(o.Total),
			string(o.Status),
			o.Status.Badge(),
		})
	}
	c.r.Table([]string{"ID", "FECHA", "TOTAL", "ESTADO", "BADGE"}, rows)
}
