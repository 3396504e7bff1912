package console

import (
	"context"
	"errors"
	"strconv"

	"github.com/shadows/nblb-console/internal/application/cart"
	"github.com/shadows/nblb-console/internal/application/guard"
	"github.com/shadows/nblb-console/internal/domain"
)

// CartController vista del carrito: listar, ajustar cantidades, quitar líneas
// y lanzar el checkout.
type CartController struct {
	guard *guard.Guard
	cart  *cart.UseCase
	r     *Renderer
}

func NewCartController(g *guard.Guard, cartUC *cart.UseCase, r *Renderer) *CartController {
	return &CartController{guard: g, cart: cartUC, r: r}
}

// Show imprime el carrito vigente con subtotales y total.
func (c *CartController) Show() {
	lines := c.cart.View()
	if len(lines) == 0 {
		c.r.Empty("El carrito está vacío.")
		return
	}

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		subtotal, _ := line.Subtotal().Float64()
		rows = append(rows, []string{
			strconv.FormatInt(line.ID, 10),
			line.Name,
			money(line.Price),
			strconv.Itoa(line.Quantity),
			money(subtotal),
		})
	}
	c.r.Table([]string{"ID", "PRODUCTO", "PRECIO", "CANT", "SUBTOTAL"}, rows)

	total, _ := c.cart.Total().Float64()
	c.r.Infof("Total: %s (%d artículos)", money(total), c.cart.Count())
}

// SetQuantity ajusta una línea y refresca la vista.
func (c *CartController) SetQuantity(id int64, qty int) {
	if err := c.cart.SetQuantity(id, qty); err != nil {
		c.r.Errorf("actualizar carrito: %v", err)
		return
	}
	c.Show()
}

// Remove quita una línea y refresca la vista.
func (c *CartController) Remove(id int64) {
	if err := c.cart.Remove(id); err != nil {
		c.r.Errorf("actualizar carrito: %v", err)
		return
	}
	c.Show()
}

// Checkout requiere sesión (cualquier rol con token alcanza) y convierte el
// carrito en pedido. En éxito deja impresa la referencia para la vista de
// pago.
func (c *CartController) Checkout(ctx context.Context) {
	if _, err := c.guard.Require(); err != nil {
		c.r.LoginRedirect()
		return
	}

	ref, err := c.cart.Checkout(ctx)
	if errors.Is(err, domain.ErrEmptyCart) {
		c.r.Empty("El carrito está vacío.")
		return
	}
	if err != nil {
		c.r.FetchError("checkout", err)
		return
	}

	c.r.Infof("Pedido #%d creado por %s.", ref.OrderID, money(ref.Amount))
	c.r.Infof("Continúe con: nblb pay --order %d --amount %s", ref.OrderID, money(ref.Amount))
}
