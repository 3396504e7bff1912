package mockgw

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/shadows/nblb-console/internal/domain"
)

// OrderHandler maneja checkout, pedidos, ventas, envíos y el dashboard admin.
type OrderHandler struct {
	store *Store
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(store *Store) *OrderHandler {
	return &OrderHandler{store: store}
}

type checkoutRequest struct {
	Items []struct {
		ProductID int64   `json:"productId"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Quantity  int     `json:"quantity"`
	} `json:"items"`
	Total float64 `json:"total"`
}

// Checkout crea un pedido PENDING a partir de las líneas del carrito. El total
// del cliente se ignora: el del pedido siempre se recalcula del lado del
// servidor a partir de las líneas.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var in checkoutRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if len(in.Items) == 0 {
		return errorJSON(c, fiber.StatusBadRequest, "el carrito está vacío")
	}

	items := make([]OrderItem, 0, len(in.Items))
	total := decimal.Zero
	for _, it := range in.Items {
		if it.ProductID <= 0 || it.Quantity <= 0 {
			return errorJSON(c, fiber.StatusBadRequest, "línea de pedido inválida")
		}
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
		})
		total = total.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	totalF, _ := total.Round(2).Float64()
	order := h.store.CreateOrder(GetUsername(c), items, totalF)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"orderId": order.ID,
		"total":   order.Total,
	})
}

// MyOrders pedidos del usuario autenticado.
func (h *OrderHandler) MyOrders(c *fiber.Ctx) error {
	orders := h.store.OrdersBy(GetUsername(c))
	out := make([]fiber.Map, 0, len(orders))
	for _, o := range orders {
		out = append(out, fiber.Map{
			"id":        o.ID,
			"orderDate": o.Date.Format("2006-01-02"),
			"total":     o.Total,
			"status":    o.Status,
		})
	}
	return c.JSON(out)
}

type reduceStockRequest struct {
	Items []struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	} `json:"items"`
}

// ReduceStock descuenta inventario tras un pago exitoso.
func (h *OrderHandler) ReduceStock(c *fiber.Ctx) error {
	var in reduceStockRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	for _, it := range in.Items {
		h.store.ReduceStock(it.ProductID, it.Quantity)
	}
	return c.JSON(fiber.Map{"message": "stock actualizado"})
}

// ── Rutas de seller ───────────────────────────────────────────────────────────

// SellerSales líneas de venta del seller: una fila por producto vendido, no
// por pedido, porque un pedido puede mezclar productos de varios vendedores.
func (h *OrderHandler) SellerSales(c *fiber.Ctx) error {
	seller := GetUsername(c)
	owned := map[int64]struct{}{}
	for _, p := range h.store.ProductsBy(seller) {
		owned[p.ID] = struct{}{}
	}

	out := []fiber.Map{}
	for _, o := range h.store.Orders() {
		for _, item := range o.Items {
			if _, ok := owned[item.ProductID]; !ok {
				continue
			}
			out = append(out, fiber.Map{
				"orderId":       o.ID,
				"orderDate":     o.Date.Format("2006-01-02"),
				"buyerUsername": o.Username,
				"productName":   item.Name,
				"unitPrice":     item.UnitPrice,
				"orderStatus":   o.Status,
			})
		}
	}
	return c.JSON(out)
}

// SellerShip marca un pedido como SHIPPED. Solo es válido desde PAID o
// WAITING_DELIVERY; cualquier otro estado responde 409.
func (h *OrderHandler) SellerShip(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "id inválido")
	}
	order, err := h.store.ShipOrder(int64(id))
	if err != nil {
		return errorJSON(c, fiber.StatusConflict, err.Error())
	}
	return c.JSON(fiber.Map{"message": "pedido despachado", "status": order.Status})
}

// ── Rutas de admin ────────────────────────────────────────────────────────────

// AdminStats métricas agregadas del dashboard. El revenue viaja ya formateado
// como moneda, igual que lo muestra el panel.
func (h *OrderHandler) AdminStats(c *fiber.Ctx) error {
	users, sellers, orders, products := h.store.Counts()
	return c.JSON(fiber.Map{
		"totalUsers":    users,
		"totalSellers":  sellers,
		"totalOrders":   orders,
		"totalRevenue":  fmt.Sprintf("$%.2f", h.store.Revenue()),
		"totalProducts": products,
	})
}

// AdminOrders todos los pedidos, con los nombres de producto por fila.
func (h *OrderHandler) AdminOrders(c *fiber.Ctx) error {
	orders := h.store.Orders()
	out := make([]fiber.Map, 0, len(orders))
	for _, o := range orders {
		names := make([]string, 0, len(o.Items))
		for _, item := range o.Items {
			names = append(names, item.Name)
		}
		out = append(out, fiber.Map{
			"id":       o.ID,
			"customer": o.Username,
			"date":     o.Date.Format("2006-01-02"),
			"total":    o.Total,
			"status":   o.Status,
			"products": names,
		})
	}
	return c.JSON(out)
}

type statusRequest struct {
	Status string `json:"status"`
}

// AdminSetOrderStatus transición directa de estado. El admin puede forzar
// cualquier estado conocido.
func (h *OrderHandler) AdminSetOrderStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "id inválido")
	}
	var in statusRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	status := domain.OrderStatus(in.Status)
	switch status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusPaid,
		domain.StatusWaitingDelivery, domain.StatusShipped,
		domain.StatusDelivered, domain.StatusCancelled:
	default:
		return errorJSON(c, fiber.StatusBadRequest, "estado desconocido: "+in.Status)
	}
	if !h.store.SetOrderStatus(int64(id), status) {
		return errorJSON(c, fiber.StatusNotFound, fmt.Sprintf("pedido %d no encontrado", id))
	}
	return c.JSON(fiber.Map{"message": "estado actualizado", "status": status})
}
