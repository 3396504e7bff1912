package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shadows/nblb-console/internal/domain"
)

// OrderAPI checkout, pedidos propios y descuento de stock post-pago.
type OrderAPI struct {
	client *Client
}

func NewOrderAPI(client *Client) *OrderAPI {
	return &OrderAPI{client: client}
}

// CheckoutItem línea del carrito en el formato del body de checkout.
type CheckoutItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// PaymentRef referencia que el checkout entrega a la vista de pago.
type PaymentRef struct {
	OrderID int64
	Amount  float64
}

// checkoutResponse con punteros: distingue campo ausente de valor cero para
// poder rechazar respuestas 2xx incompletas.
type checkoutResponse struct {
	OrderID *int64   `json:"orderId"`
	Total   *float64 `json:"total"`
}

// Checkout crea el pedido a partir de las líneas del carrito. Una respuesta
// 2xx sin orderId o sin total numérico cuenta como checkout fallido: el caller
// NO debe vaciar el carrito en ese caso.
func (a *OrderAPI) Checkout(ctx context.Context, items []CheckoutItem, total float64) (PaymentRef, error) {
	body := map[string]any{"items": items, "total": total}
	var resp checkoutResponse
	if err := a.client.doJSON(ctx, http.MethodPost, "/order-service/api/checkout", body, &resp); err != nil {
		return PaymentRef{}, err
	}
	if resp.OrderID == nil || resp.Total == nil {
		return PaymentRef{}, fmt.Errorf("%w: checkout sin orderId o total", domain.ErrInvalidResponse)
	}
	return PaymentRef{OrderID: *resp.OrderID, Amount: *resp.Total}, nil
}

// MyOrder pedido propio tal como lo lista GET /order-service/api/orders/me.
type MyOrder struct {
	ID        int64              `json:"id"`
	OrderDate string             `json:"orderDate"`
	Total     float64            `json:"total"`
	Status    domain.OrderStatus `json:"status"`
}

func (a *OrderAPI) MyOrders(ctx context.Context) ([]MyOrder, error) {
	var orders []MyOrder
	err := a.client.doJSON(ctx, http.MethodGet, "/order-service/api/orders/me", nil, &orders)
	return orders, err
}

// StockItem descuento de inventario de un producto tras el pago.
type StockItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// ReduceStock descuenta stock post-pago (POST /order-service/api/reduce-stock).
func (a *OrderAPI) ReduceStock(ctx context.Context, items []StockItem) error {
	body := map[string]any{"items": items}
	return a.client.doJSON(ctx, http.MethodPost, "/order-service/api/reduce-stock", body, nil)
}
