package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shadows/nblb-console/internal/domain"
)

// SellerAPI rutas /order-service/api/seller/* (requieren rol SELLER).
type SellerAPI struct {
	client *Client
}

func NewSellerAPI(client *Client) *SellerAPI {
	return &SellerAPI{client: client}
}

// SaleLine una unidad vendida dentro de un pedido, tal como la reporta el
// ledger de ventas del vendedor.
type SaleLine struct {
	OrderID       int64              `json:"orderId"`
	OrderDate     string             `json:"orderDate"`
	BuyerUsername string             `json:"buyerUsername"`
	ProductName   string             `json:"productName"`
	UnitPrice     float64            `json:"unitPrice"`
	OrderStatus   domain.OrderStatus `json:"orderStatus"`
}

// Products lista los productos propios del vendedor autenticado.
func (a *SellerAPI) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	err := a.client.doJSON(ctx, http.MethodGet, "/order-service/api/seller/products", nil, &products)
	return products, err
}

func (a *SellerAPI) CreateProduct(ctx context.Context, in ProductInput) error {
	return a.client.doJSON(ctx, http.MethodPost, "/order-service/api/seller/products", in, nil)
}

func (a *SellerAPI) UpdateProduct(ctx context.Context, id int64, in ProductInput) error {
	return a.client.doJSON(ctx, http.MethodPut, fmt.Sprintf("/order-service/api/seller/products/%d", id), in, nil)
}

func (a *SellerAPI) DeleteProduct(ctx context.Context, id int64) error {
	return a.client.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/order-service/api/seller/products/%d", id), nil, nil)
}

// Sales ledger de ventas del vendedor: una línea por unidad vendida.
func (a *SellerAPI) Sales(ctx context.Context) ([]SaleLine, error) {
	var sales []SaleLine
	err := a.client.doJSON(ctx, http.MethodGet, "/order-service/api/seller/sales", nil, &sales)
	return sales, err
}

// Ship marca un pedido como enviado (PUT .../orders/:id/ship).
func (a *SellerAPI) Ship(ctx context.Context, orderID int64) error {
	return a.client.doJSON(ctx, http.MethodPut, fmt.Sprintf("/order-service/api/seller/orders/%d/ship", orderID), nil, nil)
}
