package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shadows/nblb-console/internal/domain"
)

// AdminAPI rutas /order-service/api/admin/* (requieren rol ADMIN).
type AdminAPI struct {
	client *Client
}

func NewAdminAPI(client *Client) *AdminAPI {
	return &AdminAPI{client: client}
}

// DashboardStats métricas agregadas del panel admin. TotalRevenue llega
// pre-formateado por el backend ("$123.45").
type DashboardStats struct {
	TotalUsers    int64  `json:"totalUsers"`
	TotalSellers  int64  `json:"totalSellers"`
	TotalOrders   int64  `json:"totalOrders"`
	TotalRevenue  string `json:"totalRevenue"`
	TotalProducts int64  `json:"totalProducts"`
}

// AdminProduct vista de producto del panel admin; usa `seller` y `stock` en
// lugar de `addedBy` y `quantity` (así lo expone el backend, y así se queda).
type AdminProduct struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Seller   string  `json:"seller"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Status   string  `json:"status"`
}

// SellerSummary fila del listado de vendedores.
type SellerSummary struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProductCount int    `json:"productCount"`
}

// AdminOrder pedido con los campos agregados que arma el backend para el panel.
type AdminOrder struct {
	ID       int64              `json:"id"`
	Customer string             `json:"customer"`
	Date     string             `json:"date"`
	Total    float64            `json:"total"`
	Status   domain.OrderStatus `json:"status"`
	Products []string           `json:"products"`
}

// ProductInput payload de creación/actualización de producto.
type ProductInput struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Category   string  `json:"category"`
	Quantity   int     `json:"quantity"`
	Status     string  `json:"status,omitempty"`
	AddedBy    string  `json:"addedBy,omitempty"`
	ImageURL   string  `json:"imageUrl,omitempty"`
	ExpiryDate string  `json:"expiryDate,omitempty"`
}

func (a *AdminAPI) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	err := a.client.doJSON(ctx, http.MethodGet, "/order-service/api/admin/dashboard/stats", nil, &stats)
	return stats, err
}

func (a *AdminAPI) Sellers(ctx context.Context) ([]SellerSummary, error) {
	var sellers []SellerSummary
	err := a.client.doJSON(ctx, http.MethodGet, "/order-service/api/admin/sellers", nil, &sellers)
	return sellers, err
}

func (a *AdminAPI) Products(ctx context.Context) ([]AdminProduct, error) {
	var products []AdminProduct
	err := a.client.doJSON(ctx, http.MethodGet, "/order-service/api/admin/products", nil, &products)
	return products, err
}

func (a *AdminAPI) CreateProduct(ctx context.Context, in ProductInput) error {
	return a.client.doJSON(ctx, http.MethodPost, "/order-service/api/admin/products", in, nil)
}

func (a *AdminAPI) UpdateProduct(ctx context.Context, id int64, in ProductInput) error {
	return a.client.doJSON(ctx, http.MethodPut, fmt.Sprintf("/order-service/api/admin/products/%d", id), in, nil)
}

func (a *AdminAPI) DeleteProduct(ctx context.Context, id int64) error {
	return a.client.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/order-service/api/admin/products/%d", id), nil, nil)
}

func (a *AdminAPI) Orders(ctx context.Context) ([]AdminOrder, error) {
	var orders []AdminOrder
	err := a.client.doJSON(ctx, http.MethodGet, "/order-service/api/admin/orders", nil, &orders)
	return orders, err
}

// UpdateOrderStatus fuerza el estado de un pedido (PUT .../orders/:id/status).
func (a *AdminAPI) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	return a.client.doJSON(ctx, http.MethodPut, fmt.Sprintf("/order-service/api/admin/orders/%d/status", id), body, nil)
}
