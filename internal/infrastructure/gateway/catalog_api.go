package gateway

import (
	"context"
	"net/http"
)

// Product producto tal como lo expone el order-service en el catálogo público
// y en las rutas de seller.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Quantity    int     `json:"quantity,omitempty"`
	Status      string  `json:"status,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	AddedBy     string  `json:"addedBy,omitempty"`
	ExpiryDate  string  `json:"expiryDate,omitempty"` // YYYY-MM-DD
}

// CatalogAPI catálogo público del storefront; no requiere sesión.
type CatalogAPI struct {
	client *Client
}

func NewCatalogAPI(client *Client) *CatalogAPI {
	return &CatalogAPI{client: client}
}

// Products lista el catálogo completo (GET /order-service/products).
func (a *CatalogAPI) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := a.client.doJSON(ctx, http.MethodGet, "/order-service/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
