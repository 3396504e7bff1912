package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// RecommendationAPI recomendaciones para clientes y el pipeline de sugerencias
// del vendedor.
type RecommendationAPI struct {
	client *Client
}

func NewRecommendationAPI(client *Client) *RecommendationAPI {
	return &RecommendationAPI{client: client}
}

// ForClient picks personalizados del cliente autenticado; el primero de la
// lista es su "más comprado".
func (a *RecommendationAPI) ForClient(ctx context.Context) ([]Product, error) {
	var products []Product
	err := a.client.doJSON(ctx, http.MethodGet, "/api/recommendations", nil, &products)
	return products, err
}

// TopSoldItem producto más vendido del vendedor.
type TopSoldItem struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

// TopSold los más vendidos del vendedor autenticado.
func (a *RecommendationAPI) TopSold(ctx context.Context, limit int) ([]TopSoldItem, error) {
	var items []TopSoldItem
	path := fmt.Sprintf("/api/seller/recommendations/top-sold?limit=%d", limit)
	err := a.client.doJSON(ctx, http.MethodGet, path, nil, &items)
	return items, err
}

// Suggest pide sugerencias de productos nuevos a partir de los más vendidos.
// El backend responde `{suggestions: [...], basedOn: [...], count: N}` o, en
// versiones viejas, el array pelado; se aceptan ambas formas.
func (a *RecommendationAPI) Suggest(ctx context.Context, topSold []TopSoldItem, limit int) ([]string, error) {
	if topSold == nil {
		topSold = []TopSoldItem{}
	}
	body := map[string]any{"topSoldItems": topSold, "limit": limit}

	var raw json.RawMessage
	if err := a.client.doJSON(ctx, http.MethodPost, "/api/seller/recommendations/suggest-products", body, &raw); err != nil {
		return nil, err
	}

	var wrapped struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Suggestions != nil {
		return wrapped.Suggestions, nil
	}
	var bare []string
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}
	return nil, nil
}
