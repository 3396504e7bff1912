package mockgw

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RecommendationHandler picks de cliente y el pipeline de sugerencias del
// vendedor. Las sugerencias salen de una heurística por categoría: suficiente
// para ejercitar el flujo completo de dos pasos desde la consola.
type RecommendationHandler struct {
	store *Store
}

// NewRecommendationHandler construye el handler de recomendaciones.
func NewRecommendationHandler(store *Store) *RecommendationHandler {
	return &RecommendationHandler{store: store}
}

const defaultRecommendationLimit = 5

// ForClient productos ordenados por lo que el usuario más compró; el catálogo
// completa la lista si el historial no alcanza.
func (h *RecommendationHandler) ForClient(c *fiber.Ctx) error {
	products := h.store.MostBoughtBy(GetUsername(c), defaultRecommendationLimit)
	if products == nil {
		products = []Product{}
	}
	return c.JSON(products)
}

// TopSold los más vendidos del seller autenticado, por unidades.
func (h *RecommendationHandler) TopSold(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultRecommendationLimit)
	items := h.store.TopSoldBy(GetUsername(c), limit)
	out := make([]fiber.Map, 0, len(items))
	for _, p := range items {
		out = append(out, fiber.Map{
			"id":       p.ID,
			"name":     p.Name,
			"category": p.Category,
			"price":    p.Price,
		})
	}
	return c.JSON(out)
}

type suggestRequest struct {
	TopSoldItems []struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	} `json:"topSoldItems"`
	Limit int `json:"limit"`
}

// Ideas de producto por categoría, para variar las sugerencias según lo que el
// seller ya vende.
var suggestionsByCategory = map[string][]string{
	"FRUTAS":   {"Mango Tommy", "Papaya maradol", "Uva isabella"},
	"VERDURAS": {"Espinaca baby", "Zanahoria orgánica", "Brócoli fresco"},
	"LACTEOS":  {"Yogurt griego natural", "Queso campesino", "Kumis artesanal"},
	"GRANOS":   {"Lenteja premium", "Garbanzo seleccionado", "Quinua blanca"},
}

var genericSuggestions = []string{
	"Miel de abejas pura",
	"Café de origen tostado",
	"Panela pulverizada",
	"Chocolate de mesa",
	"Arepas precocidas",
}

// Suggest propone nombres de productos nuevos a partir de los más vendidos.
func (h *RecommendationHandler) Suggest(c *fiber.Ctx) error {
	var in suggestRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	selling := map[string]struct{}{}
	var suggestions []string
	for _, item := range in.TopSoldItems {
		selling[strings.ToUpper(strings.TrimSpace(item.Name))] = struct{}{}
		for _, name := range suggestionsByCategory[strings.ToUpper(strings.TrimSpace(item.Category))] {
			suggestions = appendUnique(suggestions, selling, name)
		}
	}
	for _, name := range genericSuggestions {
		suggestions = appendUnique(suggestions, selling, name)
	}
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	basedOn := make([]string, 0, len(in.TopSoldItems))
	for _, item := range in.TopSoldItems {
		basedOn = append(basedOn, item.Name)
	}
	return c.JSON(fiber.Map{
		"suggestions": suggestions,
		"basedOn":     basedOn,
		"count":       len(suggestions),
	})
}

// appendUnique agrega name si no está ya sugerido ni en venta.
func appendUnique(list []string, seen map[string]struct{}, name string) []string {
	key := strings.ToUpper(name)
	if _, ok := seen[key]; ok {
		return list
	}
	seen[key] = struct{}{}
	return append(list, name)
}
