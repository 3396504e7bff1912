package console

import (
	"context"
	"strconv"

	"github.com/shadows/nblb-console/internal/application/guard"
	"github.com/shadows/nblb-console/internal/infrastructure/gateway"
)

type clientRecsAPI interface {
	ForClient(ctx context.Context) ([]gateway.Product, error)
}

// RecommendationsController los picks personalizados del comprador. Sin
// sesión se deja el mensaje por defecto: esta vista nunca redirige.
type RecommendationsController struct {
	guard *guard.Guard
	recs  clientRecsAPI
	r     *Renderer
}

func NewRecommendationsController(g *guard.Guard, recs clientRecsAPI, r *Renderer) *RecommendationsController {
	return &RecommendationsController{guard: g, recs: recs, r: r}
}

// Show lista las recomendaciones; la primera fila es el "más comprado".
func (c *RecommendationsController) Show(ctx context.Context) {
	if _, err := c.guard.Require(); err != nil {
		c.r.Empty("Inicie sesión para ver recomendaciones personalizadas.")
		return
	}

	c.r.Loading("recomendaciones (consultando IA)")

	products, err := c.recs.ForClient(ctx)
	if err != nil {
		c.r.FetchError("cargar recomendaciones", err)
		return
	}
	if len(products) == 0 {
		c.r.Empty("Sin recomendaciones por ahora. ¡Pruebe comprar algo primero!")
		return
	}

	rows := make([][]string, 0, len(products))
	for i, p := range products {
		badge := "Recomendado"
		if i == 0 {
			badge = "Su favorito"
		}
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Category,
			money(p.Price),
			badge,
		})
	}
	c.r.Table([]string{"ID", "NOMBRE", "CATEGORÍA", "PRECIO", ""}, rows)
}
