package console

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shadows/nblb-console/internal/application/cart"
	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/internal/infrastructure/gateway"
)

type catalogAPI interface {
	Products(ctx context.Context) ([]gateway.Product, error)
}

// ProductsController la vista pública del catálogo: listar y agregar al
// carrito. No requiere sesión: cualquiera puede mirar el catálogo.
type ProductsController struct {
	catalog catalogAPI
	cart    *cart.UseCase
	r       *Renderer
}

func NewProductsController(catalog catalogAPI, cartUC *cart.UseCase, r *Renderer) *ProductsController {
	return &ProductsController{catalog: catalog, cart: cartUC, r: r}
}

// Show lista el catálogo.
func (c *ProductsController) Show(ctx context.Context) {
	c.r.Loading("productos")

	products, err := c.catalog.Products(ctx)
	if err != nil {
		c.r.FetchError("cargar productos", err)
		return
	}
	if len(products) == 0 {
		c.r.Empty("No hay productos disponibles por el momento.")
		return
	}

	now := time.Now()
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Category,
			money(p.Price),
			strconv.Itoa(p.Quantity),
			p.Status,
			string(domain.ClassifyExpiry(p.ExpiryDate, now)),
		})
	}
	c.r.Table([]string{"ID", "NOMBRE", "CATEGORÍA", "PRECIO", "STOCK", "ESTADO", "FRESCURA"}, rows)
}

// Add busca el producto en el catálogo y lo agrega al carrito local.
func (c *ProductsController) Add(ctx context.Context, productID int64) {
	products, err := c.catalog.Products(ctx)
	if err != nil {
		c.r.FetchError("cargar productos", err)
		return
	}

	var found *gateway.Product
	for i := range products {
		if products[i].ID == productID {
			found = &products[i]
			break
		}
	}
	if found == nil {
		c.r.Errorf("producto %d no encontrado en el catálogo", productID)
		return
	}

	count, err := c.cart.Add(domain.CartLine{
		ID:       found.ID,
		Name:     found.Name,
		Price:    found.Price,
		ImageURL: found.ImageURL,
	})
	if err != nil {
		c.r.Errorf("guardar carrito: %v", err)
		return
	}
	c.r.Infof("Producto agregado al carrito (%s, %d %s en total)", found.Name, count, plural(count, "artículo", "artículos"))
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

// formatID helper compartido por las vistas de tabla.
func formatID(id int64) string {
	return fmt.Sprintf("#%d", id)
}
