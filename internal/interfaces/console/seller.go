package console

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shadows/nblb-console/internal/application/guard"
	"github.com/shadows/nblb-console/internal/application/recommend"
	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/internal/infrastructure/gateway"
)

type sellerAPI interface {
	Products(ctx context.Context) ([]gateway.Product, error)
	CreateProduct(ctx context.Context, in gateway.ProductInput) error
	UpdateProduct(ctx context.Context, id int64, in gateway.ProductInput) error
	DeleteProduct(ctx context.Context, id int64) error
	Sales(ctx context.Context) ([]gateway.SaleLine, error)
	Ship(ctx context.Context, orderID int64) error
}

// dashboardPicksLimit cuántos más-vendidos y sugerencias trae el dashboard.
const dashboardPicksLimit = 5

// SellerController el panel del vendedor: dashboard con métricas y
// recomendaciones, CRUD de productos propios, ledger de ventas y envío.
type SellerController struct {
	guard   *guard.Guard
	seller  sellerAPI
	picks   *recommend.Pipeline
	r       *Renderer
	confirm Confirmer
}

func NewSellerController(g *guard.Guard, seller sellerAPI, picks *recommend.Pipeline, r *Renderer, confirm Confirmer) *SellerController {
	return &SellerController{guard: g, seller: seller, picks: picks, r: r, confirm: confirm}
}

func (c *SellerController) guarded() (domain.Session, bool) {
	session, err := c.guard.RequireSeller()
	if err != nil {
		c.r.LoginRedirect()
		return domain.Session{}, false
	}
	return session, true
}

// Dashboard métricas del vendedor más el pipeline de recomendaciones. Cada
// bloque falla por separado: una métrica caída no bloquea el resto.
func (c *SellerController) Dashboard(ctx context.Context) {
	if _, ok := c.guarded(); !ok {
		return
	}
	c.r.Loading("dashboard de vendedor")

	productCount := "0"
	if products, err := c.seller.Products(ctx); err == nil {
		productCount = strconv.Itoa(len(products))
	} else {
		c.r.FetchError("cargar productos", err)
	}

	totalSales := "0.00"
	orderCount := "0"
	if sales, err := c.seller.Sales(ctx); err == nil {
		sum := decimal.Zero
		orders := map[int64]struct{}{}
		for _, line := range sales {
			sum = sum.Add(decimal.NewFromFloat(line.UnitPrice))
			orders[line.OrderID] = struct{}{}
		}
		totalSales = sum.StringFixed(2)
		orderCount = strconv.Itoa(len(orders))
	} else {
		c.r.FetchError("cargar ventas", err)
	}

	c.r.Table([]string{"MÉTRICA", "VALOR"}, [][]string{
		{"Productos publicados", productCount},
		{"Pedidos con ventas", orderCount},
		{"Ventas totales", "$" + totalSales},
	})

	picks := c.picks.DashboardPicks(ctx, dashboardPicksLimit)
	c.renderPicks(picks)
}

func (c *SellerController) renderPicks(picks recommend.Picks) {
	c.r.Infof("Más vendidos:")
	if picks.TopSoldErr != nil || len(picks.TopSold) == 0 {
		c.r.Empty("  Aún no hay datos de ventas.")
	} else {
		rows := make([][]string, 0, len(picks.TopSold))
		for i, item := range picks.TopSold {
			rows = append(rows, []string{
				fmt.Sprintf("#%d", i+1), item.Name, item.Category, money(item.Price),
			})
		}
		c.r.Table([]string{"", "NOMBRE", "CATEGORÍA", "PRECIO"}, rows)
	}

	c.r.Infof("Sugerencias IA:")
	if picks.SuggestErr != nil {
		c.r.Empty("  No se pudieron generar sugerencias.")
		return
	}
	if len(picks.Suggestions) == 0 {
		c.r.Empty("  Sin sugerencias disponibles.")
		return
	}
	for _, name := range picks.Suggestions {
		c.r.Infof("  - %s (considere agregarlo)", name)
	}
}

// Products lista los productos propios del vendedor.
func (c *SellerController) Products(ctx context.Context) {
	if _, ok := c.guarded(); !ok {
		return
	}
	c.r.Loading("productos")

	products, err := c.seller.Products(ctx)
	if err != nil {
		c.r.FetchError("cargar productos", err)
		return
	}
	if len(products) == 0 {
		c.r.Empty("Sin productos. ¡Publique el primero!")
		return
	}

	now := time.Now()
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10), p.Name, p.Category, money(p.Price),
			strconv.Itoa(p.Quantity), p.Status,
			string(domain.ClassifyExpiry(p.ExpiryDate, now)),
		})
	}
	c.r.Table([]string{"ID", "NOMBRE", "CATEGORÍA", "PRECIO", "STOCK", "ESTADO", "FRESCURA"}, rows)
}

// CreateProduct publica un producto firmado con el username del vendedor.
func (c *SellerController) CreateProduct(ctx context.Context, in gateway.ProductInput) {
	session, ok := c.guarded()
	if !ok {
		return
	}
	in.AddedBy = session.Username

	if err := c.seller.CreateProduct(ctx, in); err != nil {
		c.r.FetchError("crear producto", err)
		return
	}
	c.r.Infof("Producto %q publicado.", in.Name)
	c.Products(ctx)
}

func (c *SellerController) UpdateProduct(ctx context.Context, id int64, in gateway.ProductInput) {
	if _, ok := c.guarded(); !ok {
		return
	}
	if err := c.seller.UpdateProduct(ctx, id, in); err != nil {
		c.r.FetchError("actualizar producto", err)
		return
	}
	c.r.Infof("Producto #%d actualizado.", id)
	c.Products(ctx)
}

func (c *SellerController) DeleteProduct(ctx context.Context, id int64) {
	if _, ok := c.guarded(); !ok {
		return
	}
	if !c.confirm(fmt.Sprintf("¿Eliminar el producto #%d?", id)) {
		return
	}
	if err := c.seller.DeleteProduct(ctx, id); err != nil {
		c.r.FetchError("eliminar producto", err)
		return
	}
	c.r.Infof("Producto #%d eliminado.", id)
	c.Products(ctx)
}

// Sales el ledger de ventas, una fila por unidad vendida. La columna ACCIÓN
// marca los pedidos que el vendedor puede despachar.
func (c *SellerController) Sales(ctx context.Context) {
	if _, ok := c.guarded(); !ok {
		return
	}
	c.r.Loading("ventas")

	sales, err := c.seller.Sales(ctx)
	if err != nil {
		c.r.FetchError("cargar ventas", err)
		return
	}
	if len(sales) == 0 {
		c.r.Empty("No se encontraron ventas.")
		return
	}

	rows := make([][]string, 0, len(sales))
	for _, line := range sales {
		action := ""
		if line.OrderStatus.Shippable() {
			action = "enviable (nblb seller ship --order " + strconv.FormatInt(line.OrderID, 10) + ")"
		}
		rows = append(rows, []string{
			formatID(line.OrderID), line.OrderDate, line.BuyerUsername,
			line.ProductName, money(line.UnitPrice), string(line.OrderStatus), action,
		})
	}
	c.r.Table([]string{"PEDIDO", "FECHA", "COMPRADOR", "PRODUCTO", "PRECIO", "ESTADO", "ACCIÓN"}, rows)
}

// Ship marca un pedido como enviado, previa confirmación.
func (c *SellerController) Ship(ctx context.Context, orderID int64) {
	if _, ok := c.guarded(); !ok {
		return
	}
	if !c.confirm(fmt.Sprintf("¿Marcar el pedido #%d como enviado?", orderID)) {
		return
	}
	if err := c.seller.Ship(ctx, orderID); err != nil {
		c.r.FetchError("despachar pedido", err)
		return
	}
	c.r.Infof("Pedido #%d marcado como enviado.", orderID)
	c.Sales(ctx)
}
