package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shadows/nblb-console/internal/application/guard"
	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/internal/infrastructure/gateway"
)

type adminAPI interface {
	Stats(ctx context.Context) (gateway.DashboardStats, error)
	Sellers(ctx context.Context) ([]gateway.SellerSummary, error)
	Products(ctx context.Context) ([]gateway.AdminProduct, error)
	CreateProduct(ctx context.Context, in gateway.ProductInput) error
	UpdateProduct(ctx context.Context, id int64, in gateway.ProductInput) error
	DeleteProduct(ctx context.Context, id int64) error
	Orders(ctx context.Context) ([]gateway.AdminOrder, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

type usersAPI interface {
	ListUsers(ctx context.Context) ([]gateway.User, error)
	CreateUser(ctx context.Context, in gateway.UserInput) error
	UpdateUser(ctx context.Context, id int64, in gateway.UserInput) error
	DeleteUser(ctx context.Context, id int64) error
}

// AdminController el panel de administración: stats, usuarios, vendedores,
// productos y pedidos. Toda acción pasa primero por el guard de ADMIN; las
// destructivas confirman y, en éxito, recargan el listado afectado.
type AdminController struct {
	guard   *guard.Guard
	admin   adminAPI
	users   usersAPI
	r       *Renderer
	confirm Confirmer
}

func NewAdminController(g *guard.Guard, admin adminAPI, users usersAPI, r *Renderer, confirm Confirmer) *AdminController {
	return &AdminController{guard: g, admin: admin, users: users, r: r, confirm: confirm}
}

func (c *AdminController) guarded() bool {
	if _, err := c.guard.RequireAdmin(); err != nil {
		c.r.LoginRedirect()
		return false
	}
	return true
}

// Stats el resumen del dashboard.
func (c *AdminController) Stats(ctx context.Context) {
	if !c.guarded() {
		return
	}
	c.r.Loading("estadísticas")

	stats, err := c.admin.Stats(ctx)
	if err != nil {
		c.r.FetchError("cargar estadísticas", err)
		return
	}
	c.r.Table([]string{"MÉTRICA", "VALOR"}, [][]string{
		{"Usuarios", strconv.FormatInt(stats.TotalUsers, 10)},
		{"Vendedores", strconv.FormatInt(stats.TotalSellers, 10)},
		{"Productos", strconv.FormatInt(stats.TotalProducts, 10)},
		{"Pedidos", strconv.FormatInt(stats.TotalOrders, 10)},
		{"Ingresos", stats.TotalRevenue},
	})
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

func (c *AdminController) Users(ctx context.Context) {
	if !c.guarded() {
		return
	}
	c.r.Loading("usuarios")

	users, err := c.users.ListUsers(ctx)
	if err != nil {
		c.r.FetchError("cargar usuarios", err)
		return
	}
	if len(users) == 0 {
		c.r.Empty("No se encontraron usuarios.")
		return
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{strconv.FormatInt(u.ID, 10), u.Username, u.Email, u.Role})
	}
	c.r.Table([]string{"ID", "USUARIO", "EMAIL", "ROL"}, rows)
}

func (c *AdminController) CreateUser(ctx context.Context, in gateway.UserInput) {
	if !c.guarded() {
		return
	}
	if err := c.users.CreateUser(ctx, in); err != nil {
		c.r.FetchError("crear usuario", err)
		return
	}
	c.r.Infof("Usuario %q creado.", in.Username)
	c.Users(ctx)
}

func (c *AdminController) UpdateUser(ctx context.Context, id int64, in gateway.UserInput) {
	if !c.guarded() {
		return
	}
	if err := c.users.UpdateUser(ctx, id, in); err != nil {
		c.r.FetchError("actualizar usuario", err)
		return
	}
	c.r.Infof("Usuario #%d actualizado.", id)
	c.Users(ctx)
}

func (c *AdminController) DeleteUser(ctx context.Context, id int64, username string) {
	if !c.guarded() {
		return
	}
	if !c.confirm(fmt.Sprintf("¿Eliminar el usuario %q?", username)) {
		return
	}
	if err := c.users.DeleteUser(ctx, id); err != nil {
		c.r.FetchError("eliminar usuario", err)
		return
	}
	c.r.Infof("Usuario %q eliminado.", username)
	c.Users(ctx)
}

// ── Vendedores ────────────────────────────────────────────────────────────────

func (c *AdminController) Sellers(ctx context.Context) {
	if !c.guarded() {
		return
	}
	c.r.Loading("vendedores")

	sellers, err := c.admin.Sellers(ctx)
	if err != nil {
		c.r.FetchError("cargar vendedores", err)
		return
	}
	if len(sellers) == 0 {
		c.r.Empty("No se encontraron vendedores.")
		return
	}

	rows := make([][]string, 0, len(sellers))
	for _, s := range sellers {
		rows = append(rows, []string{s.Username, s.Email, strconv.Itoa(s.ProductCount)})
	}
	c.r.Table([]string{"USUARIO", "EMAIL", "PRODUCTOS"}, rows)
}

// ── Productos ─────────────────────────────────────────────────────────────────

func (c *AdminController) Products(ctx context.Context) {
	if !c.guarded() {
		return
	}
	c.r.Loading("productos")

	products, err := c.admin.Products(ctx)
	if err != nil {
		c.r.FetchError("cargar productos", err)
		return
	}
	if len(products) == 0 {
		c.r.Empty("No se encontraron productos.")
		return
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10), p.Name, p.Seller, p.Category,
			money(p.Price), strconv.Itoa(p.Stock), p.Status,
		})
	}
	c.r.Table([]string{"ID", "NOMBRE", "VENDEDOR", "CATEGORÍA", "PRECIO", "STOCK", "ESTADO"}, rows)
}

func (c *AdminController) CreateProduct(ctx context.Context, in gateway.ProductInput) {
	if !c.guarded() {
		return
	}
	if err := c.admin.CreateProduct(ctx, in); err != nil {
		c.r.FetchError("crear producto", err)
		return
	}
	c.r.Infof("Producto %q creado.", in.Name)
	c.Products(ctx)
}

func (c *AdminController) UpdateProduct(ctx context.Context, id int64, in gateway.ProductInput) {
	if !c.guarded() {
		return
	}
	if err := c.admin.UpdateProduct(ctx, id, in); err != nil {
		c.r.FetchError("actualizar producto", err)
		return
	}
	c.r.Infof("Producto #%d actualizado.", id)
	c.Products(ctx)
}

func (c *AdminController) DeleteProduct(ctx context.Context, id int64) {
	if !c.guarded() {
		return
	}
	if !c.confirm(fmt.Sprintf("¿Eliminar el producto #%d?", id)) {
		return
	}
	if err := c.admin.DeleteProduct(ctx, id); err != nil {
		c.r.FetchError("eliminar producto", err)
		return
	}
	c.r.Infof("Producto #%d eliminado.", id)
	c.Products(ctx)
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

func (c *AdminController) Orders(ctx context.Context) {
	if !c.guarded() {
		return
	}
	c.r.Loading("pedidos")

	orders, err := c.admin.Orders(ctx)
	if err != nil {
		c.r.FetchError("cargar pedidos", err)
		return
	}
	if len(orders) == 0 {
		c.r.Empty("No se encontraron pedidos.")
		return
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		products := ""
		if len(o.Products) > 0 {
			products = o.Products[0]
			if len(o.Products) > 1 {
				products += fmt.Sprintf(" (+%d)", len(o.Products)-1)
			}
		}
		rows = append(rows, []string{
			strconv.FormatInt(o.ID, 10), o.Customer, o.Date,
			money(o.Total), string(o.Status), products,
		})
	}
	c.r.Table([]string{"ID", "CLIENTE", "FECHA", "TOTAL", "ESTADO", "PRODUCTOS"}, rows)
}

// SetOrderStatus fuerza el estado de un pedido y recarga el listado.
func (c *AdminController) SetOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) {
	if !c.guarded() {
		return
	}
	if err := c.admin.UpdateOrderStatus(ctx, id, status); err != nil {
		c.r.FetchError("actualizar estado del pedido", err)
		return
	}
	c.r.Infof("Pedido #%d ahora en estado %s.", id, status)
	c.Orders(ctx)
}
