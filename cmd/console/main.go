// La consola NBLB: cliente de terminal para la plataforma. Cada subcomando
// corresponde a una vista del panel (catálogo, carrito, pedidos, seller,
// admin) y la sesión y el carrito persisten en el directorio de estado entre
// invocaciones.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/afero"

	appauth "github.com/shadows/nblb-console/internal/application/auth"
	appcart "github.com/shadows/nblb-console/internal/application/cart"
	"github.com/shadows/nblb-console/internal/application/guard"
	apppayment "github.com/shadows/nblb-console/internal/application/payment"
	"github.com/shadows/nblb-console/internal/application/recommend"
	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/internal/infrastructure/gateway"
	"github.com/shadows/nblb-console/internal/infrastructure/localstore"
	"github.com/shadows/nblb-console/internal/interfaces/console"
	"github.com/shadows/nblb-console/pkg/config"
	"github.com/shadows/nblb-console/pkg/logger"
)

const usage = `nblb — consola de la plataforma NBLB

Uso: nblb <comando> [flags]

Sesión:
  login -u <usuario> -p <password>
  register -u <usuario> -e <email> -p <password> [-r CLIENT|SHOP]
  logout
  menu

Compras:
  products                        catálogo
  products add -id <producto>     agregar al carrito
  cart                            ver carrito
  cart set -id <producto> -qty N  cambiar cantidad
  cart remove -id <producto>      quitar línea
  cart checkout                   crear pedido
  pay -order <id> -amount <monto> [-method CARD]
  orders                          mis pedidos
  recommend                       recomendaciones

Vendedor:
  seller dashboard|products|sales
  seller create -name <n> -price <p> [-category C] [-qty N] [-expiry YYYY-MM-DD]
  seller update -id <producto> [flags de create]
  seller delete -id <producto>
  seller ship -order <id>

Administrador:
  admin stats|users|sellers|products|orders
  admin create-user -u <usuario> -p <password> [-e email] [-r rol]
  admin update-user -id <id> [-u usuario] [-e email] [-r rol]
  admin delete-user -id <id> -u <usuario>
  admin create-product|update-product|delete-product [flags]
  admin set-status -order <id> -status <estado>
`

// app agrupa los controladores ya cableados.
type app struct {
	menu     *console.MenuController
	auth     *console.AuthController
	products *console.ProductsController
	cart     *console.CartController
	orders   *console.OrdersController
	payment  *console.PaymentController
	recs     *console.RecommendationsController
	seller   *console.SellerController
	admin    *console.AdminController
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	store, err := localstore.New(afero.NewOsFs(), cfg.State.Dir, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "abrir directorio de estado:", err)
		os.Exit(1)
	}
	sessions := localstore.NewSessionRepository(store, log)
	carts := localstore.NewCartRepository(store, log)
	pending := localstore.NewPendingOrderRepository(store, log)

	client := gateway.NewClient(cfg.Gateway.BaseURL, sessions, log)
	authAPI := gateway.NewAuthAPI(client)
	catalogAPI := gateway.NewCatalogAPI(client)
	orderAPI := gateway.NewOrderAPI(client)
	paymentAPI := gateway.NewPaymentAPI(client)
	adminAPI := gateway.NewAdminAPI(client)
	sellerAPI := gateway.NewSellerAPI(client)
	recAPI := gateway.NewRecommendationAPI(client)

	guards := guard.New(sessions)
	authUC := appauth.NewUseCase(authAPI, sessions, log)
	cartUC := appcart.NewUseCase(carts, pending, orderAPI, log)
	paymentUC := apppayment.NewUseCase(paymentAPI, orderAPI, pending, log)
	picks := recommend.NewPipeline(recAPI, log)

	r := console.NewRenderer(os.Stdout)
	confirm := console.StdinConfirmer(os.Stdin, os.Stdout)

	a := &app{
		menu:     console.NewMenuController(sessions, cartUC, r),
		auth:     console.NewAuthController(authUC, r),
		products: console.NewProductsController(catalogAPI, cartUC, r),
		cart:     console.NewCartController(guards, cartUC, r),
		orders:   console.NewOrdersController(guards, orderAPI, r),
		payment:  console.NewPaymentController(guards, paymentUC, r),
		recs:     console.NewRecommendationsController(guards, recAPI, r),
		seller:   console.NewSellerController(guards, sellerAPI, picks, r, confirm),
		admin:    console.NewAdminController(guards, adminAPI, authAPI, r, confirm),
	}

	args := os.Args[1:]
	if len(args) == 0 {
		a.menu.Show()
		return
	}
	run(a, args)
}

func run(a *app, args []string) {
	ctx := context.Background()
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "menu", "whoami":
		a.menu.Show()

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		user := fs.String("u", "", "usuario")
		pass := fs.String("p", "", "password")
		fs.Parse(rest)
		a.auth.Login(ctx, *user, *pass)

	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		user := fs.String("u", "", "usuario")
		email := fs.String("e", "", "email")
		pass := fs.String("p", "", "password")
		role := fs.String("r", "", "rol (CLIENT o SHOP)")
		fs.Parse(rest)
		a.auth.Register(ctx, *user, *email, *pass, *role)

	case "logout":
		a.auth.Logout()

	case "products":
		if len(rest) > 0 && rest[0] == "add" {
			fs := flag.NewFlagSet("products add", flag.ExitOnError)
			id := fs.Int64("id", 0, "id del producto")
			fs.Parse(rest[1:])
			a.products.Add(ctx, *id)
			return
		}
		a.products.Show(ctx)

	case "cart":
		runCart(ctx, a, rest)

	case "pay":
		fs := flag.NewFlagSet("pay", flag.ExitOnError)
		order := fs.Int64("order", 0, "id del pedido")
		amount := fs.Float64("amount", 0, "monto a pagar")
		method := fs.String("method", "", "método de pago")
		fs.Parse(rest)
		a.payment.Pay(ctx, *order, *amount, *method)

	case "orders":
		a.orders.Show(ctx)

	case "recommend":
		a.recs.Show(ctx)

	case "seller":
		runSeller(ctx, a, rest)

	case "admin":
		runAdmin(ctx, a, rest)

	case "help", "-h", "--help":
		fmt.Print(usage)

	default:
		fmt.Fprintf(os.Stderr, "comando desconocido: %s\n\n%s", cmd, usage)
		os.Exit(2)
	}
}

func runCart(ctx context.Context, a *app, args []string) {
	if len(args) == 0 {
		a.cart.Show()
		return
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "show":
		a.cart.Show()
	case "set":
		fs := flag.NewFlagSet("cart set", flag.ExitOnError)
		id := fs.Int64("id", 0, "id del producto")
		qty := fs.Int("qty", 0, "cantidad")
		fs.Parse(rest)
		a.cart.SetQuantity(*id, *qty)
	case "remove":
		fs := flag.NewFlagSet("cart remove", flag.ExitOnError)
		id := fs.Int64("id", 0, "id del producto")
		fs.Parse(rest)
		a.cart.Remove(*id)
	case "checkout":
		a.cart.Checkout(ctx)
	default:
		fmt.Fprintf(os.Stderr, "subcomando de cart desconocido: %s\n", sub)
		os.Exit(2)
	}
}

func productFlags(fs *flag.FlagSet) *gateway.ProductInput {
	in := &gateway.ProductInput{}
	fs.StringVar(&in.Name, "name", "", "nombre")
	fs.Float64Var(&in.Price, "price", 0, "precio")
	fs.StringVar(&in.Category, "category", "", "categoría")
	fs.IntVar(&in.Quantity, "qty", 0, "cantidad en stock")
	fs.StringVar(&in.Status, "status", "", "estado del producto")
	fs.StringVar(&in.ImageURL, "image", "", "URL de imagen")
	fs.StringVar(&in.ExpiryDate, "expiry", "", "fecha de vencimiento (YYYY-MM-DD)")
	return in
}

func runSeller(ctx context.Context, a *app, args []string) {
	if len(args) == 0 {
		a.seller.Dashboard(ctx)
		return
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "dashboard":
		a.seller.Dashboard(ctx)
	case "products":
		a.seller.Products(ctx)
	case "create":
		fs := flag.NewFlagSet("seller create", flag.ExitOnError)
		in := productFlags(fs)
		fs.Parse(rest)
		a.seller.CreateProduct(ctx, *in)
	case "update":
		fs := flag.NewFlagSet("seller update", flag.ExitOnError)
		id := fs.Int64("id", 0, "id del producto")
		in := productFlags(fs)
		fs.Parse(rest)
		a.seller.UpdateProduct(ctx, *id, *in)
	case "delete":
		fs := flag.NewFlagSet("seller delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "id del producto")
		fs.Parse(rest)
		a.seller.DeleteProduct(ctx, *id)
	case "sales":
		a.seller.Sales(ctx)
	case "ship":
		fs := flag.NewFlagSet("seller ship", flag.ExitOnError)
		order := fs.Int64("order", 0, "id del pedido")
		fs.Parse(rest)
		a.seller.Ship(ctx, *order)
	default:
		fmt.Fprintf(os.Stderr, "subcomando de seller desconocido: %s\n", sub)
		os.Exit(2)
	}
}

func runAdmin(ctx context.Context, a *app, args []string) {
	if len(args) == 0 {
		a.admin.Stats(ctx)
		return
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "stats":
		a.admin.Stats(ctx)
	case "users":
		a.admin.Users(ctx)
	case "sellers":
		a.admin.Sellers(ctx)
	case "products":
		a.admin.Products(ctx)
	case "orders":
		a.admin.Orders(ctx)
	case "create-user":
		fs := flag.NewFlagSet("admin create-user", flag.ExitOnError)
		user := fs.String("u", "", "usuario")
		email := fs.String("e", "", "email")
		pass := fs.String("p", "", "password")
		role := fs.String("r", "", "rol")
		fs.Parse(rest)
		a.admin.CreateUser(ctx, gateway.UserInput{Username: *user, Email: *email, Password: *pass, Role: *role})
	case "update-user":
		fs := flag.NewFlagSet("admin update-user", flag.ExitOnError)
		id := fs.Int64("id", 0, "id del usuario")
		user := fs.String("u", "", "usuario")
		email := fs.String("e", "", "email")
		role := fs.String("r", "", "rol")
		fs.Parse(rest)
		a.admin.UpdateUser(ctx, *id, gateway.UserInput{Username: *user, Email: *email, Role: *role})
	case "delete-user":
		fs := flag.NewFlagSet("admin delete-user", flag.ExitOnError)
		id := fs.Int64("id", 0, "id del usuario")
		user := fs.String("u", "", "usuario (para el mensaje de confirmación)")
		fs.Parse(rest)
		a.admin.DeleteUser(ctx, *id, *user)
	case "create-product":
		fs := flag.NewFlagSet("admin create-product", flag.ExitOnError)
		in := productFlags(fs)
		seller := fs.String("seller", "", "vendedor dueño del producto")
		fs.Parse(rest)
		in.AddedBy = *seller
		a.admin.CreateProduct(ctx, *in)
	case "update-product":
		fs := flag.NewFlagSet("admin update-product", flag.ExitOnError)
		id := fs.Int64("id", 0, "id del producto")
		in := productFlags(fs)
		fs.Parse(rest)
		a.admin.UpdateProduct(ctx, *id, *in)
	case "delete-product":
		fs := flag.NewFlagSet("admin delete-product", flag.ExitOnError)
		id := fs.Int64("id", 0, "id del producto")
		fs.Parse(rest)
		a.admin.DeleteProduct(ctx, *id)
	case "set-status":
		fs := flag.NewFlagSet("admin set-status", flag.ExitOnError)
		order := fs.Int64("order", 0, "id del pedido")
		status := fs.String("status", "", "nuevo estado")
		fs.Parse(rest)
		a.admin.SetOrderStatus(ctx, *order, domain.OrderStatus(*status))
	default:
		fmt.Fprintf(os.Stderr, "subcomando de admin desconocido: %s\n", sub)
		os.Exit(2)
	}
}
