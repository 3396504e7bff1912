package mockgw

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shadows/nblb-console/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store      *Store
	JWTSecret  string
	JWTIssuer  string
	ExpMinutes int
}

// Router registra todas las rutas de la gateway, con los mismos prefijos que
// expone el API gateway real: /auth, /order-service, /payment y /api.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.Store, deps.JWTSecret, deps.JWTIssuer, deps.ExpMinutes)
	productHandler := NewProductHandler(deps.Store)
	orderHandler := NewOrderHandler(deps.Store)
	paymentHandler := NewPaymentHandler(deps.Store)
	recHandler := NewRecommendationHandler(deps.Store)

	auth := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	authGroup := app.Group("/auth/api")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)

	// Usuarios (solo ADMIN)
	users := authGroup.Group("/users", auth, RequireRole(domain.RoleAdmin))
	users.Get("/", authHandler.ListUsers)
	users.Post("/", authHandler.CreateUser)
	users.Put("/:id", authHandler.UpdateUser)
	users.Delete("/:id", authHandler.DeleteUser)

	// Catálogo (público, sin token)
	app.Get("/order-service/products", productHandler.Catalog)

	orderAPI := app.Group("/order-service/api", auth)

	// Checkout y pedidos propios (cualquier usuario autenticado)
	orderAPI.Post("/checkout", orderHandler.Checkout)
	orderAPI.Get("/orders/me", orderHandler.MyOrders)
	orderAPI.Post("/reduce-stock", orderHandler.ReduceStock)

	// Seller
	sellerGroup := orderAPI.Group("/seller", RequireRole(domain.RoleSeller, domain.RoleAdmin))
	sellerGroup.Get("/products", productHandler.SellerProducts)
	sellerGroup.Post("/products", productHandler.SellerCreateProduct)
	sellerGroup.Put("/products/:id", productHandler.SellerUpdateProduct)
	sellerGroup.Delete("/products/:id", productHandler.SellerDeleteProduct)
	sellerGroup.Get("/sales", orderHandler.SellerSales)
	sellerGroup.Put("/orders/:id/ship", orderHandler.SellerShip)

	// Admin
	adminGroup := orderAPI.Group("/admin", RequireRole(domain.RoleAdmin))
	adminGroup.Get("/dashboard/stats", orderHandler.AdminStats)
	adminGroup.Get("/sellers", productHandler.AdminSellers)
	adminGroup.Get("/products", productHandler.AdminProducts)
	adminGroup.Post("/products", productHandler.AdminCreateProduct)
	adminGroup.Put("/products/:id", productHandler.AdminUpdateProduct)
	adminGroup.Delete("/products/:id", productHandler.AdminDeleteProduct)
	adminGroup.Get("/orders", orderHandler.AdminOrders)
	adminGroup.Put("/orders/:id/status", orderHandler.AdminSetOrderStatus)

	// Pagos (cualquier usuario autenticado)
	app.Post("/payment/api/process", auth, paymentHandler.Process)

	// Recomendaciones
	app.Get("/api/recommendations", auth, recHandler.ForClient)
	recSeller := app.Group("/api/seller/recommendations", auth, RequireRole(domain.RoleSeller, domain.RoleAdmin))
	recSeller.Get("/top-sold", recHandler.TopSold)
	recSeller.Post("/suggest-products", recHandler.Suggest)
}
