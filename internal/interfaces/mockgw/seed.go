package mockgw

import (
	"time"

	"github.com/shadows/nblb-console/internal/domain"
)

// Seed carga las cuentas y el catálogo inicial. Las credenciales son fijas
// para que los flujos se puedan probar sin registrar nada:
//
//	admin / admin123     (ADMIN)
//	vendedor / venta123  (SELLER)
//	cliente / compra123  (CLIENT)
func Seed(store *Store) {
	store.CreateUser("admin", "admin@nblb.local", "admin123", domain.RoleAdmin)
	store.CreateUser("vendedor", "vendedor@nblb.local", "venta123", domain.RoleSeller)
	store.CreateUser("cliente", "cliente@nblb.local", "compra123", domain.RoleClient)

	now := time.Now()
	expiry := func(days int) string { return now.AddDate(0, 0, days).Format("2006-01-02") }

	store.CreateProduct(Product{
		Name: "Manzana roja", Description: "Manzana roja de exportación",
		Price: 2.50, Category: "FRUTAS", Quantity: 120, Status: "AVAILABLE",
		AddedBy: "vendedor", ExpiryDate: expiry(20),
	})
	store.CreateProduct(Product{
		Name: "Banano criollo", Description: "Banano de la región",
		Price: 1.20, Category: "FRUTAS", Quantity: 200, Status: "AVAILABLE",
		AddedBy: "vendedor", ExpiryDate: expiry(5),
	})
	store.CreateProduct(Product{
		Name: "Leche entera 1L", Description: "Leche pasteurizada",
		Price: 3.80, Category: "LACTEOS", Quantity: 60, Status: "AVAILABLE",
		AddedBy: "vendedor", ExpiryDate: expiry(12),
	})
	store.CreateProduct(Product{
		Name: "Tomate chonto", Description: "Tomate fresco por libra",
		Price: 1.90, Category: "VERDURAS", Quantity: 80, Status: "AVAILABLE",
		AddedBy: "vendedor", ExpiryDate: expiry(3),
	})
	store.CreateProduct(Product{
		Name: "Arroz premium 500g", Description: "Arroz blanco seleccionado",
		Price: 2.10, Category: "GRANOS", Quantity: 150, Status: "AVAILABLE",
		AddedBy: "vendedor",
	})
}
