package mockgw_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadows/nblb-console/internal/interfaces/mockgw"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "nblb-test"
	testExpMin    = 60
)

// buildTestApp gateway completa con los datos sembrados.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := mockgw.NewStore()
	mockgw.Seed(store)

	app := fiber.New()
	mockgw.Router(app, mockgw.RouterDeps{
		Store:      store,
		JWTSecret:  testJWTSecret,
		JWTIssuer:  testIssuer,
		ExpMinutes: testExpMin,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, data
}

// loginAs devuelve el token de una cuenta sembrada.
func loginAs(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/auth/api/login", "",
		map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode, "login de %s: %s", username, body)

	var out struct {
		Token    string `json:"token"`
		Role     string `json:"role"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth y RBAC
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	app := buildTestApp(t)

	t.Run("credenciales sembradas", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/auth/api/login", "",
			map[string]string{"username": "cliente", "password": "compra123"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out map[string]string
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, "CLIENT", out["role"])
		assert.Equal(t, "cliente", out["username"])
		assert.NotEmpty(t, out["token"])
	})

	t.Run("password incorrecta", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/auth/api/login", "",
			map[string]string{"username": "cliente", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, string(body), "error")
	})
}

func TestRegisterAndLogin(t *testing.T) {
	app := buildTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/api/register", "",
		map[string]string{"username": "nuevo", "email": "n@x.co", "password": "clave", "role": "SHOP"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Registrar el mismo username otra vez choca.
	resp, _ = doJSON(t, app, http.MethodPost, "/auth/api/register", "",
		map[string]string{"username": "NUEVO", "password": "clave"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// El sinónimo SHOP quedó canonizado a SELLER.
	resp, body := doJSON(t, app, http.MethodPost, "/auth/api/login", "",
		map[string]string{"username": "nuevo", "password": "clave"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "SELLER", out["role"])
}

func TestRBAC(t *testing.T) {
	app := buildTestApp(t)
	clientToken := loginAs(t, app, "cliente", "compra123")
	sellerToken := loginAs(t, app, "vendedor", "venta123")
	adminToken := loginAs(t, app, "admin", "admin123")

	t.Run("el catálogo es público", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/order-service/products", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("sin token las rutas protegidas responden 401", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/order-service/api/orders/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token con formato inválido responde 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/order-service/api/orders/me", nil)
		req.Header.Set("Authorization", "Bearer no-es-un-jwt")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("cliente en ruta de admin responde 403", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/order-service/api/admin/dashboard/stats", clientToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("cliente en ruta de seller responde 403", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/order-service/api/seller/products", clientToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("seller accede a sus rutas pero no a las de admin", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/order-service/api/seller/products", sellerToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodGet, "/auth/api/users", sellerToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin accede a todo", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/auth/api/users", adminToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodGet, "/order-service/api/admin/orders", adminToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo de compra
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseFlow(t *testing.T) {
	app := buildTestApp(t)
	clientToken := loginAs(t, app, "cliente", "compra123")
	sellerToken := loginAs(t, app, "vendedor", "venta123")

	// Checkout: 2 manzanas y 1 leche de los datos sembrados.
	resp, body := doJSON(t, app, http.MethodPost, "/order-service/api/checkout", clientToken, map[string]any{
		"items": []map[string]any{
			{"productId": 1, "name": "Manzana roja", "price": 2.50, "quantity": 2},
			{"productId": 3, "name": "Leche entera 1L", "price": 3.80, "quantity": 1},
		},
		"total": 8.80,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "checkout: %s", body)

	var checkout struct {
		OrderID int64   `json:"orderId"`
		Total   float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(body, &checkout))
	require.NotZero(t, checkout.OrderID)
	assert.Equal(t, 8.80, checkout.Total, "el total se recalcula en el servidor")

	// El pedido aparece en /orders/me como PENDING.
	resp, body = doJSON(t, app, http.MethodGet, "/order-service/api/orders/me", clientToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var mine []struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, "PENDING", mine[0].Status)

	// Enviar antes de pagar es conflicto.
	shipPath := fmt.Sprintf("/order-service/api/seller/orders/%d/ship", checkout.OrderID)
	resp, _ = doJSON(t, app, http.MethodPut, shipPath, sellerToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Pagar con el monto exacto.
	resp, body = doJSON(t, app, http.MethodPost, "/payment/api/process", clientToken, map[string]any{
		"orderId": checkout.OrderID, "amount": checkout.Total, "method": "CARD",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "pago: %s", body)

	// Descuento de stock post-pago.
	resp, _ = doJSON(t, app, http.MethodPost, "/order-service/api/reduce-stock", clientToken, map[string]any{
		"items": []map[string]any{
			{"productId": 1, "quantity": 2},
			{"productId": 3, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Las ventas del seller muestran una fila por producto, ya en PAID.
	resp, body = doJSON(t, app, http.MethodGet, "/order-service/api/seller/sales", sellerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sales []struct {
		OrderID     int64  `json:"orderId"`
		Buyer       string `json:"buyerUsername"`
		ProductName string `json:"productName"`
		OrderStatus string `json:"orderStatus"`
	}
	require.NoError(t, json.Unmarshal(body, &sales))
	require.Len(t, sales, 2)
	assert.Equal(t, "cliente", sales[0].Buyer)
	assert.Equal(t, "PAID", sales[0].OrderStatus)

	// Ahora sí se puede despachar, y solo una vez.
	resp, _ = doJSON(t, app, http.MethodPut, shipPath, sellerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, shipPath, sellerToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "un pedido SHIPPED no se despacha de nuevo")
}

func TestCheckoutRecalculatesTotal(t *testing.T) {
	app := buildTestApp(t)
	clientToken := loginAs(t, app, "cliente", "compra123")

	// El total del cliente no manda: el pedido sale con el recalculado.
	resp, body := doJSON(t, app, http.MethodPost, "/order-service/api/checkout", clientToken, map[string]any{
		"items": []map[string]any{{"productId": 1, "name": "Manzana roja", "price": 2.50, "quantity": 2}},
		"total": 99.99,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "checkout: %s", body)

	var checkout struct {
		Total float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(body, &checkout))
	assert.Equal(t, 5.00, checkout.Total)
}

func TestSellerPartialUpdateKeepsStock(t *testing.T) {
	app := buildTestApp(t)
	sellerToken := loginAs(t, app, "vendedor", "venta123")

	sellerProduct := func(t *testing.T, id int64) map[string]any {
		t.Helper()
		resp, body := doJSON(t, app, http.MethodGet, "/order-service/api/seller/products", sellerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var products []map[string]any
		require.NoError(t, json.Unmarshal(body, &products))
		for _, p := range products {
			if int64(p["id"].(float64)) == id {
				return p
			}
		}
		t.Fatalf("producto %d no está en el listado del seller", id)
		return nil
	}

	// Cambiar solo el precio no toca el stock sembrado.
	resp, body := doJSON(t, app, http.MethodPut, "/order-service/api/seller/products/1", sellerToken,
		map[string]any{"price": 9.99})
	require.Equal(t, http.StatusOK, resp.StatusCode, "update: %s", body)

	p := sellerProduct(t, 1)
	assert.Equal(t, 9.99, p["price"])
	assert.Equal(t, float64(120), p["quantity"], "un update parcial no pisa el stock")

	// Un quantity explícito, incluso 0, sí se aplica.
	resp, _ = doJSON(t, app, http.MethodPut, "/order-service/api/seller/products/1", sellerToken,
		map[string]any{"quantity": 0})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), sellerProduct(t, 1)["quantity"])
}

func TestPaymentValidation(t *testing.T) {
	app := buildTestApp(t)
	clientToken := loginAs(t, app, "cliente", "compra123")

	resp, body := doJSON(t, app, http.MethodPost, "/order-service/api/checkout", clientToken, map[string]any{
		"items": []map[string]any{{"productId": 1, "name": "Manzana roja", "price": 2.50, "quantity": 1}},
		"total": 2.50,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var checkout struct {
		OrderID int64   `json:"orderId"`
		Total   float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(body, &checkout))

	t.Run("pedido inexistente", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/payment/api/process", clientToken,
			map[string]any{"orderId": 999, "amount": 2.50})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("monto que no coincide", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/payment/api/process", clientToken,
			map[string]any{"orderId": checkout.OrderID, "amount": 1.00})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(body), "no coincide")
	})

	t.Run("doble pago es conflicto", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/payment/api/process", clientToken,
			map[string]any{"orderId": checkout.OrderID, "amount": checkout.Total})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = doJSON(t, app, http.MethodPost, "/payment/api/process", clientToken,
			map[string]any{"orderId": checkout.OrderID, "amount": checkout.Total})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Admin y recomendaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminStatsAndOrders(t *testing.T) {
	app := buildTestApp(t)
	clientToken := loginAs(t, app, "cliente", "compra123")
	adminToken := loginAs(t, app, "admin", "admin123")

	resp, body := doJSON(t, app, http.MethodPost, "/order-service/api/checkout", clientToken, map[string]any{
		"items": []map[string]any{{"productId": 2, "name": "Banano criollo", "price": 1.20, "quantity": 5}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var checkout struct {
		OrderID int64 `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(body, &checkout))

	resp, body = doJSON(t, app, http.MethodGet, "/order-service/api/admin/dashboard/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats struct {
		TotalUsers    int64  `json:"totalUsers"`
		TotalSellers  int64  `json:"totalSellers"`
		TotalOrders   int64  `json:"totalOrders"`
		TotalRevenue  string `json:"totalRevenue"`
		TotalProducts int64  `json:"totalProducts"`
	}
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalSellers)
	assert.Equal(t, int64(1), stats.TotalOrders)
	assert.Equal(t, int64(5), stats.TotalProducts)
	assert.Equal(t, "$6.00", stats.TotalRevenue, "el revenue viaja formateado como moneda")

	// Transición de estado vía admin.
	resp, _ = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/order-service/api/admin/orders/%d/status", checkout.OrderID),
		adminToken, map[string]string{"status": "CANCELLED"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/order-service/api/admin/orders/%d/status", checkout.OrderID),
		adminToken, map[string]string{"status": "INVENTADO"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSellerRecommendationPipeline(t *testing.T) {
	app := buildTestApp(t)
	clientToken := loginAs(t, app, "cliente", "compra123")
	sellerToken := loginAs(t, app, "vendedor", "venta123")

	// Una compra para que exista un "más vendido".
	resp, _ := doJSON(t, app, http.MethodPost, "/order-service/api/checkout", clientToken, map[string]any{
		"items": []map[string]any{{"productId": 1, "name": "Manzana roja", "price": 2.50, "quantity": 4}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/api/seller/recommendations/top-sold?limit=3", sellerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var top []struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(body, &top))
	require.NotEmpty(t, top)
	assert.Equal(t, "Manzana roja", top[0].Name)

	resp, body = doJSON(t, app, http.MethodPost, "/api/seller/recommendations/suggest-products", sellerToken,
		map[string]any{"topSoldItems": top, "limit": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var suggest struct {
		Suggestions []string `json:"suggestions"`
		Count       int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(body, &suggest))
	assert.NotEmpty(t, suggest.Suggestions)
	assert.Len(t, suggest.Suggestions, suggest.Count)

	// Las recomendaciones del cliente arrancan por lo que más compró.
	resp, body = doJSON(t, app, http.MethodGet, "/api/recommendations", clientToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var recs []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(body, &recs))
	require.NotEmpty(t, recs)
	assert.Equal(t, "Manzana roja", recs[0].Name)
}
