package mockgw

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler maneja el catálogo público y los productos de seller y admin.
type ProductHandler struct {
	store *Store
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(store *Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// productInput usa un puntero para quantity: solo así se distingue un body
// que manda 0 de uno que omite el campo.
type productInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Quantity    *int    `json:"quantity"`
	Status      string  `json:"status"`
	ImageURL    string  `json:"imageUrl"`
	AddedBy     string  `json:"addedBy"`
	ExpiryDate  string  `json:"expiryDate"`
}

func (in productInput) toProduct() Product {
	p := Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Status:      in.Status,
		ImageURL:    in.ImageURL,
		AddedBy:     in.AddedBy,
		ExpiryDate:  in.ExpiryDate,
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	return p
}

// toUpdate marca quantity ausente con -1 para que un update parcial no pise
// el stock.
func (in productInput) toUpdate() Product {
	p := in.toProduct()
	if in.Quantity == nil {
		p.Quantity = -1
	}
	return p
}

// Catalog lista el catálogo completo. Ruta pública, sin token.
func (h *ProductHandler) Catalog(c *fiber.Ctx) error {
	products := h.store.Products()
	if products == nil {
		products = []Product{}
	}
	return c.JSON(products)
}

// ── Rutas de seller ───────────────────────────────────────────────────────────

func (h *ProductHandler) SellerProducts(c *fiber.Ctx) error {
	products := h.store.ProductsBy(GetUsername(c))
	if products == nil {
		products = []Product{}
	}
	return c.JSON(products)
}

func (h *ProductHandler) SellerCreateProduct(c *fiber.Ctx) error {
	var in productInput
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Name == "" || in.Price <= 0 {
		return errorJSON(c, fiber.StatusBadRequest, "name y price son requeridos")
	}
	p := in.toProduct()
	// El producto siempre queda a nombre del seller autenticado.
	p.AddedBy = GetUsername(c)
	return c.Status(fiber.StatusCreated).JSON(h.store.CreateProduct(p))
}

func (h *ProductHandler) SellerUpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "id inválido")
	}
	var in productInput
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if !h.store.UpdateProduct(int64(id), in.toUpdate(), GetUsername(c)) {
		return errorJSON(c, fiber.StatusNotFound, fmt.Sprintf("producto %d no encontrado", id))
	}
	return c.JSON(fiber.Map{"message": "producto actualizado"})
}

func (h *ProductHandler) SellerDeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "id inválido")
	}
	if !h.store.DeleteProduct(int64(id), GetUsername(c)) {
		return errorJSON(c, fiber.StatusNotFound, fmt.Sprintf("producto %d no encontrado", id))
	}
	return c.JSON(fiber.Map{"message": "producto eliminado"})
}

// ── Rutas de admin ────────────────────────────────────────────────────────────

// AdminProducts lista todos los productos con la forma que consume el panel
// admin: seller en vez de addedBy y stock en vez de quantity.
func (h *ProductHandler) AdminProducts(c *fiber.Ctx) error {
	products := h.store.Products()
	out := make([]fiber.Map, 0, len(products))
	for _, p := range products {
		out = append(out, fiber.Map{
			"id":       p.ID,
			"name":     p.Name,
			"seller":   p.AddedBy,
			"category": p.Category,
			"price":    p.Price,
			"stock":    p.Quantity,
			"status":   p.Status,
		})
	}
	return c.JSON(out)
}

func (h *ProductHandler) AdminCreateProduct(c *fiber.Ctx) error {
	var in productInput
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Name == "" || in.Price <= 0 {
		return errorJSON(c, fiber.StatusBadRequest, "name y price son requeridos")
	}
	return c.Status(fiber.StatusCreated).JSON(h.store.CreateProduct(in.toProduct()))
}

func (h *ProductHandler) AdminUpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "id inválido")
	}
	var in productInput
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if !h.store.UpdateProduct(int64(id), in.toUpdate(), "") {
		return errorJSON(c, fiber.StatusNotFound, fmt.Sprintf("producto %d no encontrado", id))
	}
	return c.JSON(fiber.Map{"message": "producto actualizado"})
}

func (h *ProductHandler) AdminDeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "id inválido")
	}
	if !h.store.DeleteProduct(int64(id), "") {
		return errorJSON(c, fiber.StatusNotFound, fmt.Sprintf("producto %d no encontrado", id))
	}
	return c.JSON(fiber.Map{"message": "producto eliminado"})
}

// AdminSellers vendedores con conteo de productos.
func (h *ProductHandler) AdminSellers(c *fiber.Ctx) error {
	sellers := h.store.SellerSummaries()
	if sellers == nil {
		sellers = []map[string]any{}
	}
	return c.JSON(sellers)
}
