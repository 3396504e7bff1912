package mockgw

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shadows/nblb-console/internal/domain"
)

// PaymentHandler procesa cobros contra pedidos existentes.
type PaymentHandler struct {
	store *Store
}

// NewPaymentHandler construye el handler de pagos.
func NewPaymentHandler(store *Store) *PaymentHandler {
	return &PaymentHandler{store: store}
}

type processRequest struct {
	OrderID int64   `json:"orderId"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
}

// Process marca el pedido como PAID y deja constancia del cobro. El monto debe
// coincidir con el total del pedido; un pedido ya pagado no se cobra dos veces.
func (h *PaymentHandler) Process(c *fiber.Ctx) error {
	var in processRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.OrderID <= 0 || in.Amount <= 0 {
		return errorJSON(c, fiber.StatusBadRequest, "orderId y amount son requeridos")
	}

	order, ok := h.store.OrderByID(in.OrderID)
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, fmt.Sprintf("pedido %d no encontrado", in.OrderID))
	}
	if order.Status != domain.StatusPending && order.Status != domain.StatusConfirmed {
		return errorJSON(c, fiber.StatusConflict, fmt.Sprintf("el pedido %d no admite pago (estado %s)", in.OrderID, order.Status))
	}
	if in.Amount != order.Total {
		return errorJSON(c, fiber.StatusBadRequest, fmt.Sprintf("el monto %.2f no coincide con el total %.2f", in.Amount, order.Total))
	}

	method := in.Method
	if method == "" {
		method = "CARD"
	}
	ref := uuid.NewString()
	h.store.RecordPayment(Payment{
		Reference: ref,
		OrderID:   in.OrderID,
		Amount:    in.Amount,
		Method:    method,
		At:        time.Now(),
	})
	h.store.SetOrderStatus(in.OrderID, domain.StatusPaid)

	return c.JSON(fiber.Map{
		"status":    "APPROVED",
		"reference": ref,
		"orderId":   in.OrderID,
	})
}
