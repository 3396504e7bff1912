package gateway

import (
	"context"
	"net/http"
)

// PaymentAPI procesamiento de pago vía el payment-service.
type PaymentAPI struct {
	client *Client
}

func NewPaymentAPI(client *Client) *PaymentAPI {
	return &PaymentAPI{client: client}
}

// Process cobra un pedido (POST /payment/api/process). method es CARD, PAYPAL
// o el que acepte el backend; el cliente no valida el catálogo de métodos.
func (a *PaymentAPI) Process(ctx context.Context, orderID int64, amount float64, method string) error {
	body := map[string]any{
		"orderId": orderID,
		"amount":  amount,
		"method":  method,
	}
	return a.client.doJSON(ctx, http.MethodPost, "/payment/api/process", body, nil)
}
