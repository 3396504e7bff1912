package domain

// OrderStatus estado de un pedido. La máquina de estados la posee el backend;
// el cliente solo la lee y dispara transiciones vía checkout, pago y envío.
type OrderStatus string

const (
	StatusPending         OrderStatus = "PENDING"
	StatusConfirmed       OrderStatus = "CONFIRMED"
	StatusPaid            OrderStatus = "PAID"
	StatusWaitingDelivery OrderStatus = "WAITING_DELIVERY"
	StatusShipped         OrderStatus = "SHIPPED"
	StatusDelivered       OrderStatus = "DELIVERED"
	StatusCancelled       OrderStatus = "CANCELLED"
)

// Shippable indica si un vendedor puede marcar el pedido como enviado.
func (s OrderStatus) Shippable() bool {
	return s == StatusPaid || s == StatusWaitingDelivery
}

// Badge clasifica el estado para la vista, la paleta gruesa del dashboard:
// pendiente, en curso, terminado, cancelado.
func (s OrderStatus) Badge() string {
	switch s {
	case StatusPending, StatusConfirmed:
		return "warning"
	case StatusPaid, StatusWaitingDelivery:
		return "info"
	case StatusShipped, StatusDelivered:
		return "success"
	case StatusCancelled:
		return "danger"
	default:
		return "secondary"
	}
}
