package repository

import "github.com/shadows/nblb-console/internal/domain"

// PendingOrderRepository puerto de la foto de compra entre el checkout y el
// pago: las líneas que ya son pedido en el backend pero cuyo descuento de
// stock queda pendiente hasta cobrar.
//
// Load devuelve una secuencia vacía si no hay compra pendiente o si el JSON
// está corrupto. Clear elimina la foto una vez consumida.
type PendingOrderRepository interface {
	Save(c domain.Cart) error
	Load() domain.Cart
	Clear() error
}
