package localstore

import (
	"encoding/json"

	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/internal/domain/repository"
	"github.com/shadows/nblb-console/pkg/logger"
)

var _ repository.PendingOrderRepository = (*PendingOrderRepository)(nil)

const pendingOrderKey = "pending-order"

// PendingOrderRepository foto de la compra persistida como pending-order.json.
// El checkout la escribe al vaciar el carrito y el pago la consume para el
// descuento de stock.
type PendingOrderRepository struct {
	store *Store
	log   *logger.Logger
}

func NewPendingOrderRepository(store *Store, log *logger.Logger) *PendingOrderRepository {
	return &PendingOrderRepository{store: store, log: log}
}

// Save reescribe la foto completa de líneas compradas.
func (r *PendingOrderRepository) Save(c domain.Cart) error {
	if c == nil {
		c = domain.Cart{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.store.Write(pendingOrderKey, data)
}

// Load devuelve la compra pendiente. Archivo ausente o JSON corrupto producen
// una secuencia vacía; lo segundo se loguea.
func (r *PendingOrderRepository) Load() domain.Cart {
	data, ok := r.store.Read(pendingOrderKey)
	if !ok {
		return domain.Cart{}
	}
	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		r.log.Warn().Err(err).Msg("compra pendiente corrupta, se descarta")
		return domain.Cart{}
	}
	return cart
}

// Clear elimina la foto; no es error que no exista.
func (r *PendingOrderRepository) Clear() error {
	return r.store.Delete(pendingOrderKey)
}
