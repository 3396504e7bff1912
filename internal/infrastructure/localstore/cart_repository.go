package localstore

import (
	"encoding/json"

	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/internal/domain/repository"
	"github.com/shadows/nblb-console/pkg/logger"
)

var _ repository.CartRepository = (*CartRepository)(nil)

// cartKey constante para que todas las vistas compartan el mismo carrito.
const cartKey = "cart"

// CartRepository carrito persistido como cart.json: un array JSON de líneas,
// el mismo formato que usa el storefront web en localStorage, para que ambos
// clientes puedan compartir el dato.
type CartRepository struct {
	store *Store
	log   *logger.Logger
}

func NewCartRepository(store *Store, log *logger.Logger) *CartRepository {
	return &CartRepository{store: store, log: log}
}

// Load devuelve el carrito persistido. Archivo ausente o JSON corrupto
// producen un carrito vacío; lo segundo se loguea.
func (r *CartRepository) Load() domain.Cart {
	data, ok := r.store.Read(cartKey)
	if !ok {
		return domain.Cart{}
	}
	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		r.log.Warn().Err(err).Msg("carrito local corrupto, se descarta")
		return domain.Cart{}
	}
	return cart
}

// Save reescribe la secuencia completa de líneas.
func (r *CartRepository) Save(c domain.Cart) error {
	if c == nil {
		c = domain.Cart{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.store.Write(cartKey, data)
}

// Clear persiste la secuencia vacía (post-checkout).
func (r *CartRepository) Clear() error {
	return r.Save(domain.Cart{})
}
