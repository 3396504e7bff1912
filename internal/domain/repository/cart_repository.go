package repository

import "github.com/shadows/nblb-console/internal/domain"

// CartRepository puerto de persistencia del carrito.
//
// Load devuelve un carrito vacío si no hay nada persistido o si el JSON está
// corrupto (el dato malformado se loguea y se descarta, no se lanza).
// Cada mutación reescribe la secuencia completa: último escritor gana entre
// procesos concurrentes, sin locking (limitación aceptada).
type CartRepository interface {
	Load() domain.Cart
	Save(c domain.Cart) error
	Clear() error
}
