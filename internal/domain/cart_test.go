package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadows/nblb-console/internal/domain"
)

func manzana() domain.CartLine {
	return domain.CartLine{ID: 1, Name: "Manzana roja", Price: 2.50}
}

func leche() domain.CartLine {
	return domain.CartLine{ID: 3, Name: "Leche entera 1L", Price: 3.80}
}

func TestCartAdd(t *testing.T) {
	t.Run("producto nuevo entra con cantidad 1", func(t *testing.T) {
		cart := domain.Cart{}.Add(manzana())
		require.Len(t, cart, 1)
		assert.Equal(t, 1, cart[0].Quantity)
	})

	t.Run("agregar dos veces incrementa, no duplica la línea", func(t *testing.T) {
		cart := domain.Cart{}.Add(manzana()).Add(manzana())
		require.Len(t, cart, 1)
		assert.Equal(t, 2, cart[0].Quantity)
	})

	t.Run("el match es solo por ID, el resto de campos se ignora", func(t *testing.T) {
		otra := manzana()
		otra.Name = "Manzana verde"
		otra.Price = 99.0
		cart := domain.Cart{}.Add(manzana()).Add(otra)
		require.Len(t, cart, 1)
		assert.Equal(t, "Manzana roja", cart[0].Name)
		assert.Equal(t, 2.50, cart[0].Price)
		assert.Equal(t, 2, cart[0].Quantity)
	})

	t.Run("conserva el orden de primera inserción", func(t *testing.T) {
		cart := domain.Cart{}.Add(manzana()).Add(leche()).Add(manzana())
		require.Len(t, cart, 2)
		assert.Equal(t, int64(1), cart[0].ID)
		assert.Equal(t, int64(3), cart[1].ID)
	})
}

func TestCartRemove(t *testing.T) {
	cart := domain.Cart{}.Add(manzana()).Add(leche())

	cart = cart.Remove(1)
	require.Len(t, cart, 1)
	assert.Equal(t, int64(3), cart[0].ID)

	// ID ausente: no-op.
	assert.Len(t, cart.Remove(99), 1)
}

func TestCartSetQuantity(t *testing.T) {
	t.Run("fija la cantidad", func(t *testing.T) {
		cart := domain.Cart{}.Add(manzana()).SetQuantity(1, 5)
		require.Len(t, cart, 1)
		assert.Equal(t, 5, cart[0].Quantity)
	})

	t.Run("cantidad cero elimina la línea", func(t *testing.T) {
		cart := domain.Cart{}.Add(manzana()).SetQuantity(1, 0)
		assert.Empty(t, cart)
	})

	t.Run("cantidad negativa elimina la línea", func(t *testing.T) {
		cart := domain.Cart{}.Add(manzana()).SetQuantity(1, -3)
		assert.Empty(t, cart)
	})

	t.Run("ID ausente es no-op", func(t *testing.T) {
		cart := domain.Cart{}.Add(manzana()).SetQuantity(99, 4)
		require.Len(t, cart, 1)
		assert.Equal(t, 1, cart[0].Quantity)
	})
}

func TestCartTotalAndCount(t *testing.T) {
	cart := domain.Cart{}.
		Add(manzana()).Add(manzana()).Add(manzana()). // 3 x 2.50
		Add(leche())                                  // 1 x 3.80

	assert.Equal(t, "11.3", cart.Total().String())
	assert.Equal(t, 4, cart.Count())

	assert.True(t, domain.Cart{}.Total().IsZero())
	assert.Zero(t, domain.Cart{}.Count())
}

// Escenario completo: agregar, ajustar, quitar y verificar el total en cada paso,
// con precios que en float64 acumularían error de redondeo.
func TestCartScenario(t *testing.T) {
	tomate := domain.CartLine{ID: 4, Name: "Tomate chonto", Price: 0.1}

	cart := domain.Cart{}
	for i := 0; i < 3; i++ {
		cart = cart.Add(tomate)
	}
	assert.Equal(t, "0.3", cart.Total().String())

	cart = cart.Add(manzana()).SetQuantity(1, 2)
	assert.Equal(t, "5.3", cart.Total().String())
	assert.Equal(t, 5, cart.Count())

	cart = cart.Remove(4)
	assert.Equal(t, "5", cart.Total().String())
	assert.Equal(t, 2, cart.Count())
}
