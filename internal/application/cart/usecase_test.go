package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadows/nblb-console/internal/application/cart"
	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/internal/infrastructure/gateway"
	"github.com/shadows/nblb-console/pkg/logger"
)

// memCarts repositorio de carrito en memoria.
type memCarts struct {
	cart domain.Cart
}

func (m *memCarts) Load() domain.Cart { return m.cart }
func (m *memCarts) Save(c domain.Cart) error {
	m.cart = c
	return nil
}
func (m *memCarts) Clear() error {
	m.cart = domain.Cart{}
	return nil
}

// memPending foto de compra pendiente en memoria.
type memPending struct {
	lines domain.Cart
	saves int
}

func (m *memPending) Save(c domain.Cart) error {
	m.saves++
	m.lines = c
	return nil
}
func (m *memPending) Load() domain.Cart { return m.lines }
func (m *memPending) Clear() error {
	m.lines = domain.Cart{}
	return nil
}

// fakeCheckout CheckoutAPI programable.
type fakeCheckout struct {
	ref   gateway.PaymentRef
	err   error
	items []gateway.CheckoutItem
	total float64
	calls int
}

func (f *fakeCheckout) Checkout(_ context.Context, items []gateway.CheckoutItem, total float64) (gateway.PaymentRef, error) {
	f.calls++
	f.items = items
	f.total = total
	if f.err != nil {
		return gateway.PaymentRef{}, f.err
	}
	return f.ref, nil
}

func seededCarts() *memCarts {
	return &memCarts{cart: domain.Cart{
		{ID: 1, Name: "Manzana roja", Price: 2.5, Quantity: 2},
		{ID: 3, Name: "Leche entera 1L", Price: 3.8, Quantity: 1},
	}}
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	carts := seededCarts()
	pending := &memPending{}
	api := &fakeCheckout{ref: gateway.PaymentRef{OrderID: 12, Amount: 8.8}}
	uc := cart.NewUseCase(carts, pending, api, logger.Nop())

	ref, err := uc.Checkout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), ref.OrderID)
	assert.Equal(t, 8.8, ref.Amount)

	// El body salió con las líneas y el total calculado del carrito.
	require.Len(t, api.items, 2)
	assert.Equal(t, gateway.CheckoutItem{ProductID: 1, Name: "Manzana roja", Price: 2.5, Quantity: 2}, api.items[0])
	assert.Equal(t, 8.8, api.total)

	assert.Empty(t, carts.cart, "el carrito se vacía tras un checkout confirmado")

	// Las líneas compradas quedan como compra pendiente para el pago.
	require.Len(t, pending.lines, 2)
	assert.Equal(t, domain.CartLine{ID: 1, Name: "Manzana roja", Price: 2.5, Quantity: 2}, pending.lines[0])
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	carts := seededCarts()
	pending := &memPending{}
	api := &fakeCheckout{err: errors.New("gateway caída")}
	uc := cart.NewUseCase(carts, pending, api, logger.Nop())

	_, err := uc.Checkout(context.Background())
	require.Error(t, err)
	assert.Len(t, carts.cart, 2, "un checkout fallido no toca el carrito")
	assert.Zero(t, pending.saves, "sin pedido confirmado no hay compra pendiente")
}

func TestCheckoutInvalidResponseKeepsCart(t *testing.T) {
	// Una respuesta 2xx incompleta llega hasta acá como ErrInvalidResponse.
	carts := seededCarts()
	api := &fakeCheckout{err: domain.ErrInvalidResponse}
	uc := cart.NewUseCase(carts, &memPending{}, api, logger.Nop())

	_, err := uc.Checkout(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidResponse)
	assert.Len(t, carts.cart, 2)
}

func TestCheckoutEmptyCart(t *testing.T) {
	api := &fakeCheckout{}
	uc := cart.NewUseCase(&memCarts{}, &memPending{}, api, logger.Nop())

	_, err := uc.Checkout(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Zero(t, api.calls, "con carrito vacío no se llama al backend")
}

func TestMutationsPersist(t *testing.T) {
	carts := &memCarts{}
	uc := cart.NewUseCase(carts, &memPending{}, &fakeCheckout{}, logger.Nop())

	count, err := uc.Add(domain.CartLine{ID: 1, Name: "Manzana roja", Price: 2.5})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = uc.Add(domain.CartLine{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, uc.SetQuantity(1, 4))
	assert.Equal(t, 4, uc.Count())
	assert.Equal(t, "10", uc.Total().String())

	require.NoError(t, uc.Remove(1))
	assert.Empty(t, uc.View())
}
