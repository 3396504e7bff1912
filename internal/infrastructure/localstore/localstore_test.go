package localstore_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/internal/infrastructure/localstore"
	"github.com/shadows/nblb-console/pkg/logger"
)

func newTestStore(t *testing.T) *localstore.Store {
	t.Helper()
	store, err := localstore.New(afero.NewMemMapFs(), "/state", logger.Nop())
	require.NoError(t, err)
	return store
}

func TestStoreReadWriteDelete(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.Read("nada")
	assert.False(t, ok)

	require.NoError(t, store.Write("clave", []byte(`{"x":1}`)))
	data, ok := store.Read("clave")
	require.True(t, ok)
	assert.JSONEq(t, `{"x":1}`, string(data))

	require.NoError(t, store.Delete("clave"))
	_, ok = store.Read("clave")
	assert.False(t, ok)

	// Borrar una clave inexistente no es error.
	assert.NoError(t, store.Delete("clave"))
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := localstore.NewSessionRepository(newTestStore(t), logger.Nop())

	// Sin archivo: sesión cero, sin error.
	assert.False(t, repo.Get().LoggedIn())
	assert.Empty(t, repo.Token())

	session := domain.Session{Token: "tok-123", Role: domain.RoleSeller, Username: "vendedor"}
	require.NoError(t, repo.Save(session))

	got := repo.Get()
	assert.Equal(t, session, got)
	assert.True(t, got.LoggedIn())
	assert.Equal(t, "tok-123", repo.Token())

	require.NoError(t, repo.Clear())
	assert.False(t, repo.Get().LoggedIn())
}

func TestSessionRepositoryNormalizesRole(t *testing.T) {
	store := newTestStore(t)
	repo := localstore.NewSessionRepository(store, logger.Nop())

	// El rol se canoniza al guardar.
	require.NoError(t, repo.Save(domain.Session{Token: "t", Role: domain.Role("role_shop")}))
	assert.Equal(t, domain.RoleSeller, repo.Get().Role)

	// Y también al leer, por si el archivo fue editado a mano.
	require.NoError(t, store.Write("session", []byte(`{"token":"t","role":"  ROLE_ADMIN "}`)))
	assert.Equal(t, domain.RoleAdmin, repo.Get().Role)
}

func TestSessionRepositoryCorruptFile(t *testing.T) {
	store := newTestStore(t)
	repo := localstore.NewSessionRepository(store, logger.Nop())

	require.NoError(t, store.Write("session", []byte("{no es json")))
	assert.False(t, repo.Get().LoggedIn())
}

func TestCartRepositoryRoundTrip(t *testing.T) {
	repo := localstore.NewCartRepository(newTestStore(t), logger.Nop())

	assert.Empty(t, repo.Load())

	cart := domain.Cart{
		{ID: 1, Name: "Manzana roja", Price: 2.5, ImageURL: "http://img/1.png", Quantity: 2},
		{ID: 3, Name: "Leche entera 1L", Price: 3.8, Quantity: 1},
	}
	require.NoError(t, repo.Save(cart))
	assert.Equal(t, cart, repo.Load())

	require.NoError(t, repo.Clear())
	assert.Empty(t, repo.Load())
}

func TestCartRepositoryCorruptFile(t *testing.T) {
	store := newTestStore(t)
	repo := localstore.NewCartRepository(store, logger.Nop())

	require.NoError(t, store.Write("cart", []byte("[{rotisimo")))
	assert.Empty(t, repo.Load())
}

func TestPendingOrderRepositoryRoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := localstore.NewPendingOrderRepository(store, logger.Nop())

	assert.Empty(t, repo.Load())

	lines := domain.Cart{
		{ID: 1, Name: "Manzana roja", Price: 2.5, Quantity: 2},
	}
	require.NoError(t, repo.Save(lines))
	assert.Equal(t, lines, repo.Load())

	// Clear elimina el archivo; repetirlo no es error.
	require.NoError(t, repo.Clear())
	assert.Empty(t, repo.Load())
	_, ok := store.Read("pending-order")
	assert.False(t, ok)
	assert.NoError(t, repo.Clear())
}

func TestPendingOrderRepositoryCorruptFile(t *testing.T) {
	store := newTestStore(t)
	repo := localstore.NewPendingOrderRepository(store, logger.Nop())

	require.NoError(t, store.Write("pending-order", []byte("[{rotisimo")))
	assert.Empty(t, repo.Load())
}

func TestCartRepositoryWireFormat(t *testing.T) {
	store := newTestStore(t)
	repo := localstore.NewCartRepository(store, logger.Nop())

	require.NoError(t, repo.Save(domain.Cart{{ID: 7, Name: "Tomate chonto", Price: 1.9, Quantity: 3}}))

	data, ok := store.Read("cart")
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":7,"name":"Tomate chonto","price":1.9,"quantity":3}]`, string(data))

	// Guardar nil persiste el array vacío, nunca null.
	require.NoError(t, repo.Save(nil))
	data, ok = store.Read("cart")
	require.True(t, ok)
	assert.Equal(t, "[]", string(data))
}
