package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shadows/nblb-console/internal/domain"
)

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want domain.Role
	}{
		{"minusculas", "admin", domain.RoleAdmin},
		{"mayusculas", "SELLER", domain.RoleSeller},
		{"espacios", "  client  ", domain.RoleClient},
		{"prefijo spring", "ROLE_ADMIN", domain.RoleAdmin},
		{"prefijo y minusculas", "role_seller", domain.RoleSeller},
		{"sinonimo legacy shop", "SHOP", domain.RoleSeller},
		{"shop con prefijo", "ROLE_SHOP", domain.RoleSeller},
		{"vacio", "", domain.RoleNone},
		{"solo espacios", "   ", domain.RoleNone},
		{"desconocido queda tal cual", "SUPERVISOR", domain.Role("SUPERVISOR")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.NormalizeRole(tc.raw))
		})
	}
}

func TestRoleIn(t *testing.T) {
	assert.True(t, domain.RoleAdmin.In(domain.RoleAdmin, domain.RoleSeller))
	assert.False(t, domain.RoleClient.In(domain.RoleAdmin, domain.RoleSeller))
	assert.False(t, domain.RoleNone.In(domain.RoleAdmin))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, domain.RoleClient.Valid())
	assert.True(t, domain.RoleSeller.Valid())
	assert.True(t, domain.RoleAdmin.Valid())
	assert.False(t, domain.RoleNone.Valid())
	assert.False(t, domain.Role("SUPERVISOR").Valid())
}
