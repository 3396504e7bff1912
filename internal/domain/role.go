package domain

import "strings"

// Role etiqueta gruesa de permisos que decide qué vistas y acciones puede usar
// una sesión. Internamente solo circulan los valores canónicos; la forma legacy
// "SHOP" y el prefijo "ROLE_" se resuelven en NormalizeRole, en la frontera
// donde entra el dato externo.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"

	// RoleNone ausencia de rol (sesión anónima o valor vacío en storage).
	RoleNone Role = ""
)

// rolePrefix prefijo histórico que algunos backends anteponen al rol.
const rolePrefix = "ROLE_"

// NormalizeRole canoniza un rol externo: recorta espacios, pasa a mayúsculas,
// quita el prefijo ROLE_ y traduce el sinónimo legacy SHOP a SELLER.
// Una entrada vacía normaliza a RoleNone.
func NormalizeRole(raw string) Role {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return RoleNone
	}
	s = strings.TrimPrefix(s, rolePrefix)
	if s == "SHOP" {
		return RoleSeller
	}
	return Role(s)
}

// Valid indica si el rol pertenece al conjunto cerrado de la plataforma.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// In indica si el rol es miembro del conjunto dado.
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}
