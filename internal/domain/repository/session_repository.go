package repository

import "github.com/shadows/nblb-console/internal/domain"

// SessionRepository puerto de persistencia de la sesión activa.
//
// Falla en silencio: Get devuelve la sesión cero cuando el storage no está
// disponible o la clave no existe; nunca propaga un error a la vista. Los
// errores de escritura sí se reportan para que el caller pueda loguearlos.
type SessionRepository interface {
	Save(s domain.Session) error
	Get() domain.Session
	Clear() error
}
