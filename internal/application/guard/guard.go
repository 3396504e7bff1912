// Package guard protege las vistas: lee la sesión persistida y decide si el
// visitante puede inicializar una página o debe ir al login. El chequeo es
// solo de cliente; la autorización real la impone la gateway en cada request.
package guard

import (
	"fmt"

	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/internal/domain/repository"
)

// Guard evalúa la sesión contra el conjunto de roles esperado.
type Guard struct {
	sessions repository.SessionRepository
}

func New(sessions repository.SessionRepository) *Guard {
	return &Guard{sessions: sessions}
}

// Require devuelve la sesión si hay token y el rol normalizado pertenece al
// conjunto dado (conjunto vacío = basta con estar autenticado). Si no,
// ErrLoginRequired o ErrForbidden; el caller debe cortar la inicialización de
// la vista ANTES de cualquier fetch autenticado.
func (g *Guard) Require(roles ...domain.Role) (domain.Session, error) {
	session := g.sessions.Get()
	if !session.LoggedIn() {
		return domain.Session{}, domain.ErrLoginRequired
	}
	if len(roles) == 0 {
		return session, nil
	}
	if !session.Role.In(roles...) {
		return domain.Session{}, fmt.Errorf("%w: se requiere %v", domain.ErrForbidden, roles)
	}
	return session, nil
}

// RequireAdmin guard del panel de administración.
func (g *Guard) RequireAdmin() (domain.Session, error) {
	return g.Require(domain.RoleAdmin)
}

// RequireSeller guard del panel de vendedor. El sinónimo legacy SHOP ya llegó
// normalizado a SELLER desde el repositorio.
func (g *Guard) RequireSeller() (domain.Session, error) {
	return g.Require(domain.RoleSeller)
}

// RequireClient guard de las vistas de compra.
func (g *Guard) RequireClient() (domain.Session, error) {
	return g.Require(domain.RoleClient)
}
