package console

import (
	"github.com/shadows/nblb-console/internal/application/cart"
	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/internal/domain/repository"
)

// MenuController el equivalente de la navbar: muestra quién está logueado y
// qué vistas tiene disponibles según su rol, más el badge del carrito.
type MenuController struct {
	sessions repository.SessionRepository
	cart     *cart.UseCase
	r        *Renderer
}

func NewMenuController(sessions repository.SessionRepository, cartUC *cart.UseCase, r *Renderer) *MenuController {
	return &MenuController{sessions: sessions, cart: cartUC, r: r}
}

// Show imprime la "navbar" de la sesión actual.
func (c *MenuController) Show() {
	session := c.sessions.Get()
	if !session.LoggedIn() {
		c.r.Infof("No ha iniciado sesión.")
		c.r.Infof("  nblb login -u <usuario>      iniciar sesión")
		c.r.Infof("  nblb register                crear cuenta")
		c.r.Infof("  nblb products                ver catálogo")
		return
	}

	c.r.Infof("%s (%s), carrito: %d artículos", session.Username, session.Role, c.cart.Count())
	c.r.Infof("  nblb products                catálogo")
	c.r.Infof("  nblb cart                    mi carrito")
	c.r.Infof("  nblb orders                  mis pedidos")
	c.r.Infof("  nblb recommend               recomendaciones")
	if session.Role == domain.RoleSeller {
		c.r.Infof("  nblb seller dashboard        panel de vendedor")
	}
	if session.Role == domain.RoleAdmin {
		c.r.Infof("  nblb admin stats             panel de administración")
	}
	c.r.Infof("  nblb logout                  cerrar sesión")
}
