package console

import (
	"context"

	authapp "github.com/shadows/nblb-console/internal/application/auth"
)

// AuthController login, registro y logout desde la terminal.
type AuthController struct {
	auth *authapp.UseCase
	r    *Renderer
}

func NewAuthController(auth *authapp.UseCase, r *Renderer) *AuthController {
	return &AuthController{auth: auth, r: r}
}

// Login autentica y sugiere la vista de aterrizaje según el rol.
func (c *AuthController) Login(ctx context.Context, username, password string) {
	session, target, err := c.auth.Login(ctx, username, password)
	if err != nil {
		c.r.FetchError("iniciar sesión", err)
		return
	}

	c.r.Infof("Sesión iniciada como %s (%s).", session.Username, session.Role)
	switch target {
	case authapp.RedirectAdminDashboard:
		c.r.Infof("Continúe con: nblb admin stats")
	case authapp.RedirectSellerDashboard:
		c.r.Infof("Continúe con: nblb seller dashboard")
	default:
		c.r.Infof("Continúe con: nblb products")
	}
}

// Register da de alta una cuenta y sugiere iniciar sesión.
func (c *AuthController) Register(ctx context.Context, username, email, password, role string) {
	if err := c.auth.Register(ctx, username, email, password, role); err != nil {
		c.r.FetchError("registrar cuenta", err)
		return
	}
	c.r.Infof("Cuenta %q creada. Inicie sesión con: nblb login -u %s", username, username)
}

// Logout borra la sesión local.
func (c *AuthController) Logout() {
	if err := c.auth.Logout(); err != nil {
		c.r.Errorf("cerrar sesión: %v", err)
		return
	}
	c.r.Infof("Sesión cerrada.")
}
