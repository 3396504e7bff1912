// Package auth casos de uso de autenticación: login, registro y logout.
package auth

import (
	"context"
	"fmt"

	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/internal/domain/repository"
	"github.com/shadows/nblb-console/internal/infrastructure/gateway"
	pkgjwt "github.com/shadows/nblb-console/pkg/jwt"
	"github.com/shadows/nblb-console/pkg/logger"
)

// API puerto hacia el auth-service; lo implementa gateway.AuthAPI.
type API interface {
	Login(ctx context.Context, username, password string) (gateway.LoginResult, error)
	Register(ctx context.Context, req gateway.RegisterRequest) error
}

// RedirectTarget vista a la que aterriza cada rol tras el login.
type RedirectTarget string

const (
	RedirectAdminDashboard  RedirectTarget = "admin"
	RedirectSellerDashboard RedirectTarget = "seller"
	RedirectStorefront      RedirectTarget = "products"
)

// UseCase orquesta login/registro contra la gateway y la sesión local.
type UseCase struct {
	api      API
	sessions repository.SessionRepository
	log      *logger.Logger
}

func NewUseCase(api API, sessions repository.SessionRepository, log *logger.Logger) *UseCase {
	return &UseCase{api: api, sessions: sessions, log: log}
}

// Login autentica, persiste la sesión con el rol ya canonizado y devuelve a
// qué dashboard redirigir. Si la respuesta no trae username se intenta el
// claim `sub` del token (sin verificar firma) y como último recurso el
// username tecleado.
func (uc *UseCase) Login(ctx context.Context, username, password string) (domain.Session, RedirectTarget, error) {
	result, err := uc.api.Login(ctx, username, password)
	if err != nil {
		return domain.Session{}, "", err
	}

	resolved := result.Username
	if resolved == "" {
		if sub, subErr := pkgjwt.Subject(result.Token); subErr == nil {
			resolved = sub
		} else {
			resolved = username
		}
	}

	session := domain.Session{
		Token:    result.Token,
		Role:     domain.NormalizeRole(result.RawRole),
		Username: resolved,
	}
	if err := uc.sessions.Save(session); err != nil {
		return domain.Session{}, "", fmt.Errorf("guardar sesión: %w", err)
	}

	uc.log.Info().Str("username", session.Username).Str("role", string(session.Role)).Msg("login correcto")
	return session, redirectFor(session.Role), nil
}

func redirectFor(role domain.Role) RedirectTarget {
	switch role {
	case domain.RoleAdmin:
		return RedirectAdminDashboard
	case domain.RoleSeller:
		return RedirectSellerDashboard
	default:
		return RedirectStorefront
	}
}

// Register da de alta un usuario. El rol que teclea el usuario pasa tal cual
// al backend (CLIENT o SHOP, que es lo que el auth-service espera para
// vendedores); la normalización ocurre recién al hacer login.
func (uc *UseCase) Register(ctx context.Context, username, email, password, role string) error {
	if role == "" {
		role = "CLIENT"
	}
	return uc.api.Register(ctx, gateway.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	})
}

// Logout borra la sesión local. El token no se revoca server-side: expira
// solo por su claim exp.
func (uc *UseCase) Logout() error {
	return uc.sessions.Clear()
}
