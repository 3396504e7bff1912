package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shadows/nblb-console/internal/domain"
)

// AuthAPI endpoints del auth-service: login/registro públicos y CRUD de
// usuarios (solo admin).
type AuthAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

// LoginResult credenciales crudas devueltas por el backend. RawRole se entrega
// sin normalizar: la canonización es trabajo del caso de uso, en la frontera.
type LoginResult struct {
	Token    string
	RawRole  string
	Username string
}

// loginResponse tolera las tres formas históricas en que el backend reporta el
// rol: `role`, `roles[0]` o `authorities[0].authority`.
type loginResponse struct {
	Token       string   `json:"token"`
	Role        string   `json:"role"`
	Roles       []string `json:"roles"`
	Authorities []struct {
		Authority string `json:"authority"`
	} `json:"authorities"`
	Username string `json:"username"`
}

func (r loginResponse) role() string {
	switch {
	case r.Role != "":
		return r.Role
	case len(r.Roles) > 0:
		return r.Roles[0]
	case len(r.Authorities) > 0:
		return r.Authorities[0].Authority
	}
	return ""
}

// Login autentica contra POST /auth/api/login.
func (a *AuthAPI) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var resp loginResponse
	if err := a.client.doJSON(ctx, http.MethodPost, "/auth/api/login", body, &resp); err != nil {
		return LoginResult{}, err
	}
	if resp.Token == "" {
		return LoginResult{}, fmt.Errorf("%w: login sin token", domain.ErrInvalidResponse)
	}
	return LoginResult{Token: resp.Token, RawRole: resp.role(), Username: resp.Username}, nil
}

// RegisterRequest alta de usuario pública. Role acepta lo que acepte el
// backend (CLIENT o el legacy SHOP para vendedores).
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register registra vía POST /auth/api/register.
func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) error {
	return a.client.doJSON(ctx, http.MethodPost, "/auth/api/register", req, nil)
}

// ── CRUD de usuarios (admin) ──────────────────────────────────────────────────

// User usuario de la plataforma tal como lo lista el auth-service.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UserInput payload de creación/actualización. Password solo aplica al alta.
type UserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

func (a *AuthAPI) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := a.client.doJSON(ctx, http.MethodGet, "/auth/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *AuthAPI) CreateUser(ctx context.Context, in UserInput) error {
	return a.client.doJSON(ctx, http.MethodPost, "/auth/api/users", in, nil)
}

func (a *AuthAPI) UpdateUser(ctx context.Context, id int64, in UserInput) error {
	return a.client.doJSON(ctx, http.MethodPut, fmt.Sprintf("/auth/api/users/%d", id), in, nil)
}

func (a *AuthAPI) DeleteUser(ctx context.Context, id int64) error {
	return a.client.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/auth/api/users/%d", id), nil, nil)
}
