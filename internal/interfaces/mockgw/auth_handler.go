package mockgw

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/pkg/jwt"
)

// AuthHandler maneja login, registro y la administración de usuarios.
type AuthHandler struct {
	store      *Store
	jwtSecret  string
	jwtIssuer  string
	expMinutes int
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(store *Store, secret, issuer string, expMinutes int) *AuthHandler {
	return &AuthHandler{store: store, jwtSecret: secret, jwtIssuer: issuer, expMinutes: expMinutes}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in loginRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Username == "" || in.Password == "" {
		return errorJSON(c, fiber.StatusBadRequest, "username y password son requeridos")
	}
	user, ok := h.store.UserByUsername(in.Username)
	if !ok || user.Password != in.Password {
		return errorJSON(c, fiber.StatusUnauthorized, "credenciales inválidas")
	}
	token, err := jwt.Generate(h.jwtSecret, user.Username, string(user.Role), h.jwtIssuer, h.expMinutes)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "no se pudo generar el token")
	}
	return c.JSON(fiber.Map{
		"token":    token,
		"role":     string(user.Role),
		"username": user.Username,
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in registerRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Username == "" || in.Password == "" {
		return errorJSON(c, fiber.StatusBadRequest, "username y password son requeridos")
	}
	role := domain.NormalizeRole(in.Role)
	if role == domain.RoleNone {
		role = domain.RoleClient
	}
	user, err := h.store.CreateUser(in.Username, in.Email, in.Password, role)
	if err != nil {
		return errorJSON(c, fiber.StatusConflict, "el username ya está registrado")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// ── Administración de usuarios (solo ADMIN) ───────────────────────────────────

type userInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	return c.JSON(h.store.Users())
}

func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var in userInput
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Username == "" || in.Password == "" {
		return errorJSON(c, fiber.StatusBadRequest, "username y password son requeridos")
	}
	role := domain.NormalizeRole(in.Role)
	if role == domain.RoleNone {
		role = domain.RoleClient
	}
	user, err := h.store.CreateUser(in.Username, in.Email, in.Password, role)
	if err != nil {
		return errorJSON(c, fiber.StatusConflict, "el username ya está registrado")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "id inválido")
	}
	var in userInput
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if !h.store.UpdateUser(int64(id), in.Username, in.Email, domain.NormalizeRole(in.Role)) {
		return errorJSON(c, fiber.StatusNotFound, "usuario no encontrado")
	}
	return c.JSON(fiber.Map{"message": "usuario actualizado"})
}

func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "id inválido")
	}
	if !h.store.DeleteUser(int64(id)) {
		return errorJSON(c, fiber.StatusNotFound, "usuario no encontrado")
	}
	return c.JSON(fiber.Map{"message": "usuario eliminado"})
}
