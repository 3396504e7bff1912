package mockgw

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/shadows/nblb-console/internal/domain"
	"github.com/shadows/nblb-console/pkg/jwt"
)

// Locals keys para el usuario autenticado en Fiber.
const (
	LocalUsername = "username"
	LocalRole     = "role"
)

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// AuthMiddleware valida el Bearer Token JWT y deja username y rol en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return errorJSON(c, fiber.StatusUnauthorized, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "token vacío")
		}
		username, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return errorJSON(c, fiber.StatusUnauthorized, "token inválido o expirado")
		}
		c.Locals(LocalUsername, username)
		c.Locals(LocalRole, domain.NormalizeRole(role))
		return c.Next()
	}
}

// RequireRole corta con 403 si el rol autenticado no está en la lista.
func RequireRole(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if !role.In(roles...) {
			return errorJSON(c, fiber.StatusForbidden, "acceso denegado para el rol "+string(role))
		}
		return c.Next()
	}
}

// GetUsername devuelve el username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) domain.Role {
	v := c.Locals(LocalRole)
	if v == nil {
		return domain.RoleNone
	}
	r, _ := v.(domain.Role)
	return r
}
