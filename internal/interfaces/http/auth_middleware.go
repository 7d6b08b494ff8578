package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/pkg/jwt"
)

// LocalIdentity clave de c.Locals con la entity.Identity autenticada.
const LocalIdentity = "identity"

// AuthMiddleware valida el Bearer Token JWT y guarda la identidad (id, email, roles) en c.Locals.
// Los roles se decodifican una sola vez aquí.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return newAPIError(fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return newAPIError(fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return newAPIError(fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return newAPIError(fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalIdentity, entity.Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Roles:  entity.NewRoleSet(claims.Roles...),
		})
		return c.Next()
	}
}

// RequireRole autoriza si la identidad tiene al menos uno de los roles indicados.
// Sin identidad en el contexto (middleware mal ordenado) responde 403.
func RequireRole(roles ...entity.Role) fiber.Handler {
	required := entity.RolesOf(roles...)
	return func(c *fiber.Ctx) error {
		id, ok := GetIdentity(c)
		if !ok {
			return domain.ErrForbidden
		}
		if !id.Roles.Intersects(required) {
			return domain.ErrForbidden
		}
		return c.Next()
	}
}

// GetIdentity devuelve la identidad autenticada (después de AuthMiddleware).
func GetIdentity(c *fiber.Ctx) (entity.Identity, bool) {
	id, ok := c.Locals(LocalIdentity).(entity.Identity)
	return id, ok
}
