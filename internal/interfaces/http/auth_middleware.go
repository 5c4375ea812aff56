package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/brewops/brewops-api/internal/application/dto"
	"github.com/brewops/brewops-api/internal/domain/entity"
	"github.com/brewops/brewops-api/pkg/jwt"
)

// LocalIdentity key de c.Locals con la identidad autenticada.
const LocalIdentity = "identity"

// Identity datos del usuario autenticado, disponibles tras el middleware.
// Nunca incluye el hash del password.
type Identity struct {
	ID        string
	Username  string
	Email     string
	FirstName string
	LastName  string
	Role      entity.Role
}

// IdentityStore lo que el middleware necesita para resolver la identidad.
// Interfaz local para no acoplar el paquete http al puerto completo de
// repositorio; la satisface repository.UserRepository.
type IdentityStore interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token JWT y carga la identidad en c.Locals.
// El rol y el estado de la cuenta se releen de la DB en cada request: una
// desactivación o cambio de rol aplica desde la siguiente llamada aunque el
// token siga vigente.
func AuthMiddleware(jwtSecret string, store IdentityStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("MISSING_TOKEN", "Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("INVALID_TOKEN", "formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("MISSING_TOKEN", "token vacío"))
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("INVALID_TOKEN", "token inválido o expirado"))
		}
		user, err := store.GetByID(c.UserContext(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "error consultando la cuenta"))
		}
		if user == nil || !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("USER_NOT_FOUND", "cuenta inexistente o inactiva"))
		}
		c.Locals(LocalIdentity, &Identity{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      user.Role,
		})
		return c.Next()
	}
}

// RequireRole exige que la identidad tenga alguno de los roles indicados.
// Se monta después de AuthMiddleware.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident := GetIdentity(c)
		if ident == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("MISSING_TOKEN", "autenticación requerida"))
		}
		for _, r := range roles {
			if ident.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("FORBIDDEN", "rol sin permiso para este recurso"))
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) *Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return nil
	}
	ident, _ := v.(*Identity)
	return ident
}
