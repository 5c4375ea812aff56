package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/brewops/brewops-api/internal/application/dto"
	"github.com/brewops/brewops-api/internal/domain"
)

// respondError mapea los errores sentinela del dominio al envelope y status
// HTTP correspondientes. Errores no reconocidos responden 500 sin detalle.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", err.Error()))
	case errors.Is(err, domain.ErrInvalidSupplier):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_SUPPLIER", "supplier inexistente, inactivo o con otro rol"))
	case errors.Is(err, domain.ErrInvalidRole):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_ROLE", "rol desconocido"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("UNAUTHORIZED", "credenciales inválidas"))
	case errors.Is(err, domain.ErrSelfAction):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("SELF_ACTION", "no puedes aplicar esta acción sobre tu propia cuenta"))
	case errors.Is(err, domain.ErrDeliveryLocked):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("DELIVERY_LOCKED", "la ventana de edición de 10 minutos ya venció"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("FORBIDDEN", "acceso denegado"))
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("USER_NOT_FOUND", "usuario no encontrado"))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "recurso no encontrado"))
	case errors.Is(err, domain.ErrDuplicateUser):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("DUPLICATE_USER", "username o email ya registrado"))
	case errors.Is(err, domain.ErrAlreadyAccepted):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("ALREADY_ACCEPTED", "la entrega ya tiene método de pago confirmado"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "error interno"))
	}
}
