package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brewops/brewops-api/internal/application/dto"
	"github.com/brewops/brewops-api/internal/application/usecase"
	"github.com/brewops/brewops-api/internal/domain/entity"
)

// DeliveryHandler registro y ciclo de vida de entregas.
type DeliveryHandler struct {
	uc *usecase.DeliveryUseCase
}

// NewDeliveryHandler construye el handler de entregas.
func NewDeliveryHandler(uc *usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// List godoc
// @Summary      Listar entregas
// @Tags         delivery
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/delivery [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	deliveries, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(deliveries))
}

// ListMine godoc
// @Summary      Listar las entregas del supplier autenticado
// @Tags         delivery
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/delivery/supplier [get]
func (h *DeliveryHandler) ListMine(c *fiber.Ctx) error {
	ident := GetIdentity(c)
	deliveries, err := h.uc.ListBySupplier(c.UserContext(), ident.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(deliveries))
}

// GetByID godoc
// @Summary      Obtener entrega por ID
// @Tags         delivery
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la entrega"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/delivery/{id} [get]
func (h *DeliveryHandler) GetByID(c *fiber.Ctx) error {
	delivery, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(delivery))
}

// Create godoc
// @Summary      Registrar una entrega
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.DeliveryRequest  true  "datos de la entrega"
// @Success      201  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/delivery [post]
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.DeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	date, errs := in.Validate()
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailValidation(errs))
	}
	ident := GetIdentity(c)
	delivery, err := h.uc.Create(c.UserContext(), ident.ID, in, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("entrega registrada", delivery))
}

// Update godoc
// @Summary      Editar una entrega (dentro de la ventana de 10 minutos)
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string               true  "ID de la entrega"
// @Param        body  body  dto.DeliveryRequest  true  "datos de la entrega"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/delivery/{id} [put]
func (h *DeliveryHandler) Update(c *fiber.Ctx) error {
	var in dto.DeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	date, errs := in.Validate()
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailValidation(errs))
	}
	if err := h.uc.Update(c.UserContext(), c.Params("id"), in, date); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage("entrega actualizada", nil))
}

// Delete godoc
// @Summary      Eliminar una entrega (borrado lógico, dentro de la ventana)
// @Tags         delivery
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la entrega"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/delivery/{id} [delete]
func (h *DeliveryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.SoftDelete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage("entrega eliminada", nil))
}

// Accept godoc
// @Summary      Aceptar una entrega fijando el método de pago (una sola vez)
// @Tags         delivery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID de la entrega"
// @Param        body  body  dto.AcceptDeliveryRequest  true  "payment_method: spot | monthly"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/delivery/accept/{id} [put]
func (h *DeliveryHandler) Accept(c *fiber.Ctx) error {
	var in dto.AcceptDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
	}
	method, ok := entity.ParsePaymentMethod(in.PaymentMethod)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "payment_method debe ser spot o monthly"))
	}
	ident := GetIdentity(c)
	out, err := h.uc.Accept(c.UserContext(), c.Params("id"), ident.ID, method)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage("entrega aceptada", out))
}
