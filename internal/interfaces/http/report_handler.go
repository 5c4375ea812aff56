package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brewops/brewops-api/internal/application/analytics"
	"github.com/brewops/brewops-api/internal/application/dto"
	"github.com/brewops/brewops-api/internal/domain/entity"
)

// ReportHandler estadísticas de entregas y estado de cuenta por supplier.
type ReportHandler struct {
	reportUC    *analytics.ReportUseCase
	statementUC *analytics.StatementUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(reportUC *analytics.ReportUseCase, statementUC *analytics.StatementUseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, statementUC: statementUC}
}

// DeliveryStats godoc
// @Summary      Estadísticas de entregas del año en curso
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/reports/delivery-stats [get]
func (h *ReportHandler) DeliveryStats(c *fiber.Ctx) error {
	stats, err := h.reportUC.DeliveryStats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(stats))
}

// SupplierStatement godoc
// @Summary      Estado de cuenta mensual de un supplier en PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id     path   string  true   "ID del supplier"
// @Param        month  query  string  false  "Mes en formato YYYY-MM (default: mes en curso)"
// @Success      200  {file}  file
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/supplier-statement/{id} [get]
func (h *ReportHandler) SupplierStatement(c *fiber.Ctx) error {
	supplierID := c.Params("id")
	ident := GetIdentity(c)
	// Un supplier solo puede pedir su propio estado de cuenta.
	if ident.Role == entity.RoleSupplier && ident.ID != supplierID {
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("FORBIDDEN", "solo puedes consultar tu propio estado de cuenta"))
	}
	pdfBytes, filename, err := h.statementUC.SupplierStatement(c.UserContext(), supplierID, c.Query("month"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
