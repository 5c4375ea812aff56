package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewops/brewops-api/internal/domain"
	"github.com/brewops/brewops-api/internal/domain/entity"
	"github.com/brewops/brewops-api/internal/domain/repository"
)

// StatementPDFGenerator puerto de generación del PDF del estado de cuenta.
// Lo implementa infrastructure/pdf; la interfaz vive aquí para invertir la dependencia.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, supplier *entity.User, period time.Time, deliveries []*entity.Delivery, totalKg decimal.Decimal) ([]byte, error)
}

// StatementUseCase genera el estado de cuenta mensual de un supplier:
// sus entregas del mes con el total de kilos, renderizado como PDF.
type StatementUseCase struct {
	userRepo   repository.UserRepository
	reportRepo repository.ReportRepository
	generator  StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(userRepo repository.UserRepository, reportRepo repository.ReportRepository, generator StatementPDFGenerator) *StatementUseCase {
	return &StatementUseCase{userRepo: userRepo, reportRepo: reportRepo, generator: generator}
}

// SupplierStatement genera el PDF del mes indicado (formato YYYY-MM; vacío =
// mes en curso) para el supplier dado.
//
// Retorna:
//   - (pdfBytes, filename, nil)   si todo sale bien.
//   - domain.ErrNotFound          si el supplier no existe o no tiene ese rol.
//   - domain.ErrInvalidInput      si el mes no parsea.
func (uc *StatementUseCase) SupplierStatement(ctx context.Context, supplierID, month string) (pdfBytes []byte, filename string, err error) {
	supplier, err := uc.userRepo.GetByIDAndRole(ctx, supplierID, entity.RoleSupplier)
	if err != nil {
		return nil, "", fmt.Errorf("statement: obtener supplier: %w", err)
	}
	if supplier == nil {
		return nil, "", domain.ErrNotFound
	}

	period := time.Now()
	if month != "" {
		period, err = time.Parse("2006-01", month)
		if err != nil {
			return nil, "", fmt.Errorf("%w: mes inválido (formato YYYY-MM)", domain.ErrInvalidInput)
		}
	}
	from := time.Date(period.Year(), period.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	deliveries, err := uc.reportRepo.SupplierDeliveriesBetween(ctx, supplierID, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("statement: consultar entregas: %w", err)
	}

	totalKg := decimal.Zero
	for _, d := range deliveries {
		totalKg = totalKg.Add(d.QuantityKg)
	}

	pdfBytes, err = uc.generator.GenerateStatementPDF(ctx, supplier, from, deliveries, totalKg)
	if err != nil {
		return nil, "", fmt.Errorf("statement: generar PDF: %w", err)
	}
	filename = fmt.Sprintf("estado-cuenta-%s-%s.pdf", supplier.Username, from.Format("2006-01"))
	return pdfBytes, filename, nil
}
