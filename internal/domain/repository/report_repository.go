package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewops/brewops-api/internal/domain/entity"
)

// MonthlyTotalResult total de kilos entregados por mes del año consultado.
type MonthlyTotalResult struct {
	Month         int
	TotalQuantity decimal.Decimal
}

// SupplierPerformanceResult ranking de suppliers por volumen entregado.
type SupplierPerformanceResult struct {
	SupplierName  string
	DeliveryCount int
	TotalQuantity decimal.Decimal
	AvgQuantity   decimal.Decimal
}

// PaymentStatusCountResult distribución de entregas por estado de pago.
type PaymentStatusCountResult struct {
	PaymentStatus entity.PaymentStatus
	Count         int
	TotalQuantity decimal.Decimal
}

// StaffPerformanceResult ranking de staff por entregas registradas.
type StaffPerformanceResult struct {
	StaffName     string
	DeliveryCount int
	TotalQuantity decimal.Decimal
}

// ReportRepository consultas de solo lectura para los reportes del dashboard
// y el estado de cuenta mensual por supplier.
type ReportRepository interface {
	// MonthlyTotals kilos entregados por mes del año indicado.
	MonthlyTotals(ctx context.Context, year int) ([]MonthlyTotalResult, error)
	// TopSuppliers los `limit` suppliers con mayor volumen entregado.
	TopSuppliers(ctx context.Context, limit int) ([]SupplierPerformanceResult, error)
	// PaymentDistribution conteo y kilos por estado de pago.
	PaymentDistribution(ctx context.Context) ([]PaymentStatusCountResult, error)
	// StaffPerformance los `limit` miembros de staff con más entregas registradas.
	StaffPerformance(ctx context.Context, limit int) ([]StaffPerformanceResult, error)
	// RecentDeliveries las `limit` entregas más recientes por fecha de entrega.
	RecentDeliveries(ctx context.Context, limit int) ([]*entity.Delivery, error)
	// SupplierDeliveriesBetween entregas de un supplier en el rango [from, to),
	// ordenadas por fecha, para el estado de cuenta mensual.
	SupplierDeliveriesBetween(ctx context.Context, supplierID string, from, to time.Time) ([]*entity.Delivery, error)
}
