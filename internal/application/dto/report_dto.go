package dto

import "github.com/shopspring/decimal"

// MonthlyTotalDTO kilos entregados en un mes del año en curso.
type MonthlyTotalDTO struct {
	Month         int             `json:"month"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

// SupplierPerformanceDTO fila del ranking de suppliers.
type SupplierPerformanceDTO struct {
	SupplierName  string          `json:"supplier_name"`
	DeliveryCount int             `json:"delivery_count"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	AvgQuantity   decimal.Decimal `json:"avg_quantity_per_delivery"`
}

// PaymentStatusDTO distribución de entregas por estado de pago.
type PaymentStatusDTO struct {
	PaymentStatus string          `json:"payment_status"`
	Count         int             `json:"count"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

// StaffPerformanceDTO fila del ranking de staff.
type StaffPerformanceDTO struct {
	StaffName     string          `json:"staff_name"`
	DeliveryCount int             `json:"delivery_count"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

// RecentDeliveryDTO entrega reciente para el widget del dashboard.
type RecentDeliveryDTO struct {
	DeliveryID    string          `json:"delivery_id"`
	SupplierName  string          `json:"supplier_name"`
	StaffName     string          `json:"staff_name"`
	QuantityKg    decimal.Decimal `json:"quantity_kg"`
	DeliveryDate  string          `json:"delivery_date"`
	PaymentStatus string          `json:"payment_status"`
}

// DeliveryStatsDTO respuesta de GET /reports/delivery-stats.
// Las claves replican las que consume el dashboard existente.
type DeliveryStatsDTO struct {
	MonthlyData          []MonthlyTotalDTO        `json:"monthlyData"`
	SupplierData         []SupplierPerformanceDTO `json:"supplierData"`
	PaymentStatusData    []PaymentStatusDTO       `json:"paymentStatusData"`
	StaffPerformanceData []StaffPerformanceDTO    `json:"staffPerformanceData"`
	RecentDeliveries     []RecentDeliveryDTO      `json:"recentDeliveries"`
}
