package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus estado de pago de una entrega de té.
//
// Los valores conservan el casing del API existente: los estados que fija el
// staff van capitalizados; los estados terminales que fija el supplier al
// aceptar van en minúscula y coinciden con el payment_method elegido.
type PaymentStatus string

const (
	PaymentPending         PaymentStatus = "Pending"
	PaymentSpotPending     PaymentStatus = "Spot Payment Pending"
	PaymentPaid            PaymentStatus = "Paid"
	PaymentProcessing      PaymentStatus = "Processing"
	PaymentAcceptedSpot    PaymentStatus = "spot"    // terminal, fijado por el supplier
	PaymentAcceptedMonthly PaymentStatus = "monthly" // terminal, fijado por el supplier
)

// PaymentMethod método de pago elegido por el supplier al aceptar.
type PaymentMethod string

const (
	MethodSpot    PaymentMethod = "spot"
	MethodMonthly PaymentMethod = "monthly"
)

// StaffSettable indica si el estado puede ser fijado por staff en create/update.
// Los terminales spot/monthly solo se alcanzan vía la acción de aceptación.
func (s PaymentStatus) StaffSettable() bool {
	switch s {
	case PaymentPending, PaymentSpotPending, PaymentPaid, PaymentProcessing:
		return true
	case PaymentAcceptedSpot, PaymentAcceptedMonthly:
		return false
	}
	return false
}

// Accepted indica si la entrega ya fue aceptada por el supplier (estado terminal).
func (s PaymentStatus) Accepted() bool {
	return s == PaymentAcceptedSpot || s == PaymentAcceptedMonthly
}

// ParsePaymentMethod valida el método de pago del body de aceptación.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case MethodSpot, MethodMonthly:
		return PaymentMethod(s), true
	}
	return "", false
}

// Status devuelve el estado terminal que corresponde al método aceptado.
func (m PaymentMethod) Status() PaymentStatus {
	if m == MethodMonthly {
		return PaymentAcceptedMonthly
	}
	return PaymentAcceptedSpot
}

// Delivery representa una entrega de té registrada por staff para un supplier.
// El borrado es lógico: is_deleted oculta la fila a todas las lecturas.
type Delivery struct {
	ID            string
	SupplierID    string
	StaffID       string
	QuantityKg    decimal.Decimal
	DeliveryDate  time.Time // solo fecha
	DeliveryTime  string    // HH:MM
	PaymentStatus PaymentStatus
	PaymentMethod *PaymentMethod // nil hasta que el supplier acepta
	IsDeleted     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Denormalizados para listados (JOIN con users); vacíos en escrituras.
	SupplierName     string
	SupplierUsername string
	StaffName        string
	StaffUsername    string
}
