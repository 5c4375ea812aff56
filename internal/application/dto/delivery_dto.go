package dto

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewops/brewops-api/internal/domain/entity"
)

var timeRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// DeliveryRequest body de creación y edición de entregas (mismos campos).
type DeliveryRequest struct {
	SupplierID    string          `json:"supplier_id"`
	QuantityKg    decimal.Decimal `json:"quantity_kg"`
	DeliveryDate  string          `json:"delivery_date"` // YYYY-MM-DD
	DeliveryTime  string          `json:"delivery_time"` // HH:MM
	PaymentStatus string          `json:"payment_status"`
}

// Validate valida el body; devuelve la fecha parseada cuando es válida.
// payment_status vacío se normaliza a "Pending"; los estados terminales
// spot/monthly no son asignables por staff.
func (r *DeliveryRequest) Validate() (time.Time, []FieldError) {
	var errs []FieldError

	if r.SupplierID == "" {
		errs = append(errs, FieldError{Field: "supplier_id", Message: "supplier requerido"})
	}
	if !r.QuantityKg.IsPositive() {
		errs = append(errs, FieldError{Field: "quantity_kg", Message: "la cantidad debe ser mayor que 0"})
	}
	date, err := time.Parse("2006-01-02", r.DeliveryDate)
	if err != nil {
		errs = append(errs, FieldError{Field: "delivery_date", Message: "fecha inválida (formato YYYY-MM-DD)"})
	}
	if !timeRe.MatchString(r.DeliveryTime) {
		errs = append(errs, FieldError{Field: "delivery_time", Message: "hora inválida (formato HH:MM)"})
	}
	if r.PaymentStatus == "" {
		r.PaymentStatus = string(entity.PaymentPending)
	}
	if !entity.PaymentStatus(r.PaymentStatus).StaffSettable() {
		errs = append(errs, FieldError{Field: "payment_status", Message: "estado de pago inválido"})
	}
	return date, errs
}

// AcceptDeliveryRequest body de PUT /delivery/accept/:id.
type AcceptDeliveryRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// DeliveryResponse salida de una entrega, con los nombres denormalizados
// de supplier y staff cuando el listado los trae.
type DeliveryResponse struct {
	ID               string          `json:"delivery_id"`
	SupplierID       string          `json:"supplier_id"`
	StaffID          string          `json:"staff_id"`
	QuantityKg       decimal.Decimal `json:"quantity_kg"`
	DeliveryDate     string          `json:"delivery_date"`
	DeliveryTime     string          `json:"delivery_time"`
	PaymentStatus    string          `json:"payment_status"`
	PaymentMethod    string          `json:"payment_method,omitempty"`
	SupplierName     string          `json:"supplier_name,omitempty"`
	SupplierUsername string          `json:"supplier_username,omitempty"`
	StaffName        string          `json:"staff_name,omitempty"`
	StaffUsername    string          `json:"staff_username,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AcceptDeliveryResponse salida de la aceptación.
type AcceptDeliveryResponse struct {
	DeliveryID    string `json:"delivery_id"`
	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`
}
