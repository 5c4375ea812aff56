package dto

import (
	"strings"
	"time"
)

// CreateSupplierRequest alta de supplier por admin/staff (crea un usuario con rol supplier).
type CreateSupplierRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Validate valida el alta de supplier.
func (r *CreateSupplierRequest) Validate() []FieldError {
	var errs []FieldError
	r.Username = strings.TrimSpace(r.Username)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)

	if len(r.Username) < 3 {
		errs = append(errs, FieldError{Field: "username", Message: "username debe tener al menos 3 caracteres"})
	}
	if !emailRe.MatchString(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "email inválido"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "password debe tener al menos 6 caracteres"})
	}
	if r.FirstName == "" {
		errs = append(errs, FieldError{Field: "firstName", Message: "nombre requerido"})
	}
	if r.LastName == "" {
		errs = append(errs, FieldError{Field: "lastName", Message: "apellido requerido"})
	}
	return errs
}

// UpdateSupplierRequest edición de datos de un supplier.
type UpdateSupplierRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsActive  *bool  `json:"isActive"`
}

// Validate valida la edición de supplier.
func (r *UpdateSupplierRequest) Validate() []FieldError {
	var errs []FieldError
	r.Username = strings.TrimSpace(r.Username)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)

	if len(r.Username) < 3 {
		errs = append(errs, FieldError{Field: "username", Message: "username debe tener al menos 3 caracteres"})
	}
	if !emailRe.MatchString(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "email inválido"})
	}
	if r.FirstName == "" {
		errs = append(errs, FieldError{Field: "firstName", Message: "nombre requerido"})
	}
	if r.LastName == "" {
		errs = append(errs, FieldError{Field: "lastName", Message: "apellido requerido"})
	}
	return errs
}

// SupplierStatusRequest body de PATCH /suppliers/:id/status.
type SupplierStatusRequest struct {
	IsActive *bool `json:"isActive"`
}

// SupplierResponse salida de un supplier.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
