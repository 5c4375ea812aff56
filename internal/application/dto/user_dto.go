package dto

import (
	"regexp"
	"strings"
	"time"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// LoginRequest entrada para login: username o email + password.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate valida el body de login.
func (r *LoginRequest) Validate() []FieldError {
	var errs []FieldError
	r.Username = strings.TrimSpace(r.Username)
	if r.Username == "" {
		errs = append(errs, FieldError{Field: "username", Message: "username o email requerido"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "password debe tener al menos 6 caracteres"})
	}
	return errs
}

// RegisterRequest entrada para registro de cuenta con rol.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	RoleID    int    `json:"roleId"`
}

// Validate valida el body de registro campo a campo.
func (r *RegisterRequest) Validate() []FieldError {
	var errs []FieldError
	r.Username = strings.TrimSpace(r.Username)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)

	if len(r.Username) < 3 || len(r.Username) > 50 {
		errs = append(errs, FieldError{Field: "username", Message: "username debe tener entre 3 y 50 caracteres"})
	} else if !usernameRe.MatchString(r.Username) {
		errs = append(errs, FieldError{Field: "username", Message: "username solo admite letras, números y guión bajo"})
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
	if r.RoleID < 1 {
		errs = append(errs, FieldError{Field: "roleId", Message: "rol requerido"})
	}
	return errs
}

// UserResponse salida de un usuario (nunca incluye el hash del password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	RoleName  string    `json:"role_name"`
	RoleID    int       `json:"role_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse salida de login/registro: usuario + token firmado.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// UpdateUserStatusRequest body de PATCH /users/:id/status.
type UpdateUserStatusRequest struct {
	IsActive *bool `json:"isActive"`
}

// UpdateUserRoleRequest body de PATCH /users/:id/role.
type UpdateUserRoleRequest struct {
	RoleID int `json:"roleId"`
}

// RoleResponse fila de rol para GET /auth/roles.
type RoleResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
