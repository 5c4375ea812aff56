package entity

import "time"

// User representa una cuenta del sistema: admin, manager, supplier o staff.
// Exactamente un rol por usuario; username y email son únicos globalmente.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre completo para listados y reportes.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsSupplier indica si la cuenta tiene el rol supplier.
func (u *User) IsSupplier() bool { return u.Role == RoleSupplier }
