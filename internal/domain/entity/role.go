package entity

import "fmt"

// Role es la enumeración cerrada de roles del sistema. Se modela como tipo
// propio (no string suelto) para que agregar un rol sea un cambio verificado
// en compilación en todos los switch exhaustivos.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleSupplier Role = "supplier"
	RoleStaff    Role = "staff"
)

// IDs de la tabla roles (seed fijo, solo lectura en runtime).
const (
	RoleIDAdmin    = 1
	RoleIDManager  = 2
	RoleIDSupplier = 3
	RoleIDStaff    = 4
)

// AllRoles roles válidos en orden de seed.
var AllRoles = []Role{RoleAdmin, RoleManager, RoleSupplier, RoleStaff}

// ParseRole convierte un nombre de rol a Role. Falla con nombres desconocidos.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleSupplier, RoleStaff:
		return Role(s), nil
	default:
		return "", fmt.Errorf("rol desconocido: %q", s)
	}
}

// RoleFromID resuelve el Role a partir del ID de la tabla roles.
func RoleFromID(id int) (Role, error) {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin, nil
	case RoleIDManager:
		return RoleManager, nil
	case RoleIDSupplier:
		return RoleSupplier, nil
	case RoleIDStaff:
		return RoleStaff, nil
	default:
		return "", fmt.Errorf("role_id desconocido: %d", id)
	}
}

// ID devuelve el ID de la tabla roles para el rol.
func (r Role) ID() int {
	switch r {
	case RoleAdmin:
		return RoleIDAdmin
	case RoleManager:
		return RoleIDManager
	case RoleSupplier:
		return RoleIDSupplier
	case RoleStaff:
		return RoleIDStaff
	}
	return 0
}

// String implementa fmt.Stringer.
func (r Role) String() string { return string(r) }
