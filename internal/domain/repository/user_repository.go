package repository

import (
	"context"

	"github.com/brewops/brewops-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no existe la fila; los mutadores
// devuelven false cuando no afectaron ninguna fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByLogin busca por username o email indistintamente (pantalla de login).
	GetByLogin(ctx context.Context, login string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)
	GetByIDAndRole(ctx context.Context, id string, role entity.Role) (*entity.User, error)
	// IsActiveWithRole verifica elegibilidad: existe, tiene el rol y está activo.
	IsActiveWithRole(ctx context.Context, id string, role entity.Role) (bool, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
	UpdateStatus(ctx context.Context, id string, active bool) (bool, error)
	UpdateRole(ctx context.Context, id string, role entity.Role) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RoleRow fila de la tabla roles (seed fijo, solo lectura en runtime).
type RoleRow struct {
	ID          int
	Name        string
	Description string
}

// RoleRepository consultas de solo lectura sobre la tabla roles.
type RoleRepository interface {
	List(ctx context.Context) ([]RoleRow, error)
}
