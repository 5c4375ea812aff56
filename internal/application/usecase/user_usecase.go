package usecase

import (
	"context"

	"github.com/brewops/brewops-api/internal/application/auth"
	"github.com/brewops/brewops-api/internal/application/dto"
	"github.com/brewops/brewops-api/internal/domain"
	"github.com/brewops/brewops-api/internal/domain/entity"
	"github.com/brewops/brewops-api/internal/domain/repository"
)

// UserUseCase administración de cuentas (pantalla de admin/manager).
//
// Regla de auto-acción: un admin nunca puede desactivarse, cambiarse el rol
// ni borrarse a sí mismo; esas llamadas fallan con ErrSelfAction (403) sin
// importar el rol del caller.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List devuelve todas las cuentas con su rol.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// GetByID devuelve una cuenta por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(u), nil
}

// UpdateStatus activa o desactiva una cuenta. Desactivarse a sí mismo está prohibido.
func (uc *UserUseCase) UpdateStatus(ctx context.Context, callerID, targetID string, active bool) error {
	if callerID == targetID && !active {
		return domain.ErrSelfAction
	}
	ok, err := uc.userRepo.UpdateStatus(ctx, targetID, active)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateRole cambia el rol de una cuenta. Cambiarse el propio rol está prohibido.
func (uc *UserUseCase) UpdateRole(ctx context.Context, callerID, targetID string, roleID int) error {
	if callerID == targetID {
		return domain.ErrSelfAction
	}
	role, err := entity.RoleFromID(roleID)
	if err != nil {
		return domain.ErrInvalidRole
	}
	ok, err := uc.userRepo.UpdateRole(ctx, targetID, role)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete elimina una cuenta (borrado físico). Borrarse a sí mismo está prohibido.
func (uc *UserUseCase) Delete(ctx context.Context, callerID, targetID string) error {
	if callerID == targetID {
		return domain.ErrSelfAction
	}
	ok, err := uc.userRepo.Delete(ctx, targetID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}
	return nil
}
