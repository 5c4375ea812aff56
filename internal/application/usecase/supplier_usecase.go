package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/brewops/brewops-api/internal/application/dto"
	"github.com/brewops/brewops-api/internal/domain"
	"github.com/brewops/brewops-api/internal/domain/entity"
	"github.com/brewops/brewops-api/internal/domain/repository"
)

// SupplierUseCase gestión de suppliers (usuarios con rol supplier) por admin/staff.
type SupplierUseCase struct {
	userRepo repository.UserRepository
}

// NewSupplierUseCase construye el caso de uso de suppliers.
func NewSupplierUseCase(userRepo repository.UserRepository) *SupplierUseCase {
	return &SupplierUseCase{userRepo: userRepo}
}

// List devuelve todos los suppliers.
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	users, err := uc.userRepo.ListByRole(ctx, entity.RoleSupplier)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toSupplierResponse(u))
	}
	return out, nil
}

// GetByID devuelve un supplier; usuarios de otro rol cuentan como inexistentes.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	u, err := uc.userRepo.GetByIDAndRole(ctx, id, entity.RoleSupplier)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSupplierResponse(u)
	return &resp, nil
}

// Create da de alta un supplier activo con el password hasheado.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         entity.RoleSupplier,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := toSupplierResponse(user)
	return &resp, nil
}

// Update edita los datos de un supplier existente.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) error {
	u, err := uc.userRepo.GetByIDAndRole(ctx, id, entity.RoleSupplier)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	u.Username = in.Username
	u.Email = in.Email
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	u.UpdatedAt = time.Now()
	return uc.userRepo.UpdateProfile(ctx, u)
}

// UpdateStatus activa o desactiva un supplier.
func (uc *SupplierUseCase) UpdateStatus(ctx context.Context, id string, active bool) error {
	u, err := uc.userRepo.GetByIDAndRole(ctx, id, entity.RoleSupplier)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	ok, err := uc.userRepo.UpdateStatus(ctx, id, active)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un supplier (borrado físico de la cuenta).
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	u, err := uc.userRepo.GetByIDAndRole(ctx, id, entity.RoleSupplier)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	ok, err := uc.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toSupplierResponse(u *entity.User) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
