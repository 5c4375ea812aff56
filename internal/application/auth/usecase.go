// Package auth contiene los casos de uso de autenticación: registro, login
// y consulta de roles. La verificación del token por request vive en el
// middleware HTTP; aquí solo se emite.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/brewops/brewops-api/internal/application/dto"
	"github.com/brewops/brewops-api/internal/domain"
	"github.com/brewops/brewops-api/internal/domain/entity"
	"github.com/brewops/brewops-api/internal/domain/repository"
	"github.com/brewops/brewops-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, roleRepo: roleRepo, jwtCfg: jwtCfg}
}

// Register crea una cuenta: valida el rol, hashea el password con bcrypt y
// persiste. La unicidad de username/email la refuerza el constraint de la DB;
// una violación llega como domain.ErrDuplicateUser sin dejar fila creada.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	role, err := entity.RoleFromID(in.RoleID)
	if err != nil {
		return nil, domain.ErrInvalidRole
	}
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
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{User: *ToUserResponse(user), Token: token}, nil
}

// Login verifica username/email + password contra el hash y emite el JWT.
// Usuario inexistente, password incorrecto y cuenta inactiva responden igual
// (ErrUnauthorized) para no filtrar cuál de los tres falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByLogin(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{User: *ToUserResponse(user), Token: token}, nil
}

// Roles lista los roles disponibles (pantalla de registro).
func (uc *AuthUseCase) Roles(ctx context.Context) ([]dto.RoleResponse, error) {
	rows, err := uc.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RoleResponse{ID: r.ID, Name: r.Name, Description: r.Description})
	}
	return out, nil
}

// ToUserResponse mapea la entidad a su DTO público (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		RoleName:  u.Role.String(),
		RoleID:    u.Role.ID(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
