package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/brewops/brewops-api/internal/application/auth"
	"github.com/brewops/brewops-api/internal/application/dto"
	"github.com/brewops/brewops-api/internal/domain"
	"github.com/brewops/brewops-api/internal/domain/entity"
	"github.com/brewops/brewops-api/internal/domain/repository"
	pkgjwt "github.com/brewops/brewops-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrDuplicateUser
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByLogin(_ context.Context, login string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == login || u.Email == login {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) ListByRole(_ context.Context, role entity.Role) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetByIDAndRole(_ context.Context, id string, role entity.Role) (*entity.User, error) {
	u := f.users[id]
	if u == nil || u.Role != role {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) IsActiveWithRole(_ context.Context, id string, role entity.Role) (bool, error) {
	u := f.users[id]
	return u != nil && u.Role == role && u.IsActive, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, id string, active bool) (bool, error) {
	u := f.users[id]
	if u == nil {
		return false, nil
	}
	u.IsActive = active
	return true, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id string, role entity.Role) (bool, error) {
	u := f.users[id]
	if u == nil {
		return false, nil
	}
	u.Role = role
	return true, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

type fakeRoleRepo struct{}

func (fakeRoleRepo) List(_ context.Context) ([]repository.RoleRow, error) {
	return []repository.RoleRow{
		{ID: 1, Name: "admin"},
		{ID: 2, Name: "manager"},
		{ID: 3, Name: "supplier"},
		{ID: 4, Name: "staff"},
	}, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)
var _ repository.RoleRepository = fakeRoleRepo{}

const testSecret = "secret-de-tests-auth"

func newUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, fakeRoleRepo{}, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "brewops-test",
	})
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:  "marta",
		Email:     "marta@brewops.local",
		Password:  "secreto1",
		FirstName: "Marta",
		LastName:  "Gil",
		RoleID:    entity.RoleIDStaff,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioYEmiteToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	out, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.Equal(t, "marta", out.User.Username)
	assert.Equal(t, "staff", out.User.RoleName)
	assert.True(t, out.User.IsActive, "la cuenta nueva debe quedar activa")

	// El token debe ser parseable y llevar el ID del usuario como subject.
	userID, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)

	// El hash nunca viaja en la respuesta y el password no se guarda en claro.
	stored := repo.users[out.User.ID]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto1")))
}

func TestRegister_RolDesconocido_Falla(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	in := registerReq()
	in.RoleID = 99
	_, err := uc.Register(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestRegister_UsernameDuplicado_Conflicto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	in := registerReq()
	in.Email = "otra@brewops.local" // mismo username, email distinto
	_, err = uc.Register(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrDuplicateUser)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ConUsernameYConEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	for _, login := range []string{"marta", "marta@brewops.local"} {
		out, err := uc.Login(context.Background(), dto.LoginRequest{Username: login, Password: "secreto1"})
		require.NoError(t, err, "login con %q debe funcionar", login)
		assert.NotEmpty(t, out.Token)
	}
}

func TestLogin_PasswordIncorrecto_NoAutorizado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "marta", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva_NoAutorizado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	out, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	repo.users[out.User.ID].IsActive = false

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "marta", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"cuenta inactiva debe responder igual que credenciales inválidas")
}

func TestLogin_UsuarioInexistente_NoAutorizado(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Roles
// ──────────────────────────────────────────────────────────────────────────────

func TestRoles_ListaCompleta(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())

	roles, err := uc.Roles(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, 4)
	assert.Equal(t, "admin", roles[0].Name)
}
