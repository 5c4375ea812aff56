package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brewops/brewops-api/internal/domain"
	"github.com/brewops/brewops-api/internal/domain/entity"
	"github.com/brewops/brewops-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)
var _ repository.RoleRepository = (*RoleRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Todas las lecturas hacen JOIN con roles para resolver el nombre del rol.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userSelect = `
	SELECT u.id, u.username, u.email, u.password_hash, u.first_name, u.last_name,
	       r.name, u.is_active, u.created_at, u.updated_at
	FROM users u
	JOIN roles r ON u.role_id = r.id`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario. Violación de unicidad de username o email
// se traduce a domain.ErrDuplicateUser.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name, role_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Role.ID(), user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateUser
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID con su rol.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByLogin obtiene un usuario por username o email (login).
func (r *UserRepo) GetByLogin(ctx context.Context, login string) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, userSelect+` WHERE u.username = $1 OR u.email = $1 LIMIT 1`, login))
	if err != nil {
		return nil, fmt.Errorf("get user by login: %w", err)
	}
	return u, nil
}

// GetByIDAndRole obtiene un usuario por ID solo si tiene el rol indicado.
func (r *UserRepo) GetByIDAndRole(ctx context.Context, id string, role entity.Role) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, userSelect+` WHERE u.id = $1 AND r.name = $2`, id, string(role)))
	if err != nil {
		return nil, fmt.Errorf("get user by id and role: %w", err)
	}
	return u, nil
}

// List devuelve todos los usuarios ordenados por fecha de alta descendente.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return r.queryUsers(ctx, userSelect+` ORDER BY u.created_at DESC`)
}

// ListByRole devuelve los usuarios de un rol, más recientes primero.
func (r *UserRepo) ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	return r.queryUsers(ctx, userSelect+` WHERE r.name = $1 ORDER BY u.created_at DESC`, string(role))
}

func (r *UserRepo) queryUsers(ctx context.Context, query string, args ...any) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
			&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// IsActiveWithRole verifica en una sola consulta que el usuario existe, tiene
// el rol indicado y está activo (chequeo de elegibilidad de supplier).
func (r *UserRepo) IsActiveWithRole(ctx context.Context, id string, role entity.Role) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users u
			JOIN roles r ON u.role_id = r.id
			WHERE u.id = $1 AND r.name = $2 AND u.is_active = TRUE
		)`
	var ok bool
	if err := r.pool.QueryRow(ctx, query, id, string(role)).Scan(&ok); err != nil {
		return false, fmt.Errorf("check active role: %w", err)
	}
	return ok, nil
}

// UpdateProfile actualiza los datos editables de una cuenta.
func (r *UserRepo) UpdateProfile(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET username = $2, email = $3, first_name = $4, last_name = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.FirstName, user.LastName, user.IsActive, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateUser
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdateStatus activa/desactiva una cuenta. false si la fila no existe.
func (r *UserRepo) UpdateStatus(ctx context.Context, id string, active bool) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET is_active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return false, fmt.Errorf("update user status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateRole cambia el rol de una cuenta. false si la fila no existe.
func (r *UserRepo) UpdateRole(ctx context.Context, id string, role entity.Role) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET role_id = $2, updated_at = NOW() WHERE id = $1`, id, role.ID())
	if err != nil {
		return false, fmt.Errorf("update user role: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina un usuario (borrado físico). false si la fila no existe.
func (r *UserRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// RoleRepo lecturas sobre la tabla roles (seed fijo).
type RoleRepo struct {
	pool *pgxpool.Pool
}

// NewRoleRepository construye el adaptador de roles.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// List devuelve los roles ordenados por nombre.
func (r *RoleRepo) List(ctx context.Context) ([]repository.RoleRow, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description FROM roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []repository.RoleRow
	for rows.Next() {
		var row repository.RoleRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Description); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
