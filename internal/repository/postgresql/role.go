package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/absensi-app/absensi-backend-go/internal/domain/role"
	"github.com/absensi-app/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type roleRepository struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepository{db: db}
}

// Create implements role.RoleRepository.
func (r *roleRepository) Create(ctx context.Context, newRole role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roles (id, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, newRole.ID, newRole.Name).
		Scan(&newRole.ID, &newRole.CreatedAt, &newRole.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return role.Role{}, role.ErrRoleNameExists
		}
		return role.Role{}, fmt.Errorf("failed to create role: %w", err)
	}

	return newRole, nil
}

// GetByID implements role.RoleRepository.
func (r *roleRepository) GetByID(ctx context.Context, id string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	var found role.Role
	err := q.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM roles WHERE id = $1`,
		id,
	).Scan(&found.ID, &found.Name, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, fmt.Errorf("failed to get role by ID: %w", err)
	}

	return found, nil
}

// GetByName implements role.RoleRepository.
func (r *roleRepository) GetByName(ctx context.Context, name string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	var found role.Role
	err := q.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM roles WHERE name = $1`,
		name,
	).Scan(&found.ID, &found.Name, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, fmt.Errorf("failed to get role by name: %w", err)
	}

	return found, nil
}

// List implements role.RoleRepository.
func (r *roleRepository) List(ctx context.Context) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, created_at, updated_at FROM roles ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		var found role.Role
		if err := rows.Scan(&found.ID, &found.Name, &found.CreatedAt, &found.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, found)
	}

	return roles, nil
}

// Update implements role.RoleRepository.
func (r *roleRepository) Update(ctx context.Context, updated role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE roles
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, created_at, updated_at
	`

	var result role.Role
	err := q.QueryRow(ctx, query, updated.Name, updated.ID).
		Scan(&result.ID, &result.Name, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return role.Role{}, role.ErrRoleNameExists
		}
		return role.Role{}, fmt.Errorf("failed to update role: %w", err)
	}

	return result, nil
}

// Delete implements role.RoleRepository.
func (r *roleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}

	return nil
}
