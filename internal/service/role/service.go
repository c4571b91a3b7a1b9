package role

import (
	"context"
	"fmt"
	"time"

	"github.com/absensi-app/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-app/absensi-backend-go/internal/domain/role"
	"github.com/absensi-app/absensi-backend-go/internal/pkg/database"
	"github.com/absensi-app/absensi-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoleServiceImpl struct {
	db *database.DB
	role.RoleRepository
	employeeRepo employee.EmployeeRepository
}

func NewRoleService(db *database.DB, roleRepo role.RoleRepository, employeeRepo employee.EmployeeRepository) role.RoleService {
	return &RoleServiceImpl{
		db:             db,
		RoleRepository: roleRepo,
		employeeRepo:   employeeRepo,
	}
}

// List implements role.RoleService.
func (r *RoleServiceImpl) List(ctx context.Context) ([]role.RoleResponse, error) {
	roles, err := r.RoleRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, rl := range roles {
		responses = append(responses, mapRoleToResponse(rl))
	}
	return responses, nil
}

// Create implements role.RoleService.
func (r *RoleServiceImpl) Create(ctx context.Context, req role.RoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return role.RoleResponse{}, fmt.Errorf("failed to generate role id: %w", err)
	}

	created, err := r.RoleRepository.Create(ctx, role.Role{
		ID:   id.String(),
		Name: req.Name,
	})
	if err != nil {
		return role.RoleResponse{}, err
	}

	return mapRoleToResponse(created), nil
}

// Get implements role.RoleService.
func (r *RoleServiceImpl) Get(ctx context.Context, id string) (role.RoleResponse, error) {
	rl, err := r.RoleRepository.GetByID(ctx, id)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return mapRoleToResponse(rl), nil
}

// Update implements role.RoleService.
func (r *RoleServiceImpl) Update(ctx context.Context, req role.RoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	updated, err := r.RoleRepository.Update(ctx, role.Role{
		ID:   req.ID,
		Name: req.Name,
	})
	if err != nil {
		return role.RoleResponse{}, err
	}

	return mapRoleToResponse(updated), nil
}

// Delete implements role.RoleService.
// The in-use guard and the delete run in one transaction so an employee
// assigned between the two statements cannot orphan its role.
func (r *RoleServiceImpl) Delete(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := r.RoleRepository.GetByID(txCtx, id); err != nil {
			return err
		}

		count, err := r.employeeRepo.CountByRole(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to count employees for role: %w", err)
		}
		if count > 0 {
			return role.ErrRoleHasEmployees
		}

		return r.RoleRepository.Delete(txCtx, id)
	})
}

func mapRoleToResponse(rl role.Role) role.RoleResponse {
	return role.RoleResponse{
		ID:        rl.ID,
		Name:      rl.Name,
		CreatedAt: rl.CreatedAt.Format(time.RFC3339),
		UpdatedAt: rl.UpdatedAt.Format(time.RFC3339),
	}
}
