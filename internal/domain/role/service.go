package role

import (
	"context"
)

type RoleService interface {
	List(ctx context.Context) ([]RoleResponse, error)
	Create(ctx context.Context, req RoleRequest) (RoleResponse, error)
	Get(ctx context.Context, id string) (RoleResponse, error)
	Update(ctx context.Context, req RoleRequest) (RoleResponse, error)

	// Delete removes a role; rejected with ErrRoleHasEmployees while any
	// employee still references it.
	Delete(ctx context.Context, id string) error
}
