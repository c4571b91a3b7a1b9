package role

import (
	"context"
)

type RoleRepository interface {
	// Create inserts a role. Returns ErrRoleNameExists on a duplicate name.
	Create(ctx context.Context, r Role) (Role, error)

	// GetByID retrieves a role.
	GetByID(ctx context.Context, id string) (Role, error)

	// GetByName retrieves a role by its unique name.
	GetByName(ctx context.Context, name string) (Role, error)

	// List retrieves all roles.
	List(ctx context.Context) ([]Role, error)

	// Update renames a role. Returns ErrRoleNameExists on a duplicate name.
	Update(ctx context.Context, r Role) (Role, error)

	// Delete removes a role.
	Delete(ctx context.Context, id string) error
}
