package employee

import (
	"context"
)

type EmployeeRepository interface {
	// Create inserts a new employee. Returns ErrEmailExists when the email is
	// already taken.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee with its role joined.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email, for login.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List retrieves non-admin employees, optionally searched by name or
	// email, paginated.
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// Update applies the non-nil fields of emp.
	Update(ctx context.Context, emp Employee) error

	// Delete soft-deletes an employee.
	Delete(ctx context.Context, id string) error

	// CountByRole reports how many employees hold the given role.
	CountByRole(ctx context.Context, roleID string) (int64, error)
}
