package employee

import (
	"context"
)

type EmployeeService interface {
	// List retrieves non-admin employees with optional search and pagination.
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeesResponse, error)

	// Create registers a new employee with a hashed password.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves a single employee by ID.
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// Update applies a partial update to an employee.
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete soft-deletes an employee.
	Delete(ctx context.Context, id string) error
}
