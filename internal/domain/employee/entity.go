package employee

import "time"

type Employee struct {
	ID           string
	RoleID       string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time

	// DTO / Join
	RoleName *string
}

// IsAdmin checks if the employee holds the admin role.
func (e *Employee) IsAdmin() bool {
	return e.RoleName != nil && *e.RoleName == "admin"
}
