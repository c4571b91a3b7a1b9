package role

import "errors"

var (
	ErrRoleNotFound     = errors.New("role not found")
	ErrRoleNameExists   = errors.New("role name already exists")
	ErrRoleHasEmployees = errors.New("cannot delete role that has employees")
)
