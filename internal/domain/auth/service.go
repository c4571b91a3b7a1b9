package auth

import (
	"context"

	"github.com/absensi-app/absensi-backend-go/internal/domain/employee"
)

type AuthService interface {
	// Login verifies credentials and issues access and refresh tokens.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Register creates an employee account with the default role and issues tokens.
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (AccessTokenResponse, error)

	// Logout revokes the presented access token.
	Logout(ctx context.Context, token string) error

	// Me returns the employee identified by the current token claims.
	Me(ctx context.Context, employeeID string) (employee.EmployeeResponse, error)
}
