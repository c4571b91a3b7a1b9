package http

import (
	"net/http"

	"github.com/absensi-app/absensi-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// employeeIDFromRequest reads the authenticated employee's ID out of the
// verified token claims. Handlers pass it down explicitly; services never
// touch the request context for identity.
func employeeIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", auth.ErrInvalidToken
	}
	return employeeID, nil
}
