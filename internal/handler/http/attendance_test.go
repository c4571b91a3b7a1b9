package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/absensi-app/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-app/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-app/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-app/absensi-backend-go/internal/domain/report"
	"github.com/absensi-app/absensi-backend-go/internal/domain/role"
	"github.com/absensi-app/absensi-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"

	handlerTestEmployeeID = "0195f9f6-2f9e-7bbd-95c9-8f6cbd1d1a10"
)

// fakeAttendanceService returns canned results so the tests exercise routing,
// token verification, and error mapping rather than business logic.
type fakeAttendanceService struct {
	checkInErr  error
	checkOutErr error
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, employeeID string, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if f.checkInErr != nil {
		return attendance.AttendanceResponse{}, f.checkInErr
	}
	return attendance.AttendanceResponse{
		ID:          "att-1",
		EmployeeID:  employeeID,
		Date:        "2025-03-10",
		CheckInTime: "2025-03-10 08:00:00",
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}, nil
}

func (f *fakeAttendanceService) CheckOut(ctx context.Context, employeeID string, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if f.checkOutErr != nil {
		return attendance.AttendanceResponse{}, f.checkOutErr
	}
	return attendance.AttendanceResponse{ID: "att-1", EmployeeID: employeeID, IsCompleted: true}, nil
}

func (f *fakeAttendanceService) Today(ctx context.Context, employeeID string) (*attendance.AttendanceResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) History(ctx context.Context, employeeID string, filter attendance.HistoryFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	return attendance.ListAttendanceResponse{Page: filter.Page, Limit: filter.Limit}, nil
}

func (f *fakeAttendanceService) Summary(ctx context.Context, employeeID string) (attendance.DailySummaryResponse, error) {
	return attendance.DailySummaryResponse{}, nil
}

type fakeReportService struct{}

func (f *fakeReportService) AttendanceReport(ctx context.Context, filter report.Filter) (report.AttendanceReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.AttendanceReportResponse{}, err
	}
	return report.AttendanceReportResponse{
		Summary: report.Summary{FilterApplied: "Last 30 days (default)"},
		Page:    filter.Page,
		Limit:   filter.Limit,
	}, nil
}

type fakeAuthService struct{}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	return auth.TokenResponse{}, auth.ErrInvalidCredentials
}

func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	return auth.TokenResponse{}, nil
}

func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (auth.AccessTokenResponse, error) {
	if refreshToken == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	return auth.AccessTokenResponse{AccessToken: "refreshed-" + refreshToken, AccessTokenExpiresIn: 3600}, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error { return nil }

func (f *fakeAuthService) Me(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{ID: employeeID}, nil
}

type fakeEmployeeService struct{}

func (f *fakeEmployeeService) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	return employee.ListEmployeesResponse{}, nil
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, nil
}

func (f *fakeEmployeeService) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{ID: id}, nil
}

func (f *fakeEmployeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, nil
}

func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error { return nil }

type fakeRoleService struct{}

func (f *fakeRoleService) List(ctx context.Context) ([]role.RoleResponse, error) { return nil, nil }

func (f *fakeRoleService) Create(ctx context.Context, req role.RoleRequest) (role.RoleResponse, error) {
	return role.RoleResponse{}, nil
}

func (f *fakeRoleService) Get(ctx context.Context, id string) (role.RoleResponse, error) {
	return role.RoleResponse{}, nil
}

func (f *fakeRoleService) Update(ctx context.Context, req role.RoleRequest) (role.RoleResponse, error) {
	return role.RoleResponse{}, nil
}

func (f *fakeRoleService) Delete(ctx context.Context, id string) error { return nil }

func newTestRouter(t *testing.T, attendanceSvc attendance.AttendanceService) (http.Handler, jwt.Service) {
	t.Helper()

	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)

	router := NewRouter(
		RouterConfig{Env: "test", AllowedOrigins: []string{"*"}},
		jwtService,
		NewAuthHandler(&fakeAuthService{}, jwtService),
		NewAttendanceHandler(attendanceSvc),
		NewReportHandler(&fakeReportService{}),
		NewEmployeeHandler(&fakeEmployeeService{}),
		NewRoleHandler(&fakeRoleService{}),
	)
	return router, jwtService
}

func accessToken(t *testing.T, jwtService jwt.Service, role string) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken(handlerTestEmployeeID, "budi@absensi.com", role)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestAttendanceHandler_CheckIn_Success(t *testing.T) {
	t.Parallel()

	router, jwtService := newTestRouter(t, &fakeAttendanceService{})
	token := accessToken(t, jwtService, "karyawan")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-in", token,
		map[string]string{"latitude": "-6.200000", "longitude": "106.816666"})

	require.Equal(t, http.StatusCreated, rec.Code)
	payload := decodeResponse(t, rec)
	assert.Equal(t, true, payload["success"])

	data := payload["data"].(map[string]interface{})
	assert.Equal(t, handlerTestEmployeeID, data["employee_id"])
	assert.Equal(t, "-6.200000", data["latitude"])
}

func TestAttendanceHandler_CheckIn_WithoutToken(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, &fakeAttendanceService{})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-in", "",
		map[string]string{"latitude": "-6.2", "longitude": "106.8"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAttendanceHandler_CheckIn_AlreadyCheckedIn(t *testing.T) {
	t.Parallel()

	router, jwtService := newTestRouter(t, &fakeAttendanceService{checkInErr: attendance.ErrAlreadyCheckedIn})
	token := accessToken(t, jwtService, "karyawan")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-in", token,
		map[string]string{"latitude": "-6.2", "longitude": "106.8"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeResponse(t, rec)
	assert.Equal(t, false, payload["success"])
}

func TestAttendanceHandler_CheckIn_MissingCoordinates(t *testing.T) {
	t.Parallel()

	router, jwtService := newTestRouter(t, &fakeAttendanceService{})
	token := accessToken(t, jwtService, "karyawan")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-in", token,
		map[string]string{"latitude": "-6.2"})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	payload := decodeResponse(t, rec)
	errDetail := payload["error"].(map[string]interface{})
	details := errDetail["details"].(map[string]interface{})
	assert.Contains(t, details, "longitude")
}

func TestAttendanceHandler_CheckOut_NoOpenCheckIn(t *testing.T) {
	t.Parallel()

	router, jwtService := newTestRouter(t, &fakeAttendanceService{checkOutErr: attendance.ErrNoOpenCheckIn})
	token := accessToken(t, jwtService, "karyawan")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/attendance/check-out", token,
		map[string]string{"latitude": "-6.2", "longitude": "106.8"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_Report_RequiresAdmin(t *testing.T) {
	t.Parallel()

	router, jwtService := newTestRouter(t, &fakeAttendanceService{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/attendance/report", accessToken(t, jwtService, "karyawan"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/attendance/report", accessToken(t, jwtService, "admin"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAttendanceHandler_Logout_RevokesToken(t *testing.T) {
	t.Parallel()

	router, jwtService := newTestRouter(t, &fakeAttendanceService{})
	token := accessToken(t, jwtService, "karyawan")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/attendance/today", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	jwtService.RevokeToken(token)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/attendance/today", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEmployeeHandler_RequiresAdmin(t *testing.T) {
	t.Parallel()

	router, jwtService := newTestRouter(t, &fakeAttendanceService{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/", accessToken(t, jwtService, "staff"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/employees/", accessToken(t, jwtService, "admin"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
