package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
// The employee identity is always an explicit argument; services never read
// ambient request state.
type AttendanceService interface {
	// CheckIn opens a new attendance record for the employee's current day.
	CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut completes the employee's pending record for the current day.
	CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error)

	// Today returns the employee's record for the current day, or nil.
	Today(ctx context.Context, employeeID string) (*AttendanceResponse, error)

	// History retrieves the employee's records with optional date range and pagination.
	History(ctx context.Context, employeeID string, filter HistoryFilter) (ListAttendanceResponse, error)

	// Summary returns today's record plus the current-month aggregate.
	Summary(ctx context.Context, employeeID string) (DailySummaryResponse, error)
}
