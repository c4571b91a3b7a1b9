package attendance

import (
	"context"
	"time"
)

// MonthlyTotals aggregates one employee's records over a month. WorkDays
// counts every record in the interval; TotalMinutes sums only completed ones.
type MonthlyTotals struct {
	WorkDays     int64
	TotalMinutes int64
}

// AttendanceRepository defines data access methods for attendance records.
// The at-most-one-pending-record-per-employee-per-day invariant is enforced
// here, not by a read-then-write in the service: CreatePending and
// CompleteOpen are single atomic statements backed by a partial unique index
// on (employee_id, date) WHERE check_out_time IS NULL.
type AttendanceRepository interface {
	// CreatePending inserts a new pending record. Returns ErrAlreadyCheckedIn
	// when a pending record for (employee, day) already exists.
	CreatePending(ctx context.Context, att Attendance) (Attendance, error)

	// CompleteOpen sets check_out_time and the check-out coordinates on the
	// pending record for (employee, day). Returns ErrNoOpenCheckIn when there
	// is none.
	CompleteOpen(ctx context.Context, employeeID string, day time.Time, checkOut time.Time, latitude, longitude string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record (pending or completed) for a
	// specific employee on a specific day, or nil.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*Attendance, error)

	// ListForEmployee retrieves one employee's records, newest check-in first,
	// optionally bounded by an inclusive date range.
	ListForEmployee(ctx context.Context, employeeID string, filter HistoryFilter) ([]Attendance, int64, error)

	// MonthlyTotalsForEmployee aggregates the employee's records whose day
	// falls within [monthStart, monthEnd].
	MonthlyTotalsForEmployee(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) (MonthlyTotals, error)
}
