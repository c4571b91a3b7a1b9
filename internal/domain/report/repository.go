package report

import (
	"context"

	"github.com/absensi-app/absensi-backend-go/internal/domain/attendance"
)

// ReportRepository reads attendance data through a resolved filter.
type ReportRepository interface {
	// ListAttendance retrieves the records matching the resolved interval and
	// employee scope, newest check-in first, paginated.
	ListAttendance(ctx context.Context, rf ResolvedFilter, page, limit int) ([]attendance.Attendance, int64, error)

	// Summarize counts total/completed/pending over the full filtered set in a
	// single query, so the three counts come from one consistent snapshot.
	Summarize(ctx context.Context, rf ResolvedFilter) (Summary, error)
}
