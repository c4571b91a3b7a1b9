package report

import (
	"context"
)

// ReportService defines the privileged attendance report query.
type ReportService interface {
	AttendanceReport(ctx context.Context, filter Filter) (AttendanceReportResponse, error)
}
