package report

import (
	"github.com/absensi-app/absensi-backend-go/internal/domain/attendance"
)

// Summary is computed over the same filtered set as the record listing,
// before pagination, so the counts and the list never disagree.
// CompletedCount + PendingCount always equals TotalRecords.
type Summary struct {
	TotalRecords   int64  `json:"total_records"`
	CompletedCount int64  `json:"completed_count"`
	PendingCount   int64  `json:"pending_count"`
	FilterApplied  string `json:"filter_applied"`
}

type AttendanceReportResponse struct {
	Summary     Summary                         `json:"summary"`
	TotalCount  int64                           `json:"total_count"`
	Page        int                             `json:"page"`
	Limit       int                             `json:"limit"`
	TotalPages  int                             `json:"total_pages"`
	Attendances []attendance.AttendanceResponse `json:"attendances"`
}
