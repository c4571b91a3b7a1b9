package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/absensi-app/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-app/absensi-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	report.ReportRepository
	loc *time.Location
	now func() time.Time
}

func NewReportService(reportRepo report.ReportRepository, loc *time.Location) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepo,
		loc:              loc,
		now:              time.Now,
	}
}

// AttendanceReport implements report.ReportService.
func (r *ReportServiceImpl) AttendanceReport(ctx context.Context, filter report.Filter) (report.AttendanceReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.AttendanceReportResponse{}, err
	}

	now := r.now().In(r.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, r.loc)
	resolved := report.Resolve(filter, today)

	summary, err := r.ReportRepository.Summarize(ctx, resolved)
	if err != nil {
		return report.AttendanceReportResponse{}, fmt.Errorf("failed to summarize attendance report: %w", err)
	}

	attendances, total, err := r.ReportRepository.ListAttendance(ctx, resolved, filter.Page, filter.Limit)
	if err != nil {
		return report.AttendanceReportResponse{}, fmt.Errorf("failed to list attendance report: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return report.AttendanceReportResponse{
		Summary:     summary,
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: responses,
	}, nil
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	var checkOut *string
	if att.CheckOutTime != nil {
		formatted := att.CheckOutTime.Format("2006-01-02 15:04:05")
		checkOut = &formatted
	}

	return attendance.AttendanceResponse{
		ID:                       att.ID,
		EmployeeID:               att.EmployeeID,
		EmployeeName:             att.EmployeeName,
		Date:                     att.Date.Format("2006-01-02"),
		CheckInTime:              att.CheckInTime.Format("2006-01-02 15:04:05"),
		CheckOutTime:             checkOut,
		Latitude:                 att.Latitude,
		Longitude:                att.Longitude,
		IsCompleted:              att.IsCompleted(),
		WorkingDurationMinutes:   att.WorkingDurationMinutes(),
		WorkingDurationFormatted: att.WorkingDurationFormatted(),
	}
}
