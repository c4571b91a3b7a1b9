package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/absensi-app/absensi-backend-go/internal/domain/attendance"
	"github.com/google/uuid"
)

// AttendanceServiceImpl drives the per-day attendance state machine:
// no record -> pending (check-in) -> completed (check-out), terminal for the
// day. The at-most-one-pending guard lives in the repository's atomic writes;
// this layer decides the calendar day and rejects inconsistent clocks.
type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	loc *time.Location
	now func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, loc *time.Location) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		loc:                  loc,
		now:                  time.Now,
	}
}

// localDay truncates t to its calendar date in the app timezone.
func (a *AttendanceServiceImpl) localDay(t time.Time) time.Time {
	local := t.In(a.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, a.loc)
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now()
	id, err := uuid.NewV7()
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	created, err := a.AttendanceRepository.CreatePending(ctx, attendance.Attendance{
		ID:          id.String(),
		EmployeeID:  employeeID,
		Date:        a.localDay(now),
		CheckInTime: now,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now()
	day := a.localDay(now)

	open, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if open == nil || open.IsCompleted() {
		return attendance.AttendanceResponse{}, attendance.ErrNoOpenCheckIn
	}
	// A check-out earlier than the check-in is a data-integrity violation;
	// reject it here instead of storing a negative duration.
	if now.Before(open.CheckInTime) {
		return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	completed, err := a.AttendanceRepository.CompleteOpen(ctx, employeeID, day, now, req.Latitude, req.Longitude)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(completed), nil
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context, employeeID string) (*attendance.AttendanceResponse, error) {
	att, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, a.localDay(a.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if att == nil {
		return nil, nil
	}

	resp := mapAttendanceToResponse(*att)
	return &resp, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, employeeID string, filter attendance.HistoryFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := a.AttendanceRepository.ListForEmployee(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance history: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: responses,
	}, nil
}

// Summary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Summary(ctx context.Context, employeeID string) (attendance.DailySummaryResponse, error) {
	day := a.localDay(a.now())
	monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, a.loc)
	monthEnd := monthStart.AddDate(0, 1, -1)

	today, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.DailySummaryResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	totals, err := a.AttendanceRepository.MonthlyTotalsForEmployee(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return attendance.DailySummaryResponse{}, fmt.Errorf("failed to aggregate monthly attendance: %w", err)
	}

	totalHours := roundHours(totals.TotalMinutes)
	averagePerDay := 0.0
	if totals.WorkDays > 0 {
		averagePerDay = math.Round(totalHours/float64(totals.WorkDays)*100) / 100
	}

	resp := attendance.DailySummaryResponse{
		Summary: attendance.MonthlySummary{
			WorkDays:           totals.WorkDays,
			TotalHours:         totalHours,
			AverageHoursPerDay: averagePerDay,
		},
	}
	if today != nil {
		todayResp := mapAttendanceToResponse(*today)
		resp.Today = &todayResp
	}

	return resp, nil
}

func roundHours(minutes int64) float64 {
	return math.Round(float64(minutes)/60.0*100) / 100
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
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
