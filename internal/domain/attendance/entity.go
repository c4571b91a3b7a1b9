package attendance

import (
	"fmt"
	"math"
	"time"
)

type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time // calendar day of CheckInTime in the app timezone
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Latitude     string
	Longitude    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time

	// DTO
	EmployeeName *string
}

// IsCompleted reports whether the record has been checked out.
func (a *Attendance) IsCompleted() bool {
	return a.CheckOutTime != nil
}

func (a *Attendance) IsPending() bool {
	return a.CheckOutTime == nil
}

// WorkingDurationMinutes returns the elapsed working time in whole minutes,
// or nil while the record is still pending.
func (a *Attendance) WorkingDurationMinutes() *int {
	if a.CheckOutTime == nil {
		return nil
	}
	minutes := int(a.CheckOutTime.Sub(a.CheckInTime).Minutes())
	return &minutes
}

// WorkingDurationHours returns the elapsed working time in hours rounded to
// two decimals, or nil while pending.
func (a *Attendance) WorkingDurationHours() *float64 {
	minutes := a.WorkingDurationMinutes()
	if minutes == nil {
		return nil
	}
	hours := math.Round(float64(*minutes)/60.0*100) / 100
	return &hours
}

// WorkingDurationFormatted renders the duration as "{H} jam {M} menit",
// or nil while pending.
func (a *Attendance) WorkingDurationFormatted() *string {
	minutes := a.WorkingDurationMinutes()
	if minutes == nil {
		return nil
	}
	formatted := fmt.Sprintf("%d jam %d menit", *minutes/60, *minutes%60)
	return &formatted
}
