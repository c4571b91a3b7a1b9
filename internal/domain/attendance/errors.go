package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn      = errors.New("you have already checked in today")
	ErrNoOpenCheckIn         = errors.New("you have not checked in today")
	ErrCheckOutBeforeCheckIn = errors.New("check-out time is earlier than check-in time")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
