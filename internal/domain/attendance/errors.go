package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("please check in first")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrInvalidInterval   = errors.New("check-out time is before check-in time")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
