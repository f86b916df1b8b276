package attendance

import "errors"

// Attendance domain errors
var (
	ErrEmployeeNotFound  = errors.New("employee not found in the current roster")
	ErrAlreadyCheckedIn  = errors.New("employee has already checked in")
	ErrNotCheckedIn      = errors.New("employee has not checked in yet")
	ErrAlreadyCheckedOut = errors.New("employee has already checked out")
	ErrRosterUnavailable = errors.New("roster could not be fetched from the HR API")
)
