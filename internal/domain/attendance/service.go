package attendance

import (
	"context"
)

// RosterService defines business logic for the attendance roster view.
type RosterService interface {
	// List fetches one page of the roster and replaces the held rows.
	List(ctx context.Context, filter RosterFilter) (RosterPage, error)

	// Search feeds the debounced search input; the fetch fires only after the
	// input has been quiet for the configured window.
	Search(query string)

	// CheckIn marks an employee present at the current wall-clock time.
	// Local-only: the HR API is not called.
	CheckIn(employeeID string) (AttendanceRecord, error)

	// CheckOut completes an employee's day and derives working hours,
	// overtime and earnings. Local-only.
	CheckOut(employeeID string) (AttendanceRecord, error)

	// LastError returns the captured message of the most recent failed fetch,
	// empty when the last fetch succeeded.
	LastError() string
}
