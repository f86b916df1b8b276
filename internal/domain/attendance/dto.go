package attendance

import (
	"github.com/storelinehq/admin-gateway-go/internal/pkg/validator"
)

// Attendance row status. Absent is the initial state of every fetched row;
// check-in moves it to present, check-out to completed.
const (
	StatusAbsent    = "absent"
	StatusPresent   = "present"
	StatusCompleted = "completed"
)

// AttendanceRecord is the roster row view-model served to the dashboard. It is
// rebuilt from raw employee data on every fetch; check-in/check-out mutate the
// in-memory copy only and never persist upstream.
type AttendanceRecord struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	BranchName string `json:"branch_name"`
	Avatar     string `json:"avatar,omitempty"`

	ExpectedCheckIn  string  `json:"expected_check_in"`
	ExpectedCheckOut string  `json:"expected_check_out"`
	CheckInTime      *string `json:"check_in_time,omitempty"`
	CheckOutTime     *string `json:"check_out_time,omitempty"`

	WorkingHours  float64 `json:"working_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	IsLate        bool    `json:"is_late"`

	BaseSalary    float64 `json:"base_salary"`
	DailySalary   int64   `json:"daily_salary"`
	HourlySalary  int64   `json:"hourly_salary"`
	OvertimeRate  int64   `json:"overtime_rate"`
	DailyEarnings int64   `json:"daily_earnings"`

	Status string `json:"status"`
}

// RosterFilter selects one page of the roster.
type RosterFilter struct {
	Page     int    `json:"page"`
	Search   string `json:"search"`
	BranchID string `json:"branch_id"`
}

func (f *RosterFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RosterPage is one fetched page of attendance rows. TotalCount is the
// server-reported count and is never clamped to the page length.
type RosterPage struct {
	Rows        []AttendanceRecord `json:"rows"`
	TotalCount  int64              `json:"total_count"`
	Page        int                `json:"page"`
	HasNext     bool               `json:"has_next"`
	HasPrevious bool               `json:"has_previous"`
}

// SearchRequest feeds the debounced roster search.
type SearchRequest struct {
	Query string `json:"query"`
}
