package leave

import (
	"github.com/storelinehq/admin-gateway-go/internal/pkg/validator"
)

// Leave statuses as the HR API reports them.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// DecisionStatuses are the statuses an approver may set.
var DecisionStatuses = []string{StatusApproved, StatusRejected}

// DailyLeaveRequest is the single-date leave view-model.
type DailyLeaveRequest struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Branch       string `json:"branch"`
	LeaveDate    string `json:"leave_date"`
	CreatedAt    string `json:"created_at"`
	Status       string `json:"status"`
}

// DailyFilter selects daily leave requests by date and employee name. Both
// filters are applied server-side.
type DailyFilter struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (f *DailyFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != "" {
		if _, valid := validator.IsValidDate(f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthlyLeaveRequest is the aggregated per-employee monthly digest. The three
// day-indexed structures are built in one pass from the same source list, so
// every requested day has exactly one entry in both maps.
type MonthlyLeaveRequest struct {
	ID              string `json:"id"`
	EmployeeName    string `json:"employee_name"`
	BranchID        string `json:"branch_id"`
	BranchName      string `json:"branch_name"`
	CreatedAt       string `json:"created_at"`
	AggregateStatus string `json:"aggregate_status"`

	RequestedDates []int             `json:"requested_dates"`
	DayStatuses    map[int]string    `json:"day_statuses"`
	DayLeaveIDs    map[int]string    `json:"day_leave_ids"`
}

// MonthlyFilter selects monthly leave requests. Month, year and branch are
// upstream query parameters; name is matched client-side on the aggregated
// list.
type MonthlyFilter struct {
	Month    int    `json:"month"`
	Year     int    `json:"year"`
	BranchID string `json:"branch_id"`
	Name     string `json:"name"`
}

func (f *MonthlyFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Year < 2000 || f.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateStatusRequest carries an approval decision.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !validator.IsInSlice(r.Status, DecisionStatuses) {
		return ErrInvalidStatus
	}
	return nil
}

// ReviewSession pins one monthly request while an approver works through its
// dates. Per-date decisions patch the session copy after the HR API confirms
// them; the listing is refetched only when the session closes.
type ReviewSession struct {
	ID      string              `json:"session_id"`
	Request MonthlyLeaveRequest `json:"request"`
	Filter  MonthlyFilter       `json:"filter"`
}
