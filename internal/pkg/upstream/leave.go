package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// DailyLeaveRequest is a single-date paid leave request as the HR API
// returns it.
type DailyLeaveRequest struct {
	ID             ID     `json:"id"`
	EmployeeID     ID     `json:"employee"`
	EmployeeName   string `json:"employee_name"`
	EmployeeBranch string `json:"employee_branch"`
	LeaveDate      string `json:"leave_date"`
	CreatedAt      string `json:"created_at"`
	Status         string `json:"status"`
}

// MonthlyLeaveDay is one dated leave record inside a monthly request.
type MonthlyLeaveDay struct {
	ID        ID     `json:"id"`
	LeaveDate string `json:"leave_date"`
	Status    string `json:"status"`
}

// MonthlyLeaveRequest is a multi-date monthly leave request as the HR API
// returns it. AggregateStatus is server-supplied and never recomputed here.
type MonthlyLeaveRequest struct {
	ID              ID                `json:"id"`
	EmployeeName    string            `json:"employee_name"`
	BranchID        ID                `json:"branch_id"`
	BranchName      string            `json:"branch_name"`
	AggregateStatus string            `json:"aggregate_status"`
	CreatedAt       string            `json:"created_at"`
	Leaves          []MonthlyLeaveDay `json:"leaves"`
}

type statusBody struct {
	Status string `json:"status"`
}

// ListDailyLeaveRequests fetches daily leave requests filtered by date and
// employee name.
func (c *Client) ListDailyLeaveRequests(ctx context.Context, date, name string) ([]DailyLeaveRequest, error) {
	query := url.Values{}
	query.Set("date", date)
	query.Set("name", name)

	var requests []DailyLeaveRequest
	if err := c.do(ctx, http.MethodGet, "/api/employee/paid-leave/request/list/", query, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateDailyLeaveStatus sets the status of one daily leave request.
func (c *Client) UpdateDailyLeaveStatus(ctx context.Context, requestID, status string) error {
	path := fmt.Sprintf("/api/employee/paid-leave/request/%s/update-status/", requestID)
	return c.do(ctx, http.MethodPost, path, nil, statusBody{Status: status}, nil)
}

// ListMonthlyLeaveRequests fetches monthly leave requests for admin review,
// filtered server-side by month, year and branch.
func (c *Client) ListMonthlyLeaveRequests(ctx context.Context, month, year int, branchID string) ([]MonthlyLeaveRequest, error) {
	query := url.Values{}
	query.Set("month", strconv.Itoa(month))
	query.Set("year", strconv.Itoa(year))
	query.Set("branch_id", branchID)

	var envelope struct {
		Data []MonthlyLeaveRequest `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/employee/monthly-leave/requests/list/admin/", query, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// UpdateMonthlyLeaveStatus sets the status of one dated leave record inside a
// monthly request.
func (c *Client) UpdateMonthlyLeaveStatus(ctx context.Context, leaveID, status string) error {
	path := fmt.Sprintf("/api/employee/monthly-leave/update/%s/", leaveID)
	return c.do(ctx, http.MethodPost, path, nil, statusBody{Status: status}, nil)
}
