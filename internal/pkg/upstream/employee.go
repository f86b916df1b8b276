package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Employee is the raw roster record as the HR API returns it.
type Employee struct {
	ID         ID      `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	BranchName string  `json:"branch_name"`
	Avatar     string  `json:"avatar"`
	BaseSalary float64 `json:"base_salary"`
}

// EmployeePage is one page of roster results.
type EmployeePage struct {
	Employees []Employee
	Count     int64
	Next      *string
	Previous  *string
}

// ListEmployees fetches one page of the employee roster. The HR API has been
// seen replying with three envelope shapes for this endpoint: a bare array,
// {"results": [...]} and {"data": [...]}; all three are accepted.
func (c *Client) ListEmployees(ctx context.Context, page int, search, branchID string) (EmployeePage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("search", search)
	query.Set("branch_id", branchID)

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/employee/", query, nil, &raw); err != nil {
		return EmployeePage{}, err
	}

	return parseEmployeePage(raw)
}

func parseEmployeePage(raw json.RawMessage) (EmployeePage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var employees []Employee
		if err := json.Unmarshal(trimmed, &employees); err != nil {
			return EmployeePage{}, fmt.Errorf("failed to decode employee list: %w", err)
		}
		return EmployeePage{Employees: employees, Count: int64(len(employees))}, nil
	}

	var envelope struct {
		Results  []Employee `json:"results"`
		Data     []Employee `json:"data"`
		Count    *int64     `json:"count"`
		Next     *string    `json:"next"`
		Previous *string    `json:"previous"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return EmployeePage{}, fmt.Errorf("failed to decode employee envelope: %w", err)
	}

	employees := envelope.Results
	if employees == nil {
		employees = envelope.Data
	}

	// Server-reported count wins even when it disagrees with the page length.
	count := int64(len(employees))
	if envelope.Count != nil {
		count = *envelope.Count
	}

	return EmployeePage{
		Employees: employees,
		Count:     count,
		Next:      envelope.Next,
		Previous:  envelope.Previous,
	}, nil
}
