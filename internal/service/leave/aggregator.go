package leave

import (
	"strings"
	"time"

	"github.com/storelinehq/admin-gateway-go/internal/domain/leave"
	"github.com/storelinehq/admin-gateway-go/internal/pkg/upstream"
)

// Aggregate groups the per-date leave records of each raw monthly request into
// a per-employee digest. Requested days keep input order and are not
// deduplicated; when two records map to the same day the later one wins in
// both the status and the leave-id map. The aggregate status comes from the
// HR API as-is and is never recomputed here.
func Aggregate(raw []upstream.MonthlyLeaveRequest) []leave.MonthlyLeaveRequest {
	requests := make([]leave.MonthlyLeaveRequest, 0, len(raw))

	for _, r := range raw {
		request := leave.MonthlyLeaveRequest{
			ID:              r.ID.String(),
			EmployeeName:    r.EmployeeName,
			BranchID:        r.BranchID.String(),
			BranchName:      r.BranchName,
			CreatedAt:       r.CreatedAt,
			AggregateStatus: r.AggregateStatus,
			RequestedDates:  make([]int, 0, len(r.Leaves)),
			DayStatuses:     make(map[int]string, len(r.Leaves)),
			DayLeaveIDs:     make(map[int]string, len(r.Leaves)),
		}

		for _, l := range r.Leaves {
			day, ok := dayOfMonth(l.LeaveDate)
			if !ok {
				continue
			}
			request.RequestedDates = append(request.RequestedDates, day)
			request.DayStatuses[day] = l.Status
			request.DayLeaveIDs[day] = l.ID.String()
		}

		requests = append(requests, request)
	}

	return requests
}

// FilterByName keeps the requests whose employee name contains the query,
// case-insensitively. An empty query keeps everything.
func FilterByName(requests []leave.MonthlyLeaveRequest, name string) []leave.MonthlyLeaveRequest {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return requests
	}

	filtered := make([]leave.MonthlyLeaveRequest, 0, len(requests))
	for _, r := range requests {
		if strings.Contains(strings.ToLower(r.EmployeeName), query) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func dayOfMonth(dateStr string) (int, bool) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return 0, false
	}
	return t.Day(), true
}
