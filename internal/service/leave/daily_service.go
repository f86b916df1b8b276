package leave

import (
	"context"
	"fmt"
	"sync"

	"github.com/storelinehq/admin-gateway-go/internal/domain/leave"
	"github.com/storelinehq/admin-gateway-go/internal/pkg/upstream"
)

type DailyServiceImpl struct {
	client *upstream.Client

	mu         sync.Mutex
	lastFilter leave.DailyFilter
}

func NewDailyService(client *upstream.Client) *DailyServiceImpl {
	return &DailyServiceImpl{client: client}
}

// List implements leave.DailyLeaveService.
func (s *DailyServiceImpl) List(ctx context.Context, filter leave.DailyFilter) ([]leave.DailyLeaveRequest, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.client.ListDailyLeaveRequests(ctx, filter.Date, filter.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch daily leave requests: %w", err)
	}

	requests := make([]leave.DailyLeaveRequest, 0, len(raw))
	for _, r := range raw {
		requests = append(requests, leave.DailyLeaveRequest{
			ID:           r.ID.String(),
			EmployeeID:   r.EmployeeID.String(),
			EmployeeName: r.EmployeeName,
			Branch:       r.EmployeeBranch,
			LeaveDate:    r.LeaveDate,
			CreatedAt:    r.CreatedAt,
			Status:       r.Status,
		})
	}

	s.mu.Lock()
	s.lastFilter = filter
	s.mu.Unlock()

	return requests, nil
}

// SetStatus implements leave.DailyLeaveService. Daily review keeps no local
// state: after the HR API accepts the decision the whole list is refetched for
// the filters last viewed.
func (s *DailyServiceImpl) SetStatus(ctx context.Context, requestID string, req leave.UpdateStatusRequest) ([]leave.DailyLeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.client.UpdateDailyLeaveStatus(ctx, requestID, req.Status); err != nil {
		return nil, fmt.Errorf("failed to update daily leave status: %w", err)
	}

	s.mu.Lock()
	filter := s.lastFilter
	s.mu.Unlock()

	return s.List(ctx, filter)
}
