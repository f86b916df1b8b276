package leave

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/storelinehq/admin-gateway-go/internal/domain/leave"
	"github.com/storelinehq/admin-gateway-go/internal/domain/master/branch"
	"github.com/storelinehq/admin-gateway-go/internal/pkg/upstream"
)

type MonthlyServiceImpl struct {
	client *upstream.Client

	mu         sync.Mutex
	cache      []leave.MonthlyLeaveRequest
	lastFilter leave.MonthlyFilter
	sessions   map[string]*leave.ReviewSession
}

func NewMonthlyService(client *upstream.Client) *MonthlyServiceImpl {
	return &MonthlyServiceImpl{
		client:   client,
		sessions: make(map[string]*leave.ReviewSession),
	}
}

// List implements leave.MonthlyLeaveService. Month, year and branch are
// upstream query parameters; the name filter is applied here on the
// aggregated list.
func (s *MonthlyServiceImpl) List(ctx context.Context, filter leave.MonthlyFilter) ([]leave.MonthlyLeaveRequest, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	branchID := filter.BranchID
	if branchID == branch.AllBranchesID {
		branchID = ""
	}

	raw, err := s.client.ListMonthlyLeaveRequests(ctx, filter.Month, filter.Year, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch monthly leave requests: %w", err)
	}

	aggregated := Aggregate(raw)

	s.mu.Lock()
	s.cache = aggregated
	s.lastFilter = filter
	s.mu.Unlock()

	return FilterByName(aggregated, filter.Name), nil
}

// Open implements leave.MonthlyLeaveService. The session holds its own copy
// of the request so per-date patches never alias the cached listing.
func (s *MonthlyServiceImpl) Open(requestID string) (leave.ReviewSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, request := range s.cache {
		if request.ID != requestID {
			continue
		}

		session := &leave.ReviewSession{
			ID:      uuid.NewString(),
			Request: cloneRequest(request),
			Filter:  s.lastFilter,
		}
		s.sessions[session.ID] = session
		return *session, nil
	}

	return leave.ReviewSession{}, leave.ErrRequestNotFound
}

// SetDateStatus implements leave.MonthlyLeaveService. The leave-record id is
// resolved from the session's day map before anything goes on the wire; an
// unknown day aborts with no network call. The session copy is patched only
// after the HR API confirms the update, and only for the targeted day.
func (s *MonthlyServiceImpl) SetDateStatus(ctx context.Context, sessionID string, day int, req leave.UpdateStatusRequest) (leave.ReviewSession, error) {
	if err := req.Validate(); err != nil {
		return leave.ReviewSession{}, err
	}

	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return leave.ReviewSession{}, leave.ErrReviewSessionNotFound
	}

	leaveID, ok := session.Request.DayLeaveIDs[day]
	if !ok {
		s.mu.Unlock()
		slog.Error("No leave record mapped for requested day",
			"session_id", sessionID, "request_id", session.Request.ID, "day", day)
		return leave.ReviewSession{}, leave.ErrNoLeaveForDay
	}
	s.mu.Unlock()

	if err := s.client.UpdateMonthlyLeaveStatus(ctx, leaveID, req.Status); err != nil {
		return leave.ReviewSession{}, fmt.Errorf("failed to update monthly leave status: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok = s.sessions[sessionID]
	if !ok {
		return leave.ReviewSession{}, leave.ErrReviewSessionNotFound
	}
	session.Request.DayStatuses[day] = req.Status

	return *session, nil
}

// Close implements leave.MonthlyLeaveService. Dropping the session triggers
// the authoritative refetch of the listing it was opened from.
func (s *MonthlyServiceImpl) Close(ctx context.Context, sessionID string) ([]leave.MonthlyLeaveRequest, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, leave.ErrReviewSessionNotFound
	}
	delete(s.sessions, sessionID)
	filter := session.Filter
	s.mu.Unlock()

	return s.List(ctx, filter)
}

func cloneRequest(request leave.MonthlyLeaveRequest) leave.MonthlyLeaveRequest {
	clone := request
	clone.RequestedDates = append([]int(nil), request.RequestedDates...)
	clone.DayStatuses = make(map[int]string, len(request.DayStatuses))
	for day, status := range request.DayStatuses {
		clone.DayStatuses[day] = status
	}
	clone.DayLeaveIDs = make(map[int]string, len(request.DayLeaveIDs))
	for day, id := range request.DayLeaveIDs {
		clone.DayLeaveIDs[day] = id
	}
	return clone
}
