package leave

import (
	"context"
)

// DailyLeaveService handles single-date leave review. Decisions are followed
// by an authoritative refetch; no local state survives a mutation.
type DailyLeaveService interface {
	List(ctx context.Context, filter DailyFilter) ([]DailyLeaveRequest, error)

	// SetStatus applies an approve/reject decision and returns the refetched
	// list for the same filters.
	SetStatus(ctx context.Context, requestID string, req UpdateStatusRequest) ([]DailyLeaveRequest, error)
}

// MonthlyLeaveService handles multi-date monthly leave review through pinned
// review sessions.
type MonthlyLeaveService interface {
	List(ctx context.Context, filter MonthlyFilter) ([]MonthlyLeaveRequest, error)

	// Open pins a request from the most recent listing into a review session.
	Open(requestID string) (ReviewSession, error)

	// SetDateStatus decides one day inside an open session. The session copy
	// is patched only after the HR API confirms the update.
	SetDateStatus(ctx context.Context, sessionID string, day int, req UpdateStatusRequest) (ReviewSession, error)

	// Close drops the session and refetches the listing it was opened from.
	Close(ctx context.Context, sessionID string) ([]MonthlyLeaveRequest, error)
}
