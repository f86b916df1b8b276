package leave

import "errors"

// Leave domain errors
var (
	ErrRequestNotFound       = errors.New("leave request not found")
	ErrNoLeaveForDay         = errors.New("no leave record for the requested day")
	ErrReviewSessionNotFound = errors.New("review session not found")
	ErrInvalidStatus         = errors.New("status must be approved or rejected")
)
