package branch

import (
	"context"
)

// Service serves the branch filter options. Listing never fails; a broken
// upstream degrades to the fallback sentinel.
type Service interface {
	ListBranches(ctx context.Context) []BranchResponse
}
