package master

import (
	"context"
	"log/slog"

	"github.com/storelinehq/admin-gateway-go/internal/domain/master/branch"
	"github.com/storelinehq/admin-gateway-go/internal/pkg/upstream"
)

type MasterServiceImpl struct {
	client *upstream.Client
}

func NewMasterService(client *upstream.Client) *MasterServiceImpl {
	return &MasterServiceImpl{client: client}
}

// ListBranches returns the branch filter options. A failed fetch degrades to
// the "All Branches" sentinel instead of erroring, so the dashboard filter is
// always usable.
func (s *MasterServiceImpl) ListBranches(ctx context.Context) []branch.BranchResponse {
	branches, err := s.client.ListBranches(ctx)
	if err != nil {
		slog.Error("Failed to fetch branch list, serving fallback", "error", err)
		return branch.Fallback()
	}

	responses := make([]branch.BranchResponse, 0, len(branches))
	for _, b := range branches {
		responses = append(responses, branch.BranchResponse{
			ID:   b.ID.String(),
			Name: b.Name,
		})
	}
	return responses
}
