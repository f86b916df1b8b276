package http

import (
	"net/http"

	"github.com/storelinehq/admin-gateway-go/internal/domain/master/branch"
	"github.com/storelinehq/admin-gateway-go/internal/handler/http/response"
)

type MasterHandler interface {
	ListBranches(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	branchService branch.Service
}

func NewMasterHandler(branchService branch.Service) MasterHandler {
	return &MasterHandlerImpl{branchService: branchService}
}

// ListBranches implements MasterHandler.
func (h *MasterHandlerImpl) ListBranches(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.branchService.ListBranches(r.Context()))
}
