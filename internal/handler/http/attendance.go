package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/storelinehq/admin-gateway-go/internal/domain/attendance"
	"github.com/storelinehq/admin-gateway-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	rosterService attendance.RosterService
}

func NewAttendanceHandler(rosterService attendance.RosterService) AttendanceHandler {
	return &AttendanceHandlerImpl{rosterService: rosterService}
}

// List implements AttendanceHandler. Fetches one page of the roster; the
// response meta carries the server-reported total, so an empty page with a
// non-zero total still renders pagination.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.RosterFilter{
		Search:   r.URL.Query().Get("search"),
		BranchID: r.URL.Query().Get("branch_id"),
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "page must be a number", nil)
			return
		}
		filter.Page = page
	}

	page, err := h.rosterService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, page.Rows, &response.Meta{
		Page:        page.Page,
		TotalItems:  page.TotalCount,
		HasNext:     page.HasNext,
		HasPrevious: page.HasPrevious,
	})
}

// Search implements AttendanceHandler. Feeds the debounced search input; the
// roster fetch fires only after the input goes quiet, so this replies before
// any fetch happens.
func (h *AttendanceHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	var req attendance.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Search decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	h.rosterService.Search(req.Query)
	response.Accepted(w, "Search scheduled")
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	row, err := h.rosterService.CheckIn(employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked in successfully", row)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	row, err := h.rosterService.CheckOut(employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", row)
}
