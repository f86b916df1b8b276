package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/storelinehq/admin-gateway-go/internal/domain/leave"
	"github.com/storelinehq/admin-gateway-go/internal/handler/http/response"
)

type LeaveHandler interface {
	ListDaily(w http.ResponseWriter, r *http.Request)
	UpdateDailyStatus(w http.ResponseWriter, r *http.Request)

	ListMonthly(w http.ResponseWriter, r *http.Request)
	OpenReview(w http.ResponseWriter, r *http.Request)
	SetReviewDateStatus(w http.ResponseWriter, r *http.Request)
	CloseReview(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	dailyService   leave.DailyLeaveService
	monthlyService leave.MonthlyLeaveService
}

func NewLeaveHandler(dailyService leave.DailyLeaveService, monthlyService leave.MonthlyLeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		dailyService:   dailyService,
		monthlyService: monthlyService,
	}
}

// ListDaily implements LeaveHandler.
func (h *LeaveHandlerImpl) ListDaily(w http.ResponseWriter, r *http.Request) {
	filter := leave.DailyFilter{
		Date: r.URL.Query().Get("date"),
		Name: r.URL.Query().Get("name"),
	}

	requests, err := h.dailyService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// UpdateDailyStatus implements LeaveHandler. The reply carries the refetched
// list so the table the approver is looking at is already current.
func (h *LeaveHandlerImpl) UpdateDailyStatus(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req leave.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDailyStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	requests, err := h.dailyService.SetStatus(r.Context(), requestID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave status updated successfully", requests)
}

// ListMonthly implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMonthly(w http.ResponseWriter, r *http.Request) {
	filter := leave.MonthlyFilter{
		BranchID: r.URL.Query().Get("branch_id"),
		Name:     r.URL.Query().Get("name"),
	}

	var err error
	if filter.Month, err = strconv.Atoi(r.URL.Query().Get("month")); err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}
	if filter.Year, err = strconv.Atoi(r.URL.Query().Get("year")); err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	requests, err := h.monthlyService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// OpenReview implements LeaveHandler.
func (h *LeaveHandlerImpl) OpenReview(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	session, err := h.monthlyService.Open(requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, session)
}

// SetReviewDateStatus implements LeaveHandler. Decides one day inside an open
// review session.
func (h *LeaveHandlerImpl) SetReviewDateStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil || day < 1 || day > 31 {
		response.BadRequest(w, "day must be a day of the month", nil)
		return
	}

	var req leave.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetReviewDateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	session, err := h.monthlyService.SetDateStatus(r.Context(), sessionID, day, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave status updated successfully", session)
}

// CloseReview implements LeaveHandler.
func (h *LeaveHandlerImpl) CloseReview(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	requests, err := h.monthlyService.Close(r.Context(), sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Review closed", requests)
}
