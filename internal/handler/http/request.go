package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/stafflyhq/hrops-backend-go/internal/domain/request"
	"github.com/stafflyhq/hrops-backend-go/internal/handler/http/response"
	requestService "github.com/stafflyhq/hrops-backend-go/internal/service/request"
)

type RequestHandler interface {
	SubmitLeave(w http.ResponseWriter, r *http.Request)
	SubmitOvertime(w http.ResponseWriter, r *http.Request)
	SubmitMissedCheckin(w http.ResponseWriter, r *http.Request)

	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)

	GetMyRequests(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	AuditTrail(w http.ResponseWriter, r *http.Request)
}

type RequestHandlerImpl struct {
	lifecycle *requestService.LifecycleManager
}

func NewRequestHandler(lifecycle *requestService.LifecycleManager) RequestHandler {
	return &RequestHandlerImpl{lifecycle: lifecycle}
}

// employeeIDFromContext extracts employee_id from JWT claims
func employeeIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if employeeID, ok := claims["employee_id"].(string); ok {
		return employeeID
	}
	return ""
}

func (h *RequestHandlerImpl) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromContext(r)
	if employeeID == "" {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	var req request.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Set employee_id from JWT (override any value from request for security)
	req.EmployeeID = employeeID

	created, err := h.lifecycle.SubmitLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", created)
}

func (h *RequestHandlerImpl) SubmitOvertime(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromContext(r)
	if employeeID == "" {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	var req request.SubmitOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitOvertime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.EmployeeID = employeeID

	created, err := h.lifecycle.SubmitOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted successfully", created)
}

func (h *RequestHandlerImpl) SubmitMissedCheckin(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromContext(r)
	if employeeID == "" {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	var req request.SubmitMissedCheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitMissedCheckin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.EmployeeID = employeeID

	created, err := h.lifecycle.SubmitMissedCheckin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Missed check-in correction submitted successfully", created)
}

func (h *RequestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	approverID := employeeIDFromContext(r)
	if approverID == "" {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	req := request.ApproveRequestRequest{RequestID: chi.URLParam(r, "id")}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Approve decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.RequestID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.lifecycle.Approve(r.Context(), req.RequestID, approverID, req.Comment)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request approved successfully", updated)
}

func (h *RequestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	approverID := employeeIDFromContext(r)
	if approverID == "" {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	var req request.RejectRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.lifecycle.Reject(r.Context(), req.RequestID, approverID, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request rejected", updated)
}

func (h *RequestHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	requesterID := employeeIDFromContext(r)
	if requesterID == "" {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	updated, err := h.lifecycle.Cancel(r.Context(), requestID, requesterID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request cancelled", updated)
}

func (h *RequestHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromContext(r)
	if employeeID == "" {
		response.Forbidden(w, "Employee ID not found in token")
		return
	}

	var kind *request.Kind
	if k := r.URL.Query().Get("kind"); k != "" {
		parsed := request.Kind(k)
		switch parsed {
		case request.KindLeave, request.KindOvertime, request.KindMissedCheckin:
			kind = &parsed
		default:
			response.BadRequest(w, "Unknown request kind", nil)
			return
		}
	}

	requests, err := h.lifecycle.ListByEmployee(r.Context(), employeeID, kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func (h *RequestHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	req, err := h.lifecycle.GetByID(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, req)
}

func (h *RequestHandlerImpl) AuditTrail(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	records, err := h.lifecycle.AuditTrail(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
