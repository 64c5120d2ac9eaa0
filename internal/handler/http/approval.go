package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	domainApproval "github.com/hotelops/hotelops-backend-go/internal/domain/approval"
	"github.com/hotelops/hotelops-backend-go/internal/domain/workflow"
	"github.com/hotelops/hotelops-backend-go/internal/handler/http/response"
	approvalService "github.com/hotelops/hotelops-backend-go/internal/service/approval"
	notificationService "github.com/hotelops/hotelops-backend-go/internal/service/notification"
)

type ApprovalHandler interface {
	Open(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Escalate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Inbox(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Chain(w http.ResponseWriter, r *http.Request)
}

type ApprovalHandlerImpl struct {
	approvalSvc     *approvalService.Service
	notificationSvc *notificationService.Service
}

func NewApprovalHandler(approvalSvc *approvalService.Service, notificationSvc *notificationService.Service) ApprovalHandler {
	return &ApprovalHandlerImpl{
		approvalSvc:     approvalSvc,
		notificationSvc: notificationSvc,
	}
}

// Open implements ApprovalHandler.
func (h *ApprovalHandlerImpl) Open(w http.ResponseWriter, r *http.Request) {
	var req domainApproval.OpenApprovalRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Open decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Requester defaults to the caller when omitted.
	if req.RequesterID == "" {
		if actorID, ok := employeeIDFromClaims(r); ok {
			req.RequesterID = actorID
		}
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.approvalSvc.Open(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.notificationSvc.NotifyOpened(r.Context(), created); err != nil {
		slog.Error("failed to notify approver", "request_id", created.ID, "error", err)
	}

	response.Created(w, "Approval request created", created)
}

// Decide implements ApprovalHandler.
func (h *ApprovalHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	actorID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req domainApproval.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Decide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.approvalSvc.Decide(r.Context(), requestID, domainApproval.Decision(req.Decision), actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.notificationSvc.NotifyDecision(r.Context(), result); err != nil {
		slog.Error("failed to notify requester", "request_id", requestID, "error", err)
	}

	response.SuccessWithMessage(w, "Approval request decided", result)
}

// Escalate implements ApprovalHandler.
func (h *ApprovalHandlerImpl) Escalate(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	escalated, err := h.approvalSvc.Escalate(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.notificationSvc.NotifyEscalated(r.Context(), escalated); err != nil {
		slog.Error("failed to notify escalated approver", "request_id", requestID, "error", err)
	}

	response.SuccessWithMessage(w, "Approval request escalated", escalated)
}

// Get implements ApprovalHandler.
func (h *ApprovalHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	req, err := h.approvalSvc.Get(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, req)
}

// Inbox implements ApprovalHandler.
func (h *ApprovalHandlerImpl) Inbox(w http.ResponseWriter, r *http.Request) {
	actorID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	pendingOnly := r.URL.Query().Get("pending_only") != "false"

	requests, err := h.approvalSvc.Inbox(r.Context(), actorID, pendingOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// History implements ApprovalHandler.
func (h *ApprovalHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	entityType := chi.URLParam(r, "entityType")
	entityID := chi.URLParam(r, "entityID")
	if entityType == "" || entityID == "" {
		response.BadRequest(w, "Entity type and ID are required", nil)
		return
	}

	requests, err := h.approvalSvc.History(r.Context(), workflow.EntityType(entityType), entityID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Chain implements ApprovalHandler.
func (h *ApprovalHandlerImpl) Chain(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	chain, err := h.approvalSvc.Chain(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, chain)
}

// employeeIDFromClaims pulls the acting employee's id out of the JWT claims.
func employeeIDFromClaims(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", false
	}

	return employeeID, true
}
