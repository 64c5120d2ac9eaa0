package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	domainDelegation "github.com/hotelops/hotelops-backend-go/internal/domain/delegation"
	"github.com/hotelops/hotelops-backend-go/internal/handler/http/response"
	delegationService "github.com/hotelops/hotelops-backend-go/internal/service/delegation"
)

type DelegationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type DelegationHandlerImpl struct {
	delegationSvc *delegationService.Service
}

func NewDelegationHandler(delegationSvc *delegationService.Service) DelegationHandler {
	return &DelegationHandlerImpl{delegationSvc: delegationSvc}
}

// Create implements DelegationHandler.
func (h *DelegationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req domainDelegation.CreateDelegationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create delegation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Delegator defaults to the caller.
	if req.DelegatorID == "" {
		if actorID, ok := employeeIDFromClaims(r); ok {
			req.DelegatorID = actorID
		}
	}

	created, err := h.delegationSvc.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Delegation created", created)
}

// ListMine implements DelegationHandler.
func (h *DelegationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actorID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	delegations, err := h.delegationSvc.ListByDelegator(r.Context(), actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, delegations)
}
