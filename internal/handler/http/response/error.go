package response

import (
	"errors"
	"net/http"

	"github.com/hotelops/hotelops-backend-go/internal/domain/approval"
	"github.com/hotelops/hotelops-backend-go/internal/domain/delegation"
	"github.com/hotelops/hotelops-backend-go/internal/domain/employee"
	"github.com/hotelops/hotelops-backend-go/internal/domain/notification"
	"github.com/hotelops/hotelops-backend-go/internal/domain/workflow"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Approval domain errors
	case errors.Is(err, approval.ErrRequestNotFound):
		NotFound(w, "Approval request not found")
	case errors.Is(err, approval.ErrPendingRequestExists):
		Conflict(w, "A pending approval request already exists for this entity")
	case errors.Is(err, approval.ErrAlreadyDecided):
		UnprocessableEntity(w, "Approval request has already been decided")
	case errors.Is(err, approval.ErrChainExhausted):
		UnprocessableEntity(w, "Escalation chain exhausted, manual intervention required")
	case errors.Is(err, approval.ErrInvalidDecision):
		BadRequest(w, "Decision must be approved or rejected", nil)

	// Workflow domain errors
	case errors.Is(err, workflow.ErrInvalidTransition):
		UnprocessableEntity(w, "Status transition not allowed")
	case errors.Is(err, workflow.ErrUnknownState):
		UnprocessableEntity(w, "Status transition not allowed")
	case errors.Is(err, workflow.ErrEntityNotFound):
		NotFound(w, "Entity not found")

	// Organization domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, delegation.ErrDelegationNotFound):
		NotFound(w, "Delegation not found")
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default: store unavailability and everything else unexpected. The
	// caller should treat this as retryable.
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
