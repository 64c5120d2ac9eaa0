package approval

import (
	"github.com/hotelops/hotelops-backend-go/internal/domain/workflow"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/validator"
)

type OpenApprovalRequest struct {
	EntityType  string  `json:"entity_type"`
	EntityID    string  `json:"entity_id"`
	RequesterID string  `json:"requester_id"`
	ScopeID     *string `json:"scope_id,omitempty"`
}

func (r *OpenApprovalRequest) Validate() error {
	var errs validator.ValidationErrors

	if !workflow.EntityType(r.EntityType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "entity_type",
			Message: "entity_type is not a known entity kind",
		})
	}
	if validator.IsEmpty(r.EntityID) {
		errs = append(errs, validator.ValidationError{
			Field:   "entity_id",
			Message: "entity_id is required",
		})
	}
	if validator.IsEmpty(r.RequesterID) {
		errs = append(errs, validator.ValidationError{
			Field:   "requester_id",
			Message: "requester_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideRequest struct {
	Decision string `json:"decision"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Decision(r.Decision).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DecisionResult carries what a caller needs to notify the affected parties
// after a decide or escalate succeeds. The core never sends notifications
// itself.
type DecisionResult struct {
	Request      ApprovalRequest
	EntityStatus workflow.Status
}
