package delegation

import (
	"time"

	"github.com/hotelops/hotelops-backend-go/internal/pkg/validator"
)

type CreateDelegationRequest struct {
	DelegatorID string  `json:"delegator_id"`
	DelegateID  string  `json:"delegate_id"`
	ScopeType   string  `json:"scope_type"`
	ScopeID     *string `json:"scope_id,omitempty"`
	StartAt     string  `json:"start_at"`
	EndAt       string  `json:"end_at"`
}

func (r *CreateDelegationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DelegatorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "delegator_id",
			Message: "delegator_id is required",
		})
	}
	if validator.IsEmpty(r.DelegateID) {
		errs = append(errs, validator.ValidationError{
			Field:   "delegate_id",
			Message: "delegate_id is required",
		})
	}
	if !ScopeType(r.ScopeType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "scope_type",
			Message: "scope_type must be property, department or all",
		})
	}
	if ScopeType(r.ScopeType) != ScopeAll && (r.ScopeID == nil || validator.IsEmpty(*r.ScopeID)) {
		errs = append(errs, validator.ValidationError{
			Field:   "scope_id",
			Message: "scope_id is required for property and department scopes",
		})
	}

	start, startOK := parseRFC3339(r.StartAt)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_at",
			Message: "start_at must be an RFC 3339 timestamp",
		})
	}
	end, endOK := parseRFC3339(r.EndAt)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_at",
			Message: "end_at must be an RFC 3339 timestamp",
		})
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_at",
			Message: "end_at must be after start_at",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity converts a validated request into a TemporaryDelegation.
func (r *CreateDelegationRequest) ToEntity() TemporaryDelegation {
	start, _ := parseRFC3339(r.StartAt)
	end, _ := parseRFC3339(r.EndAt)
	return TemporaryDelegation{
		DelegatorID: r.DelegatorID,
		DelegateID:  r.DelegateID,
		ScopeType:   ScopeType(r.ScopeType),
		ScopeID:     r.ScopeID,
		StartAt:     start,
		EndAt:       end,
	}
}

func parseRFC3339(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	return t, err == nil
}
