package approval

import "errors"

var (
	ErrRequestNotFound = errors.New("approval request not found")
	// ErrPendingRequestExists: a pending request already gates this entity.
	ErrPendingRequestExists = errors.New("a pending approval request already exists for this entity")
	// ErrAlreadyDecided: the request left pending before this operation ran.
	ErrAlreadyDecided = errors.New("approval request has already been decided")
	// ErrNoApprover: the resolver found nobody to route the request to.
	ErrNoApprover = errors.New("no approver available")
	// ErrChainExhausted: escalation walked the whole reporting chain without
	// finding an untried candidate.
	ErrChainExhausted = errors.New("escalation chain exhausted")
	ErrInvalidDecision = errors.New("decision must be approved or rejected")
)
