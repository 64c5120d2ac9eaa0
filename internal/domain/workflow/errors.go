package workflow

import "errors"

var (
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrEntityNotFound    = errors.New("entity not found")
	// ErrUnknownState marks a configuration gap: a known entity kind asked
	// about a status the table has no entry for. Callers treat it like an
	// invalid transition; the table logs it loudly so the gap gets fixed.
	ErrUnknownState = errors.New("no transitions configured for status")
)
