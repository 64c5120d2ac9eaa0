package delegation

import "time"

// ScopeType narrows where a delegation applies.
type ScopeType string

const (
	ScopeProperty   ScopeType = "property"
	ScopeDepartment ScopeType = "department"
	ScopeAll        ScopeType = "all"
)

// specificity orders scope types from narrowest to broadest. The resolver
// prefers the narrowest matching delegation.
var specificity = map[ScopeType]int{
	ScopeProperty:   0,
	ScopeDepartment: 1,
	ScopeAll:        2,
}

func (s ScopeType) IsValid() bool {
	_, ok := specificity[s]
	return ok
}

// MoreSpecificThan reports whether s is a narrower scope than other.
func (s ScopeType) MoreSpecificThan(other ScopeType) bool {
	a, okA := specificity[s]
	b, okB := specificity[other]
	return okA && okB && a < b
}

// TemporaryDelegation is a time-bounded grant that substitutes one employee's
// approval authority for another's within a scope.
type TemporaryDelegation struct {
	ID          string
	DelegatorID string
	DelegateID  string
	ScopeType   ScopeType
	ScopeID     *string
	StartAt     time.Time
	EndAt       time.Time
	CreatedAt   time.Time
}

// ActiveAt reports whether the delegation window covers now.
func (d TemporaryDelegation) ActiveAt(now time.Time) bool {
	return !now.Before(d.StartAt) && !now.After(d.EndAt)
}
