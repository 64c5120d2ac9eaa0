package delegation

import "errors"

var (
	ErrDelegationNotFound = errors.New("delegation not found")
	ErrInvalidWindow      = errors.New("delegation end must be after start")
	ErrInvalidScope       = errors.New("invalid delegation scope")
)
