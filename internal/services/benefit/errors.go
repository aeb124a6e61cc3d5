package benefit

import "errors"

// Service errors
var (
	ErrBenefitNotFound = errors.New("benefit not found")
)
