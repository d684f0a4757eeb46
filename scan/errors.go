package scan

import "errors"

// Sentinel errors for scan operations.
var (
	// ErrBadBounds indicates a non-positive height or width.
	ErrBadBounds = errors.New("scan: bounds must have positive height and width")
	// ErrNilPredicate indicates a nil membership predicate.
	ErrNilPredicate = errors.New("scan: membership predicate must not be nil")
)
