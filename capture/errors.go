package capture

import "errors"

// Sentinel errors for capture operations.
var (
	// ErrNilBoard indicates a nil board snapshot.
	ErrNilBoard = errors.New("capture: board snapshot must not be nil")
)
