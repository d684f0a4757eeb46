package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a requested board height or width ≤ 0.
	ErrBadDimensions = errors.New("grid: board dimensions must be positive")
	// ErrOutOfBounds indicates a coordinate outside [0,height)×[0,width).
	ErrOutOfBounds = errors.New("grid: coordinate outside board bounds")
	// ErrNoCells indicates a placement with an empty cell set.
	ErrNoCells = errors.New("grid: building needs at least one cell")
	// ErrCellOccupied indicates a placement overlapping an occupied cell.
	ErrCellOccupied = errors.New("grid: cell already occupied")
	// ErrDuplicateBuilding indicates a building id already on the board.
	ErrDuplicateBuilding = errors.New("grid: building id already placed")
	// ErrUnknownBuilding indicates a building id not present on the board.
	ErrUnknownBuilding = errors.New("grid: building id not on board")
	// ErrInconsistentBuilding indicates a corrupted snapshot: a recorded
	// building whose cell set is empty, not 4-connected, or out of sync
	// with the per-cell state.
	ErrInconsistentBuilding = errors.New("grid: inconsistent building record")
)
