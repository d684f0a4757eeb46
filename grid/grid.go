// Package grid models the board snapshot handed to a detection pass:
// per-cell occupancy (empty / owned-by-player / neutral) plus the identity
// of the placed piece covering every occupied cell.
package grid

import (
	"fmt"
	"sort"
)

// New constructs an empty Board of the given dimensions.
// Returns ErrBadDimensions when height or width is not positive.
// Complexity: O(H×W) time and memory.
func New(height, width int) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrBadDimensions
	}
	total := height * width
	byCell := make([]BuildingID, total)
	for i := range byCell {
		byCell[i] = noBuilding
	}
	b := &Board{
		height:    height,
		width:     width,
		occ:       make([]Occupancy, total),
		byCell:    byCell,
		buildings: make(map[BuildingID]*Building),
	}

	return b, nil
}

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// InBounds reports whether c lies within the board boundaries.
// Complexity: O(1).
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.height && c.Col >= 0 && c.Col < b.width
}

// OnBoundary reports whether c lies on the outer boundary of the board
// (first or last row, first or last column). Out-of-bounds coordinates
// are not on the boundary.
// Complexity: O(1).
func (b *Board) OnBoundary(c Coord) bool {
	if !b.InBounds(c) {
		return false
	}

	return c.Row == 0 || c.Row == b.height-1 || c.Col == 0 || c.Col == b.width-1
}

// index maps a coordinate to its row-major index: Row*width + Col.
func (b *Board) index(c Coord) int {
	return c.Row*b.width + c.Col
}

// At returns the occupancy state of cell c.
// Returns ErrOutOfBounds when c lies outside the board; that is a caller
// contract violation, not a recoverable condition.
// Complexity: O(1).
func (b *Board) At(c Coord) (Occupancy, error) {
	if !b.InBounds(c) {
		return Occupancy{}, fmt.Errorf("at (%d,%d): %w", c.Row, c.Col, ErrOutOfBounds)
	}

	return b.occ[b.index(c)], nil
}

// BuildingAt returns the id of the building covering cell c, with ok=false
// for empty cells. Returns ErrOutOfBounds when c lies outside the board.
// Complexity: O(1).
func (b *Board) BuildingAt(c Coord) (id BuildingID, ok bool, err error) {
	if !b.InBounds(c) {
		return noBuilding, false, fmt.Errorf("building at (%d,%d): %w", c.Row, c.Col, ErrOutOfBounds)
	}
	id = b.byCell[b.index(c)]

	return id, id != noBuilding, nil
}

// Place records a building owned by owner on the given cells.
// Validation happens before any mutation, so a failed Place leaves the
// board untouched. Returns ErrNoCells, ErrDuplicateBuilding,
// ErrOutOfBounds, or ErrCellOccupied accordingly.
// Complexity: O(len(cells)).
func (b *Board) Place(id BuildingID, owner PlayerID, cells []Coord) error {
	return b.place(id, Occupancy{K: Owned, Owner: owner}, cells)
}

// PlaceNeutral records the neutral building (the cathedral) on the given
// cells. Same validation and error contract as Place.
func (b *Board) PlaceNeutral(id BuildingID, cells []Coord) error {
	return b.place(id, Occupancy{K: Neutral}, cells)
}

func (b *Board) place(id BuildingID, occ Occupancy, cells []Coord) error {
	if len(cells) == 0 {
		return ErrNoCells
	}
	if _, dup := b.buildings[id]; dup {
		return fmt.Errorf("place building %d: %w", id, ErrDuplicateBuilding)
	}
	// Validate every cell first; commit only afterwards.
	seen := make(map[Coord]struct{}, len(cells))
	for _, c := range cells {
		if !b.InBounds(c) {
			return fmt.Errorf("place building %d at (%d,%d): %w", id, c.Row, c.Col, ErrOutOfBounds)
		}
		if b.occ[b.index(c)].K != Empty {
			return fmt.Errorf("place building %d at (%d,%d): %w", id, c.Row, c.Col, ErrCellOccupied)
		}
		if _, twice := seen[c]; twice {
			return fmt.Errorf("place building %d at (%d,%d): %w", id, c.Row, c.Col, ErrCellOccupied)
		}
		seen[c] = struct{}{}
	}
	stored := make([]Coord, len(cells))
	copy(stored, cells)
	for _, c := range stored {
		i := b.index(c)
		b.occ[i] = occ
		b.byCell[i] = id
	}
	b.buildings[id] = &Building{ID: id, Occ: occ, Cells: stored}

	return nil
}

// Remove clears a building from the board, the inverse of Place. Callers
// use it to apply capture verdicts and to rewind hypothetical moves.
// Returns ErrUnknownBuilding when id is not on the board.
// Complexity: O(len(building.Cells)).
func (b *Board) Remove(id BuildingID) error {
	bld, ok := b.buildings[id]
	if !ok {
		return fmt.Errorf("remove building %d: %w", id, ErrUnknownBuilding)
	}
	for _, c := range bld.Cells {
		i := b.index(c)
		b.occ[i] = Occupancy{}
		b.byCell[i] = noBuilding
	}
	delete(b.buildings, id)

	return nil
}

// Clone returns a deep copy of the board. One snapshot may be shared
// read-only across concurrent detection passes; clones are for callers
// that want to mutate a hypothetical line independently.
// Complexity: O(H×W).
func (b *Board) Clone() *Board {
	cp := &Board{
		height:    b.height,
		width:     b.width,
		occ:       make([]Occupancy, len(b.occ)),
		byCell:    make([]BuildingID, len(b.byCell)),
		buildings: make(map[BuildingID]*Building, len(b.buildings)),
	}
	copy(cp.occ, b.occ)
	copy(cp.byCell, b.byCell)
	for id, bld := range b.buildings {
		cells := make([]Coord, len(bld.Cells))
		copy(cells, bld.Cells)
		cp.buildings[id] = &Building{ID: id, Occ: bld.Occ, Cells: cells}
	}

	return cp
}

// Buildings returns the placed building records in ascending id order.
// The returned slice and records are copies; mutating them does not touch
// the board.
// Complexity: O(B log B + cells).
func (b *Board) Buildings() []Building {
	out := make([]Building, 0, len(b.buildings))
	for _, bld := range b.buildings {
		cells := make([]Coord, len(bld.Cells))
		copy(cells, bld.Cells)
		out = append(out, Building{ID: bld.ID, Occ: bld.Occ, Cells: cells})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
