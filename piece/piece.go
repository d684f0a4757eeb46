// Package piece carries the standard building catalogue of the game:
// shapes, per-side chirality, and quarter-turn rotation. The engine itself
// is agnostic to shapes; this package exists so callers and tests can
// build boards from the real piece set.
package piece

import (
	"fmt"

	"github.com/mkukova/cathedral/grid"
)

// New returns the catalogue piece of the given kind and side in its base
// orientation. Player pieces require Light or Dark (ErrNeedsSide); the
// cathedral requires SideNone (ErrNoSide). ErrUnknownKind otherwise.
func New(kind Kind, side Side) (Piece, error) {
	if kind < Tavern || kind > Cathedral {
		return Piece{}, fmt.Errorf("kind %d: %w", kind, ErrUnknownKind)
	}
	if kind == Cathedral {
		if side != SideNone {
			return Piece{}, ErrNoSide
		}
	} else if side != Light && side != Dark {
		return Piece{}, fmt.Errorf("%s: %w", kind, ErrNeedsSide)
	}

	return Piece{Kind: kind, Side: side, layout: baseLayout(kind, side)}, nil
}

// baseLayout returns the catalogue layout. The abbey and the academy are
// the two chiral shapes: each side gets the mirror image of the other's.
func baseLayout(kind Kind, side Side) [][]bool {
	switch kind {
	case Tavern:
		return [][]bool{{true}}
	case Stable:
		return [][]bool{{true}, {true}}
	case Inn:
		return [][]bool{
			{true, true},
			{true, false},
		}
	case Bridge:
		return [][]bool{{true}, {true}, {true}}
	case Square:
		return [][]bool{
			{true, true},
			{true, true},
		}
	case Manor:
		return [][]bool{
			{true, true, true},
			{false, true, false},
		}
	case Abbey:
		if side == Dark {
			return [][]bool{
				{true, true, false},
				{false, true, true},
			}
		}

		return [][]bool{
			{false, true, true},
			{true, true, false},
		}
	case Academy:
		if side == Dark {
			return [][]bool{
				{true, false, false},
				{true, true, true},
				{false, true, false},
			}
		}

		return [][]bool{
			{false, false, true},
			{true, true, true},
			{false, true, false},
		}
	case Infirmary:
		return [][]bool{
			{false, true, false},
			{true, true, true},
			{false, true, false},
		}
	case Castle:
		return [][]bool{
			{true, true, true},
			{true, false, true},
		}
	case Tower:
		return [][]bool{
			{false, true, true},
			{true, true, false},
			{true, false, false},
		}
	default: // Cathedral
		return [][]bool{
			{false, true, false},
			{true, true, true},
			{false, true, false},
			{false, true, false},
		}
	}
}

// RotateCW returns the piece turned a quarter clockwise.
func (p Piece) RotateCW() Piece {
	h, w := len(p.layout), len(p.layout[0])
	out := make([][]bool, w)
	for r := 0; r < w; r++ {
		out[r] = make([]bool, h)
		for c := 0; c < h; c++ {
			out[r][c] = p.layout[h-1-c][r]
		}
	}

	return Piece{Kind: p.Kind, Side: p.Side, layout: out}
}

// RotateCCW returns the piece turned a quarter counterclockwise.
func (p Piece) RotateCCW() Piece {
	h, w := len(p.layout), len(p.layout[0])
	out := make([][]bool, w)
	for r := 0; r < w; r++ {
		out[r] = make([]bool, h)
		for c := 0; c < h; c++ {
			out[r][c] = p.layout[c][w-1-r]
		}
	}

	return Piece{Kind: p.Kind, Side: p.Side, layout: out}
}

// Shape returns a deep copy of the layout in its current orientation.
func (p Piece) Shape() [][]bool {
	out := make([][]bool, len(p.layout))
	for r, row := range p.layout {
		out[r] = make([]bool, len(row))
		copy(out[r], row)
	}

	return out
}

// CellCount returns the number of cells the piece covers.
func (p Piece) CellCount() int {
	n := 0
	for _, row := range p.layout {
		for _, occ := range row {
			if occ {
				n++
			}
		}
	}

	return n
}

// Cells projects the piece onto absolute coordinates with its top-left
// layout corner at `at`, in row-major order. The result feeds grid.Place.
func (p Piece) Cells(at grid.Coord) []grid.Coord {
	cells := make([]grid.Coord, 0, p.CellCount())
	for r, row := range p.layout {
		for c, occ := range row {
			if occ {
				cells = append(cells, grid.Coord{Row: at.Row + r, Col: at.Col + c})
			}
		}
	}

	return cells
}
