// Package scan defines core types and sentinel errors for the scan
// subpackage of github.com/mkukova/cathedral.
package scan

import "github.com/mkukova/cathedral/grid"

// Predicate reports whether a cell belongs to the subset being partitioned.
// It is only ever invoked with in-bounds coordinates.
type Predicate func(grid.Coord) bool

// Component is one maximal 4-connected component of included cells.
// Cells are listed in BFS discovery order from the component's row-major
// seed, so the ordering is reproducible for a fixed board.
type Component struct {
	ID    int
	Cells []grid.Coord
}

// Excluded is the label of cells the predicate rejected.
const Excluded = -1

// Partition is the result of one Components run: a per-cell component
// label plus the ordered component list. It is immutable once built.
type Partition struct {
	height, width int
	labels        []int // row-major; Excluded where the predicate said no
	Components    []Component
}

// Len returns the number of components.
func (p *Partition) Len() int { return len(p.Components) }

// LabelAt returns the component label of cell c, with ok=false when c is
// out of bounds or was excluded by the predicate.
// Complexity: O(1).
func (p *Partition) LabelAt(c grid.Coord) (label int, ok bool) {
	if c.Row < 0 || c.Row >= p.height || c.Col < 0 || c.Col >= p.width {
		return Excluded, false
	}
	label = p.labels[c.Row*p.width+c.Col]

	return label, label != Excluded
}
