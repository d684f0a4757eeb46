// Package capture defines result types and sentinel errors for the capture
// subpackage of github.com/mkukova/cathedral.
package capture

import "github.com/mkukova/cathedral/grid"

// Verdict is the classification of one candidate region.
//
// Cells always holds the region's member cells in flood order. When the
// region is captured, Freed lists its non-building cells (territory the
// mover claims) and Building/HasBuilding report the single trapped building,
// if any. A non-captured region keeps Freed nil.
type Verdict struct {
	Cells       []grid.Coord
	Captured    bool
	Freed       []grid.Coord
	Building    grid.BuildingID
	HasBuilding bool
}

// Result is the outcome of one detection pass: the per-region verdicts plus
// the union of everything captured, ready for the caller to apply.
//
// FreedCells lists cells to clear (claimed territory, in region order then
// flood order); Buildings lists ids to remove or transfer to the mover.
// The engine never applies any of this itself.
type Result struct {
	Regions    []Verdict
	FreedCells []grid.Coord
	Buildings  []grid.BuildingID
}

// Empty reports whether the pass captured nothing.
func (r *Result) Empty() bool {
	return len(r.FreedCells) == 0 && len(r.Buildings) == 0
}
