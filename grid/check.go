package grid

import "fmt"

// CheckBuildings verifies every recorded building against the per-cell
// state: a non-empty, 4-connected cell set whose cells all carry the
// building's occupancy and id. A failure means the snapshot was corrupted
// during construction and any capture verdict computed from it would be
// wrong, so it is surfaced instead of ignored.
// Returns ErrInconsistentBuilding (wrapped with the offending id) or nil.
// Complexity: O(total building cells).
func (b *Board) CheckBuildings() error {
	for _, bld := range b.Buildings() {
		if err := b.checkBuilding(bld); err != nil {
			return err
		}
	}

	return nil
}

func (b *Board) checkBuilding(bld Building) error {
	if len(bld.Cells) == 0 {
		return fmt.Errorf("building %d has no cells: %w", bld.ID, ErrInconsistentBuilding)
	}
	members := make(map[Coord]struct{}, len(bld.Cells))
	for _, c := range bld.Cells {
		if !b.InBounds(c) {
			return fmt.Errorf("building %d covers (%d,%d) out of bounds: %w", bld.ID, c.Row, c.Col, ErrInconsistentBuilding)
		}
		i := b.index(c)
		if b.occ[i] != bld.Occ || b.byCell[i] != bld.ID {
			return fmt.Errorf("building %d out of sync at (%d,%d): %w", bld.ID, c.Row, c.Col, ErrInconsistentBuilding)
		}
		members[c] = struct{}{}
	}
	if len(members) != len(bld.Cells) {
		return fmt.Errorf("building %d repeats a cell: %w", bld.ID, ErrInconsistentBuilding)
	}
	// BFS inside the member set; a building must be one 4-connected blob.
	queue := []Coord{bld.Cells[0]}
	visited := map[Coord]struct{}{bld.Cells[0]: {}}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}} {
			v := Coord{Row: u.Row + d[0], Col: u.Col + d[1]}
			if _, member := members[v]; !member {
				continue
			}
			if _, seen := visited[v]; seen {
				continue
			}
			visited[v] = struct{}{}
			queue = append(queue, v)
		}
	}
	if len(visited) != len(members) {
		return fmt.Errorf("building %d is not 4-connected: %w", bld.ID, ErrInconsistentBuilding)
	}

	return nil
}
