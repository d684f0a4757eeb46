package capture

import (
	"fmt"

	"github.com/mkukova/cathedral/grid"
	"github.com/mkukova/cathedral/scan"
)

// Resolve is the single entry point of the engine: given a post-move board
// snapshot and the player who just moved, it returns everything the move
// captures. The game loop calls it once per completed placement, after the
// grid carries the new piece and before turn handoff, and applies the
// result to its authoritative state; Resolve itself never mutates the
// board.
//
// The pass is: sanity-check the snapshot, count the mover's wall-contact
// clusters (W), flood-fill the capturable regions, then classify each
// region:
//
//  1. A region touching the outer boundary is enclosed only when W ≥ 2 —
//     with two separate contacts the boundary itself closes the loop
//     between them; with one the region is still open to the outside.
//     W is a board-wide count for the mover, not a per-region adjacency
//     (see the package docs for the known limitation).
//  2. An interior region is enclosed by construction: everything around it
//     is the mover's own pieces.
//  3. An enclosed region captures when it traps no building (pure
//     territory claim) or exactly one (the building and the free cells go
//     to the mover). Two or more trapped buildings — any mix of enemies
//     and the neutral cathedral — block the capture entirely.
//
// An empty Result is a normal outcome, not an error. Output ordering is
// deterministic: regions in scan order, freed cells in flood order.
//
// Returns ErrNilBoard, or grid.ErrInconsistentBuilding (wrapped) when the
// snapshot fails its sanity check — a corrupted snapshot would otherwise
// yield a silently wrong verdict.
//
// Complexity: O(H×W) time and memory per pass.
func Resolve(b *grid.Board, mover grid.PlayerID) (*Result, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	if err := b.CheckBuildings(); err != nil {
		return nil, fmt.Errorf("capture: corrupted snapshot: %w", err)
	}
	walls, err := WallContactClusters(b, mover)
	if err != nil {
		return nil, err
	}
	regions, err := Regions(b, mover)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, comp := range regions.Components {
		v := classify(b, comp, walls.Len())
		res.Regions = append(res.Regions, v)
		if !v.Captured {
			continue
		}
		res.FreedCells = append(res.FreedCells, v.Freed...)
		if v.HasBuilding {
			res.Buildings = append(res.Buildings, v.Building)
		}
	}

	return res, nil
}

// classify decides one region's verdict from the global wall-contact count.
func classify(b *grid.Board, comp scan.Component, wallContacts int) Verdict {
	v := Verdict{Cells: comp.Cells}

	touches := false
	for _, c := range comp.Cells {
		if b.OnBoundary(c) {
			touches = true
			break
		}
	}
	if touches && wallContacts < 2 {
		return v // open to the outside through a single contact
	}

	// Count distinct trapped buildings; collect the claimable cells.
	var trapped []grid.BuildingID
	seen := make(map[grid.BuildingID]struct{})
	freed := make([]grid.Coord, 0, len(comp.Cells))
	for _, c := range comp.Cells {
		id, ok, err := b.BuildingAt(c)
		if err != nil || !ok {
			freed = append(freed, c)
			continue
		}
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			trapped = append(trapped, id)
		}
	}
	if len(trapped) > 1 {
		return v // multiple independent buildings trapped together
	}

	v.Captured = true
	v.Freed = freed
	if len(trapped) == 1 {
		v.Building, v.HasBuilding = trapped[0], true
	}

	return v
}
