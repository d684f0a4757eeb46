package capture

import (
	"github.com/mkukova/cathedral/grid"
	"github.com/mkukova/cathedral/scan"
)

// Regions partitions all cells capturable with respect to the mover into
// maximal 4-connected candidate regions. A cell is capturable-for-mover
// when it is empty, neutral, or owned by another player; the mover's own
// cells (and the area outside the grid) act as impassable walls.
//
// A building never straddles two regions: its cells share one occupancy
// state and are mutually 4-connected, so the flood fill takes all of them
// or none.
//
// Complexity: O(H×W) time and memory.
func Regions(b *grid.Board, mover grid.PlayerID) (*scan.Partition, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	includes := func(c grid.Coord) bool {
		occ, err := b.At(c)
		if err != nil {
			return false
		}

		return occ.K != grid.Owned || occ.Owner != mover
	}

	return scan.Components(b.Height(), b.Width(), includes)
}
