package capture

import (
	"github.com/mkukova/cathedral/grid"
	"github.com/mkukova/cathedral/scan"
)

// WallContactClusters partitions the mover's boundary-touching cells into
// maximal 4-connected clusters. One contiguous run of the mover's pieces
// along the board edge counts as a single contact no matter how many
// boundary cells it spans; that merge is exactly why this is a flood fill
// and not a plain count of boundary cells.
//
// Partition.Len() is the contact count W consumed by the classifier:
// W = 0 means the mover touches the boundary nowhere.
//
// Complexity: O(H×W) time and memory.
func WallContactClusters(b *grid.Board, mover grid.PlayerID) (*scan.Partition, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	includes := func(c grid.Coord) bool {
		if !b.OnBoundary(c) {
			return false
		}
		occ, err := b.At(c)
		if err != nil {
			return false
		}

		return occ.K == grid.Owned && occ.Owner == mover
	}

	return scan.Components(b.Height(), b.Width(), includes)
}
