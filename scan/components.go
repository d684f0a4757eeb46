package scan

import "github.com/mkukova/cathedral/grid"

// neighborOffsets lists the 4-connected neighbor deltas in a fixed
// (north, west, east, south) order. Adjacency is strictly orthogonal:
// that is the geometry of the game, not an optimization choice.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// Components partitions every cell of a height×width grid accepted by the
// includes predicate into maximal 4-connected components.
//
// Determinism: the scan seeds a new component at the lowest unvisited
// accepted cell in row-major order and grows it by BFS with a fixed
// neighbor order, so component ids and member ordering are reproducible
// for a fixed board — a requirement for testable output and replays.
//
// Every accepted cell is visited exactly once and the traversal never
// leaves the bounds. Returns ErrBadBounds or ErrNilPredicate on invalid
// input.
//
// Time:   O(H×W) predicate calls plus O(H×W×4) neighbor probes.
// Memory: O(H×W) for labels and the output.
func Components(height, width int, includes Predicate) (*Partition, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrBadBounds
	}
	if includes == nil {
		return nil, ErrNilPredicate
	}
	total := height * width
	labels := make([]int, total)
	for i := range labels {
		labels[i] = Excluded
	}
	// Evaluate the predicate once per cell; flood fill consults this mask.
	included := make([]bool, total)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			included[r*width+c] = includes(grid.Coord{Row: r, Col: c})
		}
	}

	p := &Partition{height: height, width: width, labels: labels}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			seed := r*width + c
			if !included[seed] || labels[seed] != Excluded {
				continue
			}
			id := len(p.Components)
			labels[seed] = id
			queue := []grid.Coord{{Row: r, Col: c}}
			var cells []grid.Coord

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				cells = append(cells, u)
				for _, d := range neighborOffsets {
					v := grid.Coord{Row: u.Row + d[0], Col: u.Col + d[1]}
					if v.Row < 0 || v.Row >= height || v.Col < 0 || v.Col >= width {
						continue
					}
					vi := v.Row*width + v.Col
					if !included[vi] || labels[vi] != Excluded {
						continue
					}
					labels[vi] = id
					queue = append(queue, v)
				}
			}
			p.Components = append(p.Components, Component{ID: id, Cells: cells})
		}
	}

	return p, nil
}
