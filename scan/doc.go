// Package scan partitions a predicate-selected subset of grid cells into
// maximal 4-connected components.
//
// What:
//
//   - Components(height, width, includes) labels every accepted cell with
//     a component id and returns the ordered component list.
//   - Partition answers per-cell label lookups in O(1).
//
// Why:
//
//   - Capturable-region detection needs the same flood fill twice with
//     different membership rules: once over the mover's boundary-touching
//     cells (wall-contact clusters), once over capturable cells (regions).
//     A predicate keeps the traversal generic instead of duplicating it.
//
// Determinism:
//
//   - Components are seeded from the lowest unvisited accepted cell in
//     row-major order and grown by BFS with a fixed neighbor order, so ids
//     and member ordering are reproducible for a fixed board.
//
// Complexity:
//
//   - Components: O(H×W×4) time, O(H×W) memory.
//
// Errors:
//
//   - ErrBadBounds: height or width ≤ 0.
//   - ErrNilPredicate: nil membership predicate.
package scan
