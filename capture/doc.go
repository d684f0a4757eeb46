// Package capture decides which areas of the board a completed placement
// encloses and therefore captures.
//
// What:
//
//   - WallContactClusters: the mover's boundary-touching cells, merged into
//     maximal 4-connected clusters (count W).
//   - Regions: all capturable-for-mover cells, partitioned into candidate
//     regions (the mover's own cells are walls).
//   - Resolve: the entry point — classifies every region and returns the
//     union of captured territory and trapped buildings as a Result.
//
// Why:
//
//   - Enclosure is the one genuinely subtle rule of the game: a naive flood
//     fill double-counts a contiguous wall segment that spans several
//     boundary cells, and treats a region open to the edge as enclosed.
//     Clustering the boundary contacts first fixes both.
//
// Known limitation:
//
//   - The contact count W is global for the mover, not scoped to the
//     clusters actually bounding a given region. A board with several
//     unrelated open and enclosed areas can therefore misclassify a
//     boundary-touching region. Scoping W per region (recording which
//     clusters are adjacent to the region during its flood fill) would
//     strengthen this, but changes the game rule and is deliberately not
//     done here.
//
// Concurrency:
//
//   - A pass is a pure function over the snapshot: no mutation, no I/O,
//     no shared state. One board may serve any number of concurrent
//     passes; clone it only to mutate hypothetical lines.
//
// Complexity:
//
//   - Resolve: O(H×W) time and memory per pass.
//
// Errors:
//
//   - ErrNilBoard: nil snapshot.
//   - grid.ErrInconsistentBuilding (wrapped): snapshot failed its sanity
//     check; the verdict would have been unreliable.
package capture
