// Package grid models an immutable-per-pass snapshot of a territorial
// board-game grid.
//
// What:
//
//   - Board holds fixed dimensions, per-cell occupancy (Empty / Owned /
//     Neutral) and the BuildingID covering every occupied cell.
//   - Place / PlaceNeutral / Remove construct and rewind snapshots with
//     validate-then-commit semantics; a failed call never half-mutates.
//   - CheckBuildings detects corrupted snapshots before they can produce
//     a wrong capture verdict.
//   - Clone supports evaluating hypothetical moves on private copies while
//     the original snapshot is shared read-only.
//
// Why:
//
//   - The capture engine (package capture) needs a read-only view it can
//     trust: cells never shared between buildings, occupancy uniform per
//     building, buildings 4-connected.
//   - Callers need a cheap way to build post-move snapshots and to apply
//     capture verdicts (Remove) without the engine mutating anything.
//
// Complexity:
//
//   - At / BuildingAt / InBounds / OnBoundary: O(1).
//   - Place / Remove: O(cells of the piece). Clone: O(H×W).
//   - CheckBuildings: O(total building cells).
//
// Errors:
//
//   - ErrBadDimensions: height or width ≤ 0 at construction.
//   - ErrOutOfBounds: query or placement outside the board.
//   - ErrNoCells, ErrCellOccupied, ErrDuplicateBuilding: invalid placement.
//   - ErrUnknownBuilding: Remove of an id not on the board.
//   - ErrInconsistentBuilding: CheckBuildings found a corrupted record.
package grid
