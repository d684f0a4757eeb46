// Package cathedral is a capturable-region detection engine for
// territorial board games in the Cathedral family: players wall off areas
// of a fixed grid with multi-cell buildings, and a move that encloses an
// area captures it.
//
// 🏰 What does it do?
//
//	After each placement, hand the engine a board snapshot and the mover's
//	id; it answers with the territory and buildings that move captures:
//		• grid/    — board snapshot: per-cell occupancy + building identity
//		• scan/    — predicate flood fill into 4-connected components
//		• capture/ — wall-contact clustering, region classification, and
//		             the Resolve entry point the game loop calls
//		• piece/   — the standard building catalogue with rotation
//
// ✨ Why this shape?
//
//   - Pure function per move – no persistent region state, no cache
//     invalidation; every pass recomputes from the snapshot
//   - Verdicts, not mutations – the caller applies captures to its own
//     authoritative state; one snapshot is safe to share across
//     concurrent read-only evaluations
//   - Deterministic output – reproducible component ids and cell ordering
//     for replays and golden tests
//
// Quick ASCII example (the mover's ring captures the center):
//
//	░░░░░░
//	░░  ░░
//	░░░░░░
//
// The only call a game loop needs:
//
//	res, err := capture.Resolve(board, mover)
package cathedral
