// Package piece ships the standard building catalogue of the game.
//
// What:
//
//   - Kind: the twelve catalogue shapes, from the one-cell tavern to the
//     five-cell cathedral.
//   - Side: Light/Dark ownership; the abbey and academy layouts mirror
//     between sides, the cathedral is neutral.
//   - Piece: an immutable shape value with quarter-turn rotation and
//     projection onto absolute board coordinates (Cells).
//
// Why:
//
//   - The detection engine is agnostic to shapes, but every caller and
//     every realistic test needs the real piece set to build boards with.
//
// Errors:
//
//   - ErrUnknownKind: kind outside the catalogue.
//   - ErrNeedsSide: player piece requested without a side.
//   - ErrNoSide: cathedral requested with a player side.
package piece
