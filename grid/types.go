// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/mkukova/cathedral.
package grid

// PlayerID identifies one player of the surrounding game. Values are
// assigned by the caller; the engine only ever compares them for equality.
type PlayerID int

// BuildingID identifies one placed piece instance. Ids are assigned by the
// caller and must be unique per board; the engine never invents them.
type BuildingID int

// noBuilding marks a cell not covered by any placed piece.
const noBuilding BuildingID = -1

// Kind enumerates the occupancy states a cell can be in.
type Kind int

const (
	// Empty marks a cell with no piece on it.
	Empty Kind = iota
	// Owned marks a cell covered by a piece belonging to a player.
	Owned
	// Neutral marks a cell covered by the neutral piece (the cathedral).
	Neutral
)

// Occupancy is the full occupancy state of one cell.
// Owner is meaningful only when K == Owned; it is the zero PlayerID otherwise.
type Occupancy struct {
	K     Kind
	Owner PlayerID
}

// Coord addresses a single cell by row and column inside
// [0,height) × [0,width).
type Coord struct {
	Row, Col int
}

// Building records one placed piece instance: its id, its uniform occupancy
// (Owned or Neutral), and the cells it covers in placement order.
type Building struct {
	ID    BuildingID
	Occ   Occupancy
	Cells []Coord
}

// Board is a snapshot of the game board: fixed dimensions plus per-cell
// occupancy and building identity. Detection passes treat it as read-only;
// the mutating methods (Place, PlaceNeutral, Remove) exist so callers can
// construct snapshots and apply capture verdicts.
type Board struct {
	height, width int
	occ           []Occupancy  // row-major
	byCell        []BuildingID // row-major; noBuilding when unoccupied
	buildings     map[BuildingID]*Building
}
