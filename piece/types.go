// Package piece defines the building catalogue and sentinel errors for the
// piece subpackage of github.com/mkukova/cathedral.
package piece

// Kind enumerates the building shapes of the game.
type Kind int

const (
	Tavern Kind = iota
	Stable
	Inn
	Bridge
	Square
	Manor
	Abbey
	Academy
	Infirmary
	Castle
	Tower
	Cathedral
)

// String returns the kind's catalogue name.
func (k Kind) String() string {
	if k < Tavern || k > Cathedral {
		return "unknown"
	}

	return kindNames[k]
}

var kindNames = [...]string{
	"tavern", "stable", "inn", "bridge", "square", "manor",
	"abbey", "academy", "infirmary", "castle", "tower", "cathedral",
}

// Side distinguishes the two players' piece sets. The abbey and the academy
// are chiral: their layouts mirror between sides. The cathedral belongs to
// no side.
type Side int

const (
	SideNone Side = iota
	Light
	Dark
)

// Piece is a value record of one building shape at a fixed orientation:
// its kind, its side, and a row-major boolean layout. Rotations return new
// values; a Piece is never mutated after construction.
type Piece struct {
	Kind   Kind
	Side   Side
	layout [][]bool
}
