// File: capture/example_test.go
package capture_test

import (
	"fmt"

	"github.com/mkukova/cathedral/capture"
	"github.com/mkukova/cathedral/grid"
	"github.com/mkukova/cathedral/piece"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Resolve
////////////////////////////////////////////////////////////////////////////////

// ExampleResolve walks the canonical enclosure: a ring of the mover's
// pieces fully inside the board claims the single empty cell it surrounds.
// Scenario:
//
//	. . . . .
//	. ░ ░ ░ .
//	. ░ + ░ .      ░ = mover, + = captured territory
//	. ░ ░ ░ .
//	. . . . .
//
// Complexity: O(H×W) per pass.
func ExampleResolve() {
	board, _ := grid.New(5, 5)
	_ = board.Place(1, 1, []grid.Coord{
		{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3},
		{Row: 2, Col: 3}, {Row: 3, Col: 3}, {Row: 3, Col: 2},
		{Row: 3, Col: 1}, {Row: 2, Col: 1},
	})

	res, _ := capture.Resolve(board, 1)
	fmt.Println("freed:", res.FreedCells)
	fmt.Println("buildings:", res.Buildings)

	// Output:
	// freed: [{2 2}]
	// buildings: []
}

////////////////////////////////////////////////////////////////////////////////
// Example: Resolve with catalogue pieces
////////////////////////////////////////////////////////////////////////////////

// ExampleResolve_trappedBuilding builds a position from the real piece
// catalogue: the mover walls in the opponent's tavern together with one
// empty cell, and the move captures both.
// Scenario (6×6, ░ = mover, ██ = trapped tavern, + = claimed cell):
//
//	. . . . . .
//	░ ░ ░ . . .
//	░ ██ + ░ . .
//	░ ░ ░ . . .
//	. . . . . .
//	. . . . . .
func ExampleResolve_trappedBuilding() {
	board, _ := grid.New(6, 6)

	bridge, _ := piece.New(piece.Bridge, piece.Light) // 3 cells, vertical
	stable, _ := piece.New(piece.Stable, piece.Light) // 2 cells, vertical
	tavernL, _ := piece.New(piece.Tavern, piece.Light)
	tavernD, _ := piece.New(piece.Tavern, piece.Dark)

	const moverID, enemyID = 1, 2
	_ = board.Place(1, moverID, bridge.RotateCW().Cells(grid.Coord{Row: 1, Col: 0})) // roof
	_ = board.Place(2, moverID, stable.Cells(grid.Coord{Row: 2, Col: 0}))            // left wall
	_ = board.Place(3, moverID, stable.RotateCW().Cells(grid.Coord{Row: 3, Col: 1})) // floor
	_ = board.Place(4, moverID, tavernL.Cells(grid.Coord{Row: 2, Col: 3}))           // right wall
	_ = board.Place(5, enemyID, tavernD.Cells(grid.Coord{Row: 2, Col: 1}))           // trapped

	res, _ := capture.Resolve(board, moverID)
	fmt.Println("freed:", res.FreedCells)
	fmt.Println("buildings:", res.Buildings)

	// Output:
	// freed: [{2 2}]
	// buildings: [5]
}
