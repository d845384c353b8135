// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/wavepath/grid"
)

// ExampleGrid_ResetWalls shows the editing lifecycle: place endpoints and
// walls, then clear the walls while keeping Start and Finish.
func ExampleGrid_ResetWalls() {
	g, _ := grid.New(4)
	g.SetBlock(0, 0, grid.Start)
	g.SetBlock(3, 3, grid.Finish)
	for x := 0; x < 3; x++ {
		g.PlaceWall(x, 2)
	}
	fmt.Print(g)
	fmt.Println("--")

	g.ResetWalls()
	fmt.Print(g)
	// Output:
	// S...
	// ....
	// ###.
	// ...F
	// --
	// S...
	// ....
	// ....
	// ...F
}
