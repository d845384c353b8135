package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wavepath/grid"
	"github.com/katalvlaran/wavepath/search"
)

// ExampleController_Start runs a headless search through a wall gap and
// prints the highlighted route.
func ExampleController_Start() {
	g, _ := grid.FromRows([]string{
		"S....",
		".....",
		"##.##",
		".....",
		"....F",
	})
	c, _ := search.NewController(g, search.WithLogger(quiet))

	h, err := c.Start(context.Background(), grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 4}, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	out, _ := h.Wait()

	fmt.Println(h.Status(), out.Distance, len(out.Path))
	// Output:
	// reached 8 7
}
