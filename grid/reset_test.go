package grid_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavepath/grid"
)

// searched returns a 3×3 grid that looks like the aftermath of a search:
// a wall, frontier cells with distances and one reverse-path cell.
func searched(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows([]string{
		"So#",
		"o*o",
		"#oF",
	})
	require.NoError(t, err)
	for _, c := range g.Locate(grid.Frontier) {
		g.SetDistance(c, c.X+c.Y)
	}
	g.SetDistance(grid.Cell{X: 1, Y: 1}, 2)
	g.SetDistance(grid.Cell{X: 2, Y: 2}, 4)

	return g
}

// TestResetPath clears Frontier and Finish distances but keeps ReversePath distances.
func TestResetPath(t *testing.T) {
	g := searched(t)
	g.ResetPath()

	assert.Equal(t, "S.#\n...\n#.F\n", g.String())
	for _, c := range []grid.Cell{{1, 0}, {0, 1}, {2, 1}, {1, 2}} {
		d, _ := g.Distance(c)
		assert.Zero(t, d, "frontier distance at %v", c)
	}
	d, _ := g.Distance(grid.Cell{X: 1, Y: 1})
	assert.Equal(t, 2, d, "reverse-path distance is left in place")
	d, _ = g.Distance(grid.Cell{X: 2, Y: 2})
	assert.Zero(t, d, "finish distance is cleared")
}

// TestResetPath_Idempotent: a second ResetPath changes nothing.
func TestResetPath_Idempotent(t *testing.T) {
	g := searched(t)
	g.ResetPath()
	first := g.Snapshot()
	g.ResetPath()
	assert.Equal(t, first, g.Snapshot())
}

// TestResetWalls also clears walls and keeps the endpoints.
func TestResetWalls(t *testing.T) {
	g := searched(t)
	g.ResetWalls()

	assert.Equal(t, "S..\n...\n..F\n", g.String())
	assert.Zero(t, g.Count(grid.Wall))
	assert.Equal(t, 1, g.Count(grid.Start))
	assert.Equal(t, 1, g.Count(grid.Finish))
}

// TestResetAll leaves the grid identical to a fresh one.
func TestResetAll(t *testing.T) {
	g := searched(t)
	g.ResetAll()

	fresh, err := grid.New(g.Size())
	require.NoError(t, err)
	assert.Equal(t, fresh.Snapshot(), g.Snapshot())
}

// TestSnapshot_IsCopy ensures later mutations do not leak into a snapshot.
func TestSnapshot_IsCopy(t *testing.T) {
	g := searched(t)
	snap := g.Snapshot()
	g.ResetAll()

	b, d, ok := snap.At(1, 1)
	require.True(t, ok)
	assert.Equal(t, grid.ReversePath, b)
	assert.Equal(t, 2, d)
	_, _, ok = snap.At(3, 0)
	assert.False(t, ok)
}

// TestConcurrentReadersAndWriters exercises the lock under -race.
func TestConcurrentReadersAndWriters(t *testing.T) {
	g, err := grid.New(16)
	require.NoError(t, err)

	var wg sync.WaitGroup
	const workers = 8
	wg.Add(2 * workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 64; j++ {
				g.MarkFrontier(grid.Cell{X: id, Y: j % 16}, j)
				g.PlaceWall(j%16, id)
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 64; j++ {
				_ = g.Snapshot()
				_, _ = g.Block(grid.Cell{X: j % 16, Y: j % 16})
				g.ResetPath()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 256, g.Count(grid.Empty)+g.Count(grid.Frontier)+g.Count(grid.Wall))
}
