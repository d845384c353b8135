package backtrack_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavepath/backtrack"
	"github.com/katalvlaran/wavepath/grid"
	"github.com/katalvlaran/wavepath/wave"
)

// searchRows builds a grid from rows, runs the wave between its Start and
// Finish, and returns the grid with the wave result.
func searchRows(t *testing.T, rows ...string) (*grid.Grid, *wave.Result) {
	t.Helper()
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	return g, searchGrid(t, g)
}

func searchGrid(t *testing.T, g *grid.Grid) *wave.Result {
	t.Helper()
	starts, finishes := g.Locate(grid.Start), g.Locate(grid.Finish)
	require.Len(t, starts, 1)
	require.Len(t, finishes, 1)
	res, err := wave.Run(g, starts[0], finishes[0])
	require.NoError(t, err)
	return res
}

func adjacent(a, b grid.Cell) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}

// assertChain checks the trail is a connected 4-neighbour chain from a
// neighbour of the finish to a neighbour of the start, strictly decreasing
// in recorded distance, and that exactly its cells are ReversePath.
func assertChain(t *testing.T, g *grid.Grid, start grid.Cell, trail *backtrack.Trail) {
	t.Helper()
	require.Equal(t, len(trail.Cells), g.Count(grid.ReversePath))
	if len(trail.Cells) == 0 {
		assert.True(t, adjacent(trail.Finish, start), "empty trail needs adjacent endpoints")
		return
	}
	assert.True(t, adjacent(trail.Finish, trail.Cells[0]), "first cell must touch the finish")
	assert.True(t, adjacent(trail.Cells[len(trail.Cells)-1], start), "last cell must touch the start")

	prev, _ := g.Distance(trail.Finish)
	for i, c := range trail.Cells {
		if i > 0 {
			assert.True(t, adjacent(trail.Cells[i-1], c), "cells %d and %d are not neighbours", i-1, i)
		}
		b, _ := g.Block(c)
		assert.Equal(t, grid.ReversePath, b)
		d, _ := g.Distance(c)
		assert.Less(t, d, prev, "distance must strictly decrease at %v", c)
		prev = d
	}
	assert.Equal(t, 1, prev, "cell next to the start sits at distance 1")
}

//----------------------------------------------------------------------------//
// Scenarios
//----------------------------------------------------------------------------//

// TestReconstruct_CornerToCorner: distance 8, seven ReversePath cells, eight hops.
func TestReconstruct_CornerToCorner(t *testing.T) {
	g, res := searchRows(t,
		"S....",
		".....",
		".....",
		".....",
		"....F",
	)
	require.True(t, res.Reached)
	require.Equal(t, 8, res.Distance)

	finish, ok := res.Finish()
	require.True(t, ok)
	trail, err := backtrack.Reconstruct(g, finish)
	require.NoError(t, err)

	assert.Len(t, trail.Cells, 7)
	assert.Equal(t, 8, trail.Hops())
	assertChain(t, g, grid.Cell{}, trail)
}

// TestReconstruct_WallGap: a wall row at y=2 with a gap at x=2 forces the route through it.
func TestReconstruct_WallGap(t *testing.T) {
	g, res := searchRows(t,
		"S....",
		".....",
		"##.##",
		".....",
		"....F",
	)
	require.True(t, res.Reached)
	finish, _ := res.Finish()
	trail, err := backtrack.Reconstruct(g, finish)
	require.NoError(t, err)

	assert.Contains(t, trail.Cells, grid.Cell{X: 2, Y: 2})
	for _, c := range trail.Cells {
		if c.Y == 2 {
			assert.Equal(t, 2, c.X, "route crossed row 2 outside the gap")
		}
	}
	assertChain(t, g, grid.Cell{}, trail)
}

// TestReconstruct_Adjacent: neighbouring endpoints give an empty trail.
func TestReconstruct_Adjacent(t *testing.T) {
	g, res := searchRows(t,
		"SF",
		"..",
	)
	require.True(t, res.Reached)
	require.Equal(t, 1, res.Distance)

	trail, err := backtrack.Reconstruct(g, grid.Cell{X: 1, Y: 0})
	require.NoError(t, err)
	assert.Empty(t, trail.Cells)
	assert.Equal(t, 1, trail.Hops())
	assert.Zero(t, g.Count(grid.ReversePath))
}

// TestReconstruct_TieBreak follows the right, left, down, up probe order.
func TestReconstruct_TieBreak(t *testing.T) {
	g, _ := searchRows(t,
		"S..",
		"...",
		"..F",
	)
	trail, err := backtrack.Reconstruct(g, grid.Cell{X: 2, Y: 2})
	require.NoError(t, err)
	want := []grid.Cell{{X: 1, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 1}}
	assert.Equal(t, want, trail.Cells)
}

// TestReconstruct_Enclosed: no distance on the finish, nothing highlighted.
func TestReconstruct_Enclosed(t *testing.T) {
	g, res := searchRows(t,
		"S..",
		".##",
		".#F",
	)
	require.False(t, res.Reached)

	_, err := backtrack.Reconstruct(g, grid.Cell{X: 2, Y: 2})
	assert.ErrorIs(t, err, backtrack.ErrFinishUnreached)
	assert.Zero(t, g.Count(grid.ReversePath))
}

//----------------------------------------------------------------------------//
// Errors
//----------------------------------------------------------------------------//

// TestReconstruct_Errors covers nil grids, off-grid finishes and broken fields.
func TestReconstruct_Errors(t *testing.T) {
	_, err := backtrack.Reconstruct(nil, grid.Cell{})
	assert.ErrorIs(t, err, backtrack.ErrGridNil)

	g, err := grid.FromRows([]string{"S..", "...", "..F"})
	require.NoError(t, err)
	_, err = backtrack.Reconstruct(g, grid.Cell{X: 5, Y: 5})
	assert.ErrorIs(t, err, backtrack.ErrFinishUnreached)

	// A distance on the finish with no wave behind it.
	g.SetDistance(grid.Cell{X: 2, Y: 2}, 4)
	trail, err := backtrack.Reconstruct(g, grid.Cell{X: 2, Y: 2})
	assert.ErrorIs(t, err, backtrack.ErrBrokenTrail)
	require.NotNil(t, trail)
	assert.Empty(t, trail.Cells)
}

// TestReconstruct_OnStep counts steps and propagates hook errors.
func TestReconstruct_OnStep(t *testing.T) {
	g, _ := searchRows(t, "S....", ".....", ".....", ".....", "....F")
	var dists []int
	_, err := backtrack.Reconstruct(g, grid.Cell{X: 4, Y: 4},
		backtrack.WithOnStep(func(step int, _ grid.Cell, dist int) error {
			dists = append(dists, dist)
			return nil
		}))
	require.NoError(t, err)
	assert.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, dists)

	g, _ = searchRows(t, "S....", ".....", ".....", ".....", "....F")
	boom := errors.New("boom")
	trail, err := backtrack.Reconstruct(g, grid.Cell{X: 4, Y: 4},
		backtrack.WithOnStep(func(step int, _ grid.Cell, _ int) error {
			if step == 2 {
				return boom
			}
			return nil
		}))
	assert.ErrorIs(t, err, boom)
	assert.Len(t, trail.Cells, 2)
}

// TestReconstruct_Cancelled stops before the first step.
func TestReconstruct_Cancelled(t *testing.T) {
	g, _ := searchRows(t, "S..", "...", "..F")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := backtrack.Reconstruct(g, grid.Cell{X: 2, Y: 2}, backtrack.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, g.Count(grid.ReversePath))
}

//----------------------------------------------------------------------------//
// Randomised property check
//----------------------------------------------------------------------------//

// TestReconstruct_RandomGrids checks the chain property on seeded random mazes.
func TestReconstruct_RandomGrids(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	const n = 12
	reached := 0
	for i := 0; i < 200; i++ {
		g, err := grid.New(n)
		require.NoError(t, err)
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				if r.Float64() < 0.3 {
					g.SetBlock(x, y, grid.Wall)
				}
			}
		}
		start := grid.Cell{X: r.Intn(n), Y: r.Intn(n)}
		finish := grid.Cell{X: r.Intn(n), Y: r.Intn(n)}
		if start == finish {
			continue
		}
		g.SetBlock(start.X, start.Y, grid.Start)
		g.SetBlock(finish.X, finish.Y, grid.Finish)

		res, err := wave.Run(g, start, finish)
		require.NoError(t, err)
		if !res.Reached {
			_, err := backtrack.Reconstruct(g, finish)
			assert.ErrorIs(t, err, backtrack.ErrFinishUnreached)
			continue
		}
		reached++
		trail, err := backtrack.Reconstruct(g, finish)
		require.NoError(t, err, "grid:\n%s", g)
		assert.Equal(t, res.Distance, trail.Hops())
		assertChain(t, g, start, trail)
	}
	assert.Positive(t, reached)
}
