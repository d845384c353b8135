// Package backtrack reconstructs the route found by a wave search by
// walking the recorded distance field downhill from the finish to the start.
package backtrack

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wavepath/grid"
)

// probeOrder is the fixed neighbour order: right, left, down, up.
var probeOrder = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

const infinity = math.MaxInt

// Reconstruct walks from finish to the start over g's distances, marking
// every intermediate cell ReversePath.
//
// Each step moves to the neighbour with the strictly smallest effective
// distance, first-seen in probe order winning ties. The walk ends when that
// neighbour is the Start cell. Every step must strictly decrease the
// distance; otherwise ErrBrokenTrail is returned with the partial trail.
//
// Returns ErrGridNil, ErrFinishUnreached, ErrBrokenTrail, the context error
// on cancellation, or a wrapped OnStep error.
//
// Complexity: O(d) steps for a finish at distance d.
func Reconstruct(g *grid.Grid, finish grid.Cell, opts ...Option) (*Trail, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	current, ok := g.Distance(finish)
	if !ok || current <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrFinishUnreached, finish)
	}

	trail := &Trail{Finish: finish, Cells: make([]grid.Cell, 0, current)}
	for at := finish; ; {
		select {
		case <-o.Ctx.Done():
			return trail, o.Ctx.Err()
		default:
		}

		next, dist := closest(g, at)
		if dist >= current {
			return trail, fmt.Errorf("%w: stuck at %v (distance %d)", ErrBrokenTrail, at, current)
		}
		if t, _ := g.Block(next); t == grid.Start {
			return trail, nil
		}

		g.MarkReversePath(next)
		trail.Cells = append(trail.Cells, next)
		if err := o.OnStep(len(trail.Cells), next, dist); err != nil {
			return trail, fmt.Errorf("backtrack: OnStep error at %v: %w", next, err)
		}
		at, current = next, dist
	}
}

// closest returns the neighbour of c with the smallest effective distance.
func closest(g *grid.Grid, c grid.Cell) (grid.Cell, int) {
	best, low := c, infinity
	for _, d := range probeOrder {
		n := c.Offset(d[0], d[1])
		if v := effectiveDistance(g, n); v < low {
			best, low = n, v
		}
	}
	return best, low
}

// effectiveDistance is 0 for the Start, the recorded distance for cells the
// wave reached, and infinity for everything else: off-grid, walls, Empty
// cells and any cell whose distance is still unset.
func effectiveDistance(g *grid.Grid, c grid.Cell) int {
	t, ok := g.Block(c)
	if !ok {
		return infinity
	}
	switch t {
	case grid.Start:
		return 0
	case grid.Frontier, grid.ReversePath, grid.Finish:
		if d, _ := g.Distance(c); d > 0 {
			return d
		}
	}
	return infinity
}
