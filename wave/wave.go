// Package wave runs a level-synchronous breadth-first search over a
// grid.Grid, tagging reached cells as Frontier and recording per-cell
// distances, until the wave touches a Finish cell or runs out of cells.
package wave

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wavepath/grid"
)

// probeOrder is the fixed neighbour order: down, right, up, left.
var probeOrder = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// walker encapsulates mutable wave state.
type walker struct {
	grid  *grid.Grid
	opts  Options
	ctx   context.Context
	queue []grid.Cell
	res   *Result
}

// Run expands a wave from start over g.
//
// finish names the intended goal. The wave stops at the first Finish cell it
// touches, which on a well-formed grid is finish itself; Result.Finish
// reports the cell actually touched and Result.Goal echoes finish.
//
// The type of the start cell is not checked and start is never re-tagged.
// An unreachable finish is a normal outcome (Reached == false), not an error.
// Returns ErrGridNil, ErrStartOutOfBounds, ErrOptionViolation, the context
// error on cancellation, or a wrapped OnRound error. On error the partial
// Result is still returned.
//
// Complexity: O(n²) time, O(n²) queue memory in the worst case.
func Run(g *grid.Grid, start, finish grid.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]grid.Cell, 0, g.Size()),
		res:   &Result{Goal: finish},
	}
	w.queue = append(w.queue, start)

	return w.res, w.loop()
}

// loop drains the queue one round at a time.
func (w *walker) loop() error {
	for dist := 1; len(w.queue) > 0; dist++ {
		if w.opts.MaxRounds > 0 && w.res.Rounds >= w.opts.MaxRounds {
			return nil
		}

		// Freeze the round: only cells queued before it began belong to it.
		roundSize := len(w.queue)
		for ; roundSize > 0; roundSize-- {
			select {
			case <-w.ctx.Done():
				return w.ctx.Err()
			default:
			}

			if w.expand(w.dequeue(), dist) {
				// The rest of this round and the queue are abandoned.
				w.queue = w.queue[:0]
				return nil
			}
		}

		w.res.Rounds++
		if err := w.opts.OnRound(w.res.Rounds, dist, len(w.queue)); err != nil {
			return fmt.Errorf("wave: OnRound error after round %d: %w", w.res.Rounds, err)
		}
	}
	return nil
}

func (w *walker) dequeue() grid.Cell {
	c := w.queue[0]
	w.queue = w.queue[1:]
	return c
}

// expand probes the neighbours of c and reports whether a Finish was touched.
func (w *walker) expand(c grid.Cell, dist int) bool {
	for _, d := range probeOrder {
		n := c.Offset(d[0], d[1])
		t, ok := w.grid.Block(n)
		if !ok {
			continue
		}
		switch t {
		case grid.Finish:
			w.grid.SetDistance(n, dist)
			w.res.Reached = true
			w.res.Distance = dist
			w.res.finish = &n
			return true
		case grid.Empty:
			if w.grid.MarkFrontier(n, dist) {
				w.res.Visited++
				w.opts.OnEnqueue(n, dist)
				w.queue = append(w.queue, n)
			}
		}
	}
	return false
}
