// Package wave provides tunable options, results and error definitions
// for the level-synchronous breadth-first "wave" search over a grid.Grid.
package wave

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wavepath/grid"
)

// Sentinel errors for wave execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("wave: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell lies off the grid.
	ErrStartOutOfBounds = errors.New("wave: start cell out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wave: invalid option supplied")
)

// Option configures Run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds parameters and callbacks to customise a wave run.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeued cell.
	Ctx context.Context

	// OnRound runs after every round that ended without touching the finish.
	// round counts completed rounds from 1; dist is the distance just
	// assigned; queued is the size of the next round. Returning an error
	// aborts the run and Run wraps it.
	OnRound func(round, dist, queued int) error

	// OnEnqueue runs each time an Empty cell becomes Frontier.
	OnEnqueue func(c grid.Cell, dist int)

	// MaxRounds, if > 0, stops the wave after that many rounds.
	// 0 means no limit.
	MaxRounds int

	err error
}

// DefaultOptions returns background context, no-op hooks, no round limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnRound:   func(int, int, int) error { return nil },
		OnEnqueue: func(grid.Cell, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnRound registers the end-of-round hook. This is where callers
// notify observers and pace the animation.
func WithOnRound(fn func(round, dist, queued int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithOnEnqueue registers a callback for every newly claimed cell.
func WithOnEnqueue(fn func(c grid.Cell, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithMaxRounds bounds the number of rounds.
//
//	n > 0: at most n rounds
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// Result is the outcome of a wave run.
//   - Reached: the wave touched a Finish cell.
//   - Distance: distance recorded on that cell (0 when not reached).
//   - Rounds: rounds that completed without touching the finish.
//   - Visited: cells turned from Empty into Frontier.
//   - Goal: the finish cell Run was asked for.
type Result struct {
	Goal     grid.Cell
	Reached  bool
	Distance int
	Rounds   int
	Visited  int

	finish *grid.Cell
}

// Finish returns the Finish cell the wave touched. ok is false when the
// finish was not reached; the returned cell is then meaningless.
func (r *Result) Finish() (c grid.Cell, ok bool) {
	if r == nil || r.finish == nil {
		return grid.Cell{}, false
	}
	return *r.finish, true
}
