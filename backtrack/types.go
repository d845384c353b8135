package backtrack

import (
	"context"
	"errors"

	"github.com/katalvlaran/wavepath/grid"
)

// Sentinel errors for reconstruction.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("backtrack: grid is nil")

	// ErrFinishUnreached is returned when the finish cell is off the grid
	// or carries no recorded distance.
	ErrFinishUnreached = errors.New("backtrack: finish has no recorded distance")

	// ErrBrokenTrail is returned when no neighbour is strictly closer to
	// the start than the current cell, i.e. the distance field is not the
	// output of a completed wave.
	ErrBrokenTrail = errors.New("backtrack: distance field does not lead back to start")
)

// Option configures Reconstruct.
type Option func(*Options)

// Options holds parameters and callbacks for a reconstruction.
type Options struct {
	// Ctx allows cancellation; checked once per step.
	Ctx context.Context

	// OnStep runs after each cell is marked ReversePath. step counts from 1.
	// Returning an error aborts the walk.
	OnStep func(step int, c grid.Cell, dist int) error
}

// DefaultOptions returns background context and a no-op OnStep.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func(int, grid.Cell, int) error { return nil },
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

// WithOnStep registers the per-step hook.
func WithOnStep(fn func(step int, c grid.Cell, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Trail is a reconstructed route, ordered from the finish back towards the
// start. It excludes the finish and the start; the last cell is adjacent
// to the start. An empty Trail means finish and start are neighbours.
type Trail struct {
	Finish grid.Cell
	Cells  []grid.Cell
}

// Hops returns the number of moves from start to finish along the trail.
func (t *Trail) Hops() int {
	return len(t.Cells) + 1
}
