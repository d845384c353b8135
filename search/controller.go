// Package search drives the wave and backtrack passes on a background
// goroutine, paces them for animation, and guards the grid against edits
// while a search owns it.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wavepath/backtrack"
	"github.com/katalvlaran/wavepath/grid"
	"github.com/katalvlaran/wavepath/wave"
)

// Controller is the single owner of a grid's "editable" versus "being
// searched" state. At most one search runs at a time; editing methods
// return ErrSearchInProgress while it does.
//
// Observers (both the controller's and the grid's) must not call back into
// the Controller's editing methods or Start; reading the grid is fine.
type Controller struct {
	mu     sync.Mutex // guards active and serialises edits against Start
	grid   *grid.Grid
	active *Handle

	observer grid.Observer
	logger   *slog.Logger
	tracer   trace.Tracer
	sleep    Sleeper
}

// NewController wraps g. Returns ErrGridNil for a nil grid.
func NewController(g *grid.Grid, opts ...Option) (*Controller, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	c := &Controller{
		grid:   g,
		logger: slog.Default(),
		tracer: otel.Tracer("github.com/katalvlaran/wavepath/search"),
		sleep:  sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Grid returns the controlled grid for read access (Snapshot, Block, ...).
// Mutate it only through the Controller.
func (c *Controller) Grid() *grid.Grid { return c.grid }

// Active returns the running search, if any.
func (c *Controller) Active() (*Handle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active, c.active != nil
}

// guard rejects op while a search is running. Caller holds c.mu.
func (c *Controller) guard(op string) error {
	if c.active == nil {
		return nil
	}
	rejectedEdits.WithLabelValues(op).Inc()
	c.logger.Warn("edit rejected", slog.String("op", op), slog.String("search_id", c.active.id.String()))
	return fmt.Errorf("%w: %s", ErrSearchInProgress, op)
}

// edit runs fn under the guard.
func (c *Controller) edit(op string, fn func()) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.guard(op); err != nil {
		return err
	}
	fn()
	return nil
}

// SetBlock sets the type at (x, y); off-grid coordinates are ignored.
func (c *Controller) SetBlock(x, y int, t grid.BlockType) error {
	return c.edit("set_block", func() { c.grid.SetBlock(x, y, t) })
}

// PlaceWall turns an Empty cell into a Wall and reports whether it did.
func (c *Controller) PlaceWall(x, y int) (bool, error) {
	var placed bool
	err := c.edit("place_wall", func() { placed = c.grid.PlaceWall(x, y) })
	return placed, err
}

// ResetPath clears Frontier and ReversePath cells.
func (c *Controller) ResetPath() error {
	return c.edit("reset_path", c.grid.ResetPath)
}

// ResetWalls clears search results and walls.
func (c *Controller) ResetWalls() error {
	return c.edit("reset_walls", c.grid.ResetWalls)
}

// ResetAll clears the whole grid.
func (c *Controller) ResetAll() error {
	return c.edit("reset_all", c.grid.ResetAll)
}

// Cancel stops the running search, if any, and waits for it to release
// the grid. It is a no-op when the grid is idle.
func (c *Controller) Cancel() {
	h, ok := c.Active()
	if !ok {
		return
	}
	h.Cancel()
	<-h.Done()
}

// Start validates the grid, clears the previous search's marks and launches
// a search from start to finish on a new goroutine. delay paces every BFS
// round and the frame showing the finish reached; each reconstruction step
// waits delay/3.
//
// The search lives until it completes or ctx is cancelled, so pass a
// long-lived context rather than a request-scoped one.
// Returns ErrSearchInProgress, ErrNegativeDelay or an ErrInvalidGrid error.
func (c *Controller) Start(ctx context.Context, start, finish grid.Cell, delay time.Duration) (*Handle, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		return nil, fmt.Errorf("%w: %s", ErrSearchInProgress, c.active.id)
	}
	if delay < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeDelay, delay)
	}
	if err := Validate(c.grid, start, finish); err != nil {
		searchesTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	c.grid.ResetPath()
	runCtx, cancel := context.WithCancel(ctx)
	h := newHandle(start, finish, delay, cancel)
	c.active = h
	activeSearches.Inc()

	go c.run(runCtx, h)

	return h, nil
}

// run is the worker body: one search, start to finish.
func (c *Controller) run(ctx context.Context, h *Handle) {
	ctx, span := c.tracer.Start(ctx, "search.Controller.run",
		trace.WithAttributes(
			attribute.String("search_id", h.id.String()),
			attribute.String("start", h.start.String()),
			attribute.String("finish", h.finish.String()),
			attribute.Int64("delay_ms", h.delay.Milliseconds()),
		),
	)
	defer span.End()

	logger := c.logger.With(slog.String("search_id", h.id.String()))
	logger.Info("search started",
		slog.String("start", h.start.String()),
		slog.String("finish", h.finish.String()),
		slog.Duration("delay", h.delay),
	)

	began := time.Now()
	out, err := c.execute(ctx, h, span)
	out.Elapsed = time.Since(began)
	status := classify(out, err)

	searchesTotal.WithLabelValues(status.String()).Inc()
	searchDuration.Observe(out.Elapsed.Seconds())
	searchRounds.Observe(float64(out.Rounds))
	span.SetAttributes(
		attribute.String("status", status.String()),
		attribute.Int("rounds", out.Rounds),
		attribute.Int("visited", out.Visited),
	)

	switch status {
	case Reached:
		pathLength.Observe(float64(out.Distance))
		span.SetStatus(codes.Ok, "route found")
		logger.Info("search reached finish",
			slog.Int("distance", out.Distance),
			slog.Int("rounds", out.Rounds),
			slog.Duration("elapsed", out.Elapsed),
		)
	case Unreachable:
		span.SetStatus(codes.Ok, "finish unreachable")
		logger.Info("search found no route",
			slog.Int("rounds", out.Rounds),
			slog.Int("visited", out.Visited),
		)
	case Cancelled:
		span.SetStatus(codes.Error, "cancelled")
		logger.Info("search cancelled", slog.Int("rounds", out.Rounds))
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		logger.Error("search failed", slog.Any("error", err))
	}

	c.mu.Lock()
	if c.active == h {
		c.active = nil
	}
	c.mu.Unlock()
	activeSearches.Dec()

	h.complete(out, status, err)
}

// execute runs the wave then, on success, the backtrack.
func (c *Controller) execute(ctx context.Context, h *Handle, span trace.Span) (Outcome, error) {
	var out Outcome
	res, err := wave.Run(c.grid, h.start, h.finish,
		wave.WithContext(ctx),
		wave.WithOnRound(func(round, dist, queued int) error {
			c.notify()
			return c.sleep(ctx, h.delay)
		}),
	)
	if res != nil {
		out.Reached = res.Reached
		out.Distance = res.Distance
		out.Rounds = res.Rounds
		out.Visited = res.Visited
	}
	if err != nil || !res.Reached {
		return out, err
	}
	c.notify()
	span.AddEvent("finish_reached", trace.WithAttributes(attribute.Int("distance", res.Distance)))
	if err := c.sleep(ctx, h.delay); err != nil {
		return out, err
	}

	reached, _ := res.Finish()
	trail, err := backtrack.Reconstruct(c.grid, reached,
		backtrack.WithContext(ctx),
		backtrack.WithOnStep(func(int, grid.Cell, int) error {
			c.notify()
			return c.sleep(ctx, h.delay/3)
		}),
	)
	if trail != nil {
		out.Path = append([]grid.Cell(nil), trail.Cells...)
	}
	return out, err
}

func (c *Controller) notify() {
	if c.observer != nil {
		c.observer.StateChanged()
	}
}

func classify(out Outcome, err error) Status {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Cancelled
	case err != nil:
		return Failed
	case out.Reached:
		return Reached
	default:
		return Unreachable
	}
}
