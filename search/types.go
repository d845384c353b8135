package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wavepath/grid"
)

// Sentinel errors for controller operations.
var (
	// ErrGridNil is returned by NewController for a nil grid.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrSearchInProgress is returned when an edit or a second search is
	// attempted while a search owns the grid.
	ErrSearchInProgress = errors.New("search: search in progress")

	// ErrInvalidGrid is the parent of every validation failure below.
	ErrInvalidGrid = errors.New("search: grid is not searchable")

	// ErrCellOutOfBounds reports a start or finish off the grid.
	ErrCellOutOfBounds = fmt.Errorf("%w: cell out of bounds", ErrInvalidGrid)

	// ErrStartMismatch reports a start coordinate not holding a Start block.
	ErrStartMismatch = fmt.Errorf("%w: start cell is not a Start block", ErrInvalidGrid)

	// ErrFinishMismatch reports a finish coordinate not holding a Finish block.
	ErrFinishMismatch = fmt.Errorf("%w: finish cell is not a Finish block", ErrInvalidGrid)

	// ErrDuplicateEndpoint reports more than one Start or Finish block.
	ErrDuplicateEndpoint = fmt.Errorf("%w: Start and Finish must be unique", ErrInvalidGrid)

	// ErrNegativeDelay reports a negative pacing delay.
	ErrNegativeDelay = errors.New("search: delay cannot be negative")
)

// Status is the lifecycle state of a Handle.
type Status uint8

const (
	// Running means the worker has not finished yet.
	Running Status = iota
	// Reached means a route was found and highlighted.
	Reached
	// Unreachable means the wave exhausted the grid without touching the finish.
	Unreachable
	// Cancelled means the search was cancelled before completing.
	Cancelled
	// Failed means the search stopped on an unexpected error.
	Failed
)

var statusNames = [...]string{"running", "reached", "unreachable", "cancelled", "failed"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	for i, n := range statusNames {
		if n == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("search: unknown status %q", text)
}

// Outcome summarises a finished search.
//   - Path runs from the finish back towards the start, excluding both
//     endpoints; it is empty when they are neighbours or nothing was found.
//   - Distance is the finish distance, 0 when unreachable.
type Outcome struct {
	Reached  bool          `json:"reached"`
	Distance int           `json:"distance"`
	Rounds   int           `json:"rounds"`
	Visited  int           `json:"visited"`
	Path     []grid.Cell   `json:"path"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Sleeper pauses for d or until ctx is done, returning ctx.Err() in the latter case.
type Sleeper func(ctx context.Context, d time.Duration) error

// Option configures a Controller.
type Option func(*Controller)

// WithObserver registers the step observer called after each BFS round,
// once when the finish is reached, and after each reconstruction step.
func WithObserver(o grid.Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithLogger sets the structured logger for search lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets the tracer used for the per-search span.
func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithSleeper replaces the pacing primitive, e.g. to run instantly in tests.
func WithSleeper(s Sleeper) Option {
	return func(c *Controller) {
		if s != nil {
			c.sleep = s
		}
	}
}

// sleepContext is the default Sleeper.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
