package search

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/wavepath/grid"
)

// Handle owns one running search. It is returned by Controller.Start and
// must be cancelled or waited on before the grid is edited again.
type Handle struct {
	id     uuid.UUID
	start  grid.Cell
	finish grid.Cell
	delay  time.Duration
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.RWMutex // guards status, outcome, err
	status  Status
	outcome Outcome
	err     error
}

func newHandle(start, finish grid.Cell, delay time.Duration, cancel context.CancelFunc) *Handle {
	return &Handle{
		id:     uuid.New(),
		start:  start,
		finish: finish,
		delay:  delay,
		cancel: cancel,
		done:   make(chan struct{}),
		status: Running,
	}
}

// ID uniquely identifies the search.
func (h *Handle) ID() uuid.UUID { return h.id }

// Start returns the start cell the search was launched with.
func (h *Handle) Start() grid.Cell { return h.start }

// Finish returns the finish cell the search was launched with.
func (h *Handle) Finish() grid.Cell { return h.finish }

// Delay returns the per-round pacing delay.
func (h *Handle) Delay() time.Duration { return h.delay }

// Done is closed once the worker has stopped and released the grid.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Cancel asks the worker to stop. It does not wait; use Wait or Done.
func (h *Handle) Cancel() { h.cancel() }

// Wait blocks until the search ends and returns its outcome.
// The error is nil for Reached and Unreachable searches.
func (h *Handle) Wait() (Outcome, error) {
	<-h.done
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.outcome, h.err
}

// Status reports the current lifecycle state without blocking.
func (h *Handle) Status() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// Result returns the outcome and error recorded so far; both are zero
// while the search is Running.
func (h *Handle) Result() (Outcome, Status, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.outcome, h.status, h.err
}

// complete records the result and closes Done. Called once by the worker.
func (h *Handle) complete(out Outcome, status Status, err error) {
	h.mu.Lock()
	h.outcome, h.status, h.err = out, status, err
	h.mu.Unlock()
	h.cancel()
	close(h.done)
}
