// Package search provides the Controller that animates a wave search.
//
// What
//
//   - Start validates the grid, clears old marks and runs wave.Run followed
//     by backtrack.Reconstruct on one background goroutine.
//   - The step observer is called after each BFS round, once when the
//     finish is reached, and after each reconstruction step.
//   - Rounds are paced by the caller's delay, reconstruction steps by delay/3.
//   - The returned Handle cancels, waits and reports status and Outcome.
//
// Ownership
//
//	While a Handle is live the grid belongs to the search: SetBlock,
//	PlaceWall, ResetPath, ResetWalls, ResetAll and a second Start all fail
//	with ErrSearchInProgress. Controller.Cancel cancels and joins the worker,
//	after which edits succeed again. Readers may call Grid().Snapshot() at
//	any time.
//
// Observability
//
//	Lifecycle events go to a log/slog logger, counters and histograms to the
//	default Prometheus registry (wavepath_* metrics), and every run opens an
//	OpenTelemetry span named "search.Controller.run".
//
// Errors
//
//   - ErrSearchInProgress: the grid is owned by a running search.
//   - ErrInvalidGrid and its children ErrCellOutOfBounds, ErrStartMismatch,
//     ErrFinishMismatch, ErrDuplicateEndpoint: the grid is not searchable.
//   - ErrNegativeDelay: delay < 0.
//   - Handle.Wait returns context errors for cancelled searches.
package search
