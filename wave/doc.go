// Package wave provides the forward half of the wave pathfinder: a
// level-synchronous breadth-first search over a grid.Grid.
//
// What
//
//   - Expand from a start cell one round at a time; every cell of round k
//     sits at distance k from the start.
//   - Probe neighbours in the fixed order down, right, up, left.
//   - Empty neighbours become Frontier with the round's distance; walls,
//     the start and already reached cells are skipped.
//   - The first Finish neighbour ends the search at once, mid-round.
//
// Why stopping mid-round is safe
//
//	All cells queued for one round are equidistant from the start, so the
//	first touch of the finish already carries the shortest distance. Only
//	tie exploration is lost, and only one route is ever reconstructed.
//
// Hooks
//
//   - WithOnRound(fn):   after each round that did not reach the finish;
//     returning an error aborts the run. Callers notify observers and pace
//     animations here.
//   - WithOnEnqueue(fn): each time a cell becomes Frontier.
//   - WithContext(ctx):  cancellation, checked per dequeued cell.
//   - WithMaxRounds(n):  stop after n rounds (n > 0).
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrStartOutOfBounds  if the start cell is off the grid.
//   - ErrOptionViolation   for invalid options.
//   - Wrapped OnRound errors and context errors.
//
// Complexity: O(n²) time and memory on an n×n grid.
package wave
