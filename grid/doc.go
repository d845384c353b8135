// Package grid holds the mutable state a wave search runs over: a fixed-size
// square board of block types with a parallel array of recorded distances.
//
// What:
//
//   - Grid stores, per cell, a BlockType (Empty, Start, Finish, Wall,
//     Frontier, ReversePath) and an integer distance (0 = unset).
//   - Bounded mutators (SetBlock, PlaceWall) and bulk resets
//     (ResetPath, ResetWalls, ResetAll) used by editing collaborators.
//   - Search-side writers (MarkFrontier, SetDistance, MarkReversePath) used
//     by the wave and backtrack packages.
//   - Snapshot and String for renderers that only read state.
//
// Why:
//
//   - One owner for the board lets the search controller decide when the
//     grid is editable and when it is being searched.
//   - Out-of-bounds coordinates are "blocked", never an error, so neighbour
//     probing needs no edge special-cases beyond InBounds.
//
// Concurrency:
//
//	All methods are safe for concurrent use; a sync.RWMutex guards both
//	arrays. Observer notifications are delivered after the lock is released.
//
// Complexity:
//
//   - Point reads and writes: O(1).
//   - ResetPath, ResetWalls, Count, Locate, Snapshot: O(n²).
//
// Errors:
//
//   - ErrInvalidSize: New called with a size below 1.
//   - ErrUnknownBlockType: ParseBlockType given an unknown name.
//   - ErrInvalidCell: ParseCell given malformed "x,y" text.
package grid
