// Package backtrack provides the backward half of the wave pathfinder.
//
// After wave.Run has tagged cells with their distance from the start, the
// route is re-derived from that scalar field alone: from the finish, keep
// stepping to the neighbour with the smallest distance until the neighbour
// is the Start. No predecessor map is needed because the forward wave
// assigns distances in strictly increasing rounds and never revisits a
// cell, so every reached cell at distance d > 1 touches one at d-1.
//
// Probe order is right, left, down, up; ties go to the first neighbour seen.
// Only Start (as 0) and cells carrying a positive distance count; an
// unvisited Empty cell is never mistaken for a close one.
package backtrack
