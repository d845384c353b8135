package grid

// ResetPath clears the results of a previous search.
// Frontier cells become Empty with distance 0 and Finish cells drop the
// distance the wave recorded on them. ReversePath cells become Empty but keep
// their recorded distance; a later wave overwrites it when it re-enters the
// cell, and the backtrack ignores distances on Empty cells.
// Complexity: O(n²).
func (g *Grid) ResetPath() {
	g.mu.Lock()
	g.resetPathLocked()
	g.mu.Unlock()
	g.notify()
}

// ResetWalls clears search results and then every Wall.
// Start and Finish survive.
func (g *Grid) ResetWalls() {
	g.mu.Lock()
	g.resetPathLocked()
	g.deleteType(Wall, nil)
	g.mu.Unlock()
	g.notify()
}

// ResetAll replaces both arrays with fresh all-Empty, all-zero storage,
// leaving the grid indistinguishable from one returned by New.
func (g *Grid) ResetAll() {
	g.mu.Lock()
	g.blocks, g.distances = g.alloc()
	g.mu.Unlock()
	g.notify()
}

func (g *Grid) resetPathLocked() {
	g.deleteType(Frontier, func(i int) { g.distances[i] = 0 })
	g.deleteType(ReversePath, nil)
	for i, b := range g.blocks {
		if b == Finish {
			g.distances[i] = 0
		}
	}
}

// deleteType turns every cell of type t into Empty and runs onHit for it.
// Caller holds g.mu.
func (g *Grid) deleteType(t BlockType, onHit func(i int)) {
	for i, b := range g.blocks {
		if b != t {
			continue
		}
		g.blocks[i] = Empty
		if onHit != nil {
			onHit(i)
		}
	}
}
