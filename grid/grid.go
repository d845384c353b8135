package grid

import "sync"

// Grid is a fixed-size square board. blocks[i] and distances[i] describe the
// cell at row-major index i = y*size + x.
type Grid struct {
	mu        sync.RWMutex // guards blocks and distances
	size      int
	blocks    []BlockType
	distances []int
	observer  Observer
}

// New builds an all-Empty grid of size×size cells.
// Returns ErrInvalidSize if size < 1.
// Complexity: O(size²) time and memory.
func New(size int, opts ...Option) (*Grid, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}
	g := &Grid{size: size}
	for _, opt := range opts {
		opt(g)
	}
	g.blocks, g.distances = g.alloc()

	return g, nil
}

func (g *Grid) alloc() ([]BlockType, []int) {
	n := g.size * g.size
	return make([]BlockType, n), make([]int, n)
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether c lies on the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// index maps c to its row-major position. Caller checks bounds.
func (g *Grid) index(c Cell) int {
	return c.Y*g.size + c.X
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx % g.size, Y: idx / g.size}
}

// Block returns the type of c; ok is false when c is off the grid.
func (g *Grid) Block(c Cell) (t BlockType, ok bool) {
	if !g.InBounds(c) {
		return Empty, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.blocks[g.index(c)], true
}

// Distance returns the recorded distance of c (0 = unset); ok is false
// when c is off the grid.
func (g *Grid) Distance(c Cell) (d int, ok bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.distances[g.index(c)], true
}

// SetBlock overwrites the type at (x, y). Off-grid coordinates are ignored.
// No check is made that Start and Finish stay unique.
func (g *Grid) SetBlock(x, y int, t BlockType) {
	c := Cell{X: x, Y: y}
	if !g.InBounds(c) {
		return
	}
	g.mu.Lock()
	g.blocks[g.index(c)] = t
	g.mu.Unlock()
	g.notify()
}

// PlaceWall turns an Empty cell into a Wall and reports whether it did.
// Any other cell, including off-grid ones, is left alone.
func (g *Grid) PlaceWall(x, y int) bool {
	c := Cell{X: x, Y: y}
	if !g.InBounds(c) {
		return false
	}
	g.mu.Lock()
	i := g.index(c)
	placed := g.blocks[i] == Empty
	if placed {
		g.blocks[i] = Wall
	}
	g.mu.Unlock()
	if placed {
		g.notify()
	}

	return placed
}

// MarkFrontier claims an Empty cell for the wave at distance dist.
// It returns false, changing nothing, for any other cell.
// Search writers do not notify; the caller signals once per batch.
func (g *Grid) MarkFrontier(c Cell, dist int) bool {
	if !g.InBounds(c) {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.index(c)
	if g.blocks[i] != Empty {
		return false
	}
	g.blocks[i] = Frontier
	g.distances[i] = dist

	return true
}

// SetDistance records dist on c without touching its type.
func (g *Grid) SetDistance(c Cell, dist int) {
	if !g.InBounds(c) {
		return
	}
	g.mu.Lock()
	g.distances[g.index(c)] = dist
	g.mu.Unlock()
}

// MarkReversePath highlights c as part of the reconstructed route.
// Start, Finish and Wall cells are never overwritten.
func (g *Grid) MarkReversePath(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.index(c)
	switch g.blocks[i] {
	case Start, Finish, Wall:
		return false
	}
	g.blocks[i] = ReversePath

	return true
}

// Count returns how many cells currently have type t.
func (g *Grid) Count(t BlockType) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, b := range g.blocks {
		if b == t {
			n++
		}
	}
	return n
}

// Locate returns every cell of type t in row-major order.
func (g *Grid) Locate(t BlockType) []Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var cells []Cell
	for i, b := range g.blocks {
		if b == t {
			cells = append(cells, g.Coordinate(i))
		}
	}
	return cells
}

// notify tells the observer, if any, that state changed.
// Must be called without g.mu held. The observer is fixed at construction.
func (g *Grid) notify() {
	if g.observer != nil {
		g.observer.StateChanged()
	}
}
