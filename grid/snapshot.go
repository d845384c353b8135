package grid

import "strings"

// Snapshot is a point-in-time copy of a Grid, safe to read without locks.
type Snapshot struct {
	Size      int         `json:"size"`
	Blocks    []BlockType `json:"blocks"`
	Distances []int       `json:"distances"`
}

// Snapshot copies the current state of g.
// Complexity: O(n²) time and memory.
func (g *Grid) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Snapshot{
		Size:      g.size,
		Blocks:    make([]BlockType, len(g.blocks)),
		Distances: make([]int, len(g.distances)),
	}
	copy(s.Blocks, g.blocks)
	copy(s.Distances, g.distances)

	return s
}

// At returns the block type and distance at (x, y); ok is false off-grid.
func (s Snapshot) At(x, y int) (t BlockType, dist int, ok bool) {
	if x < 0 || y < 0 || x >= s.Size || y >= s.Size {
		return Empty, 0, false
	}
	i := y*s.Size + x
	return s.Blocks[i], s.Distances[i], true
}

var glyphs = [...]byte{
	Empty:       '.',
	Start:       'S',
	Finish:      'F',
	Wall:        '#',
	Frontier:    'o',
	ReversePath: '*',
}

// Glyph returns the single-character symbol String uses for t.
func Glyph(t BlockType) byte {
	if int(t) < len(glyphs) {
		return glyphs[t]
	}
	return '?'
}

// String renders the snapshot one row per line, Y growing downwards.
func (s Snapshot) String() string {
	var b strings.Builder
	b.Grow(s.Size * (s.Size + 1))
	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			b.WriteByte(Glyph(s.Blocks[y*s.Size+x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the current grid; see Snapshot.String.
func (g *Grid) String() string {
	return g.Snapshot().String()
}
