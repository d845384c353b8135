package grid

import (
	"errors"
	"fmt"
)

// ErrNonSquare indicates rows passed to FromRows do not form a square.
var ErrNonSquare = errors.New("grid: rows must form a square")

// ErrUnknownGlyph indicates a character FromRows cannot map to a BlockType.
var ErrUnknownGlyph = errors.New("grid: unknown glyph")

// FromRows builds a grid from text rows using the glyphs of String:
// '.' Empty, 'S' Start, 'F' Finish, '#' Wall, 'o' Frontier, '*' ReversePath.
// Row y of the input becomes row y of the grid. Distances start unset.
// Returns ErrInvalidSize for no rows, ErrNonSquare for ragged or
// non-square input, ErrUnknownGlyph for any other character.
func FromRows(rows []string, opts ...Option) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidSize
	}
	for y, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, y, len(row), n)
		}
	}
	g, err := New(n, opts...)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x := 0; x < n; x++ {
			t, ok := glyphType(row[x])
			if !ok {
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrUnknownGlyph, row[x], x, y)
			}
			g.blocks[g.index(Cell{X: x, Y: y})] = t
		}
	}

	return g, nil
}

func glyphType(c byte) (BlockType, bool) {
	for t, gl := range glyphs {
		if gl == c {
			return BlockType(t), true
		}
	}
	return Empty, false
}
