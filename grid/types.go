// Package grid defines core types, options, and sentinel errors
// for the grid state of github.com/katalvlaran/wavepath.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a grid size below 1.
	ErrInvalidSize = errors.New("grid: size must be at least 1")
	// ErrUnknownBlockType indicates an unrecognised block type name.
	ErrUnknownBlockType = errors.New("grid: unknown block type")
	// ErrInvalidCell indicates a malformed "x,y" coordinate string.
	ErrInvalidCell = errors.New("grid: invalid cell coordinate")
)

// BlockType classifies a single cell.
type BlockType uint8

const (
	// Empty is a free cell the wave may enter.
	Empty BlockType = iota
	// Start is the cell the wave expands from.
	Start
	// Finish is the cell the wave is looking for.
	Finish
	// Wall blocks both the wave and the backtrack.
	Wall
	// Frontier is a cell already reached by the wave.
	Frontier
	// ReversePath is a cell on the reconstructed route.
	ReversePath
)

var blockNames = [...]string{
	Empty:       "empty",
	Start:       "start",
	Finish:      "finish",
	Wall:        "wall",
	Frontier:    "frontier",
	ReversePath: "reverse_path",
}

// String returns the lower-case name of t.
func (t BlockType) String() string {
	if int(t) < len(blockNames) {
		return blockNames[t]
	}
	return "blocktype(" + strconv.Itoa(int(t)) + ")"
}

// ParseBlockType converts a name produced by String back into a BlockType.
func ParseBlockType(s string) (BlockType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range blockNames {
		if n == name {
			return BlockType(i), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownBlockType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t BlockType) MarshalText() ([]byte, error) {
	if int(t) >= len(blockNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBlockType, t)
	}
	return []byte(blockNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *BlockType) UnmarshalText(text []byte) error {
	v, err := ParseBlockType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Cell is an (X, Y) coordinate on the grid. X grows to the right, Y grows down.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Offset returns the cell displaced by (dx, dy).
func (c Cell) Offset(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String formats c as "x,y".
func (c Cell) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// ParseCell parses an "x,y" string. Whitespace around either number is ignored.
func ParseCell(s string) (Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCell, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q: %v", ErrInvalidCell, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q: %v", ErrInvalidCell, s, err)
	}
	return Cell{X: x, Y: y}, nil
}

// Observer is told that grid state changed and should be re-read.
// The callback carries no payload; implementations must not block for long,
// and must marshal any rendering onto their own goroutine.
type Observer interface {
	StateChanged()
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func()

// StateChanged calls f.
func (f ObserverFunc) StateChanged() { f() }

// Option configures a Grid at construction.
type Option func(*Grid)

// WithObserver registers o to be notified after every editing mutator
// (SetBlock, PlaceWall, ResetPath, ResetWalls, ResetAll).
func WithObserver(o Observer) Option {
	return func(g *Grid) {
		if o != nil {
			g.observer = o
		}
	}
}
