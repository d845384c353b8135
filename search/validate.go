package search

import (
	"fmt"

	"github.com/katalvlaran/wavepath/grid"
)

// Validate checks that g is searchable from start to finish: both cells on
// the grid, start holding the only Start block and finish the only Finish.
// Every failure wraps ErrInvalidGrid.
func Validate(g *grid.Grid, start, finish grid.Cell) error {
	if g == nil {
		return ErrGridNil
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: start %v", ErrCellOutOfBounds, start)
	}
	if !g.InBounds(finish) {
		return fmt.Errorf("%w: finish %v", ErrCellOutOfBounds, finish)
	}
	if t, _ := g.Block(start); t != grid.Start {
		return fmt.Errorf("%w: %v is %v", ErrStartMismatch, start, t)
	}
	if t, _ := g.Block(finish); t != grid.Finish {
		return fmt.Errorf("%w: %v is %v", ErrFinishMismatch, finish, t)
	}
	if s, f := g.Count(grid.Start), g.Count(grid.Finish); s != 1 || f != 1 {
		return fmt.Errorf("%w: found %d Start, %d Finish", ErrDuplicateEndpoint, s, f)
	}
	return nil
}
