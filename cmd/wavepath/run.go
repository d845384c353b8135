package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wavepath/grid"
	"github.com/katalvlaran/wavepath/search"
)

func newRunCmd() *cobra.Command {
	var (
		size   int
		start  string
		finish string
		delay  time.Duration
		walls  []string
		frames bool
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run one search and print the grid",
		Long: `Run a single search in the terminal and print the highlighted route.

Examples:
  wavepath run
  wavepath run --size 8 --finish 7,7 --wall 3,0 --wall 3,1 --wall 3,2
  wavepath run --delay 50ms --frames`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("size") {
				cfg.GridSize = size
			}
			if flags.Changed("start") {
				if cfg.Start, err = grid.ParseCell(start); err != nil {
					return fmt.Errorf("--start: %w", err)
				}
			}
			if flags.Changed("finish") {
				if cfg.Finish, err = grid.ParseCell(finish); err != nil {
					return fmt.Errorf("--finish: %w", err)
				}
			}
			if flags.Changed("delay") {
				cfg.Delay = delay
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			logger, err := newLogger(cfg, "cli", cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var p *printer
			var observer grid.Observer
			if frames {
				p = &printer{w: out}
				observer = p
			}
			ctrl, err := newSetup(cfg, nil, logger, search.WithObserver(observer))
			if err != nil {
				return err
			}
			if p != nil {
				p.g = ctrl.Grid()
			}

			for _, w := range walls {
				c, err := grid.ParseCell(w)
				if err != nil {
					return fmt.Errorf("--wall: %w", err)
				}
				placed, err := ctrl.PlaceWall(c.X, c.Y)
				if err != nil {
					return err
				}
				if !placed {
					logger.Warn("wall skipped", "cell", c.String())
				}
			}

			h, err := ctrl.Start(cmd.Context(), cfg.Start, cfg.Finish, cfg.Delay)
			if err != nil {
				return err
			}
			outcome, err := h.Wait()
			if err != nil {
				return err
			}
			return report(out, ctrl.Grid(), h, outcome)
		},
	}

	runCmd.Flags().IntVar(&size, "size", 16, "Side length of the grid")
	runCmd.Flags().StringVar(&start, "start", "0,0", "Start cell as x,y")
	runCmd.Flags().StringVar(&finish, "finish", "15,15", "Finish cell as x,y")
	runCmd.Flags().DurationVar(&delay, "delay", 0, "Pause after each wave round (reconstruction steps wait a third)")
	runCmd.Flags().StringArrayVar(&walls, "wall", nil, "Wall cell as x,y (repeatable)")
	runCmd.Flags().BoolVar(&frames, "frames", false, "Print the grid after every search step")

	return runCmd
}

// printer is a grid.Observer writing one frame per notification.
type printer struct {
	mu    sync.Mutex
	w     io.Writer
	g     *grid.Grid
	frame int
}

func (p *printer) StateChanged() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frame++
	fmt.Fprintf(p.w, "-- frame %d\n%s", p.frame, p.g.String())
}

// report prints the final grid and a one-line summary.
func report(w io.Writer, g *grid.Grid, h *search.Handle, out search.Outcome) error {
	if _, err := fmt.Fprint(w, g.String()); err != nil {
		return err
	}
	var err error
	if out.Reached {
		_, err = fmt.Fprintf(w, "reached %v from %v: distance %d, %d rounds, %d cells visited, route of %d cells (%v)\n",
			h.Finish(), h.Start(), out.Distance, out.Rounds, out.Visited, len(out.Path), out.Elapsed.Round(time.Millisecond))
	} else {
		_, err = fmt.Fprintf(w, "%v unreachable from %v after %d rounds, %d cells visited\n",
			h.Finish(), h.Start(), out.Rounds, out.Visited)
	}
	return err
}
