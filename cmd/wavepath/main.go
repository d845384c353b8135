// Command wavepath runs wave-propagation path searches on a square grid,
// either once in the terminal or behind an HTTP API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wavepath",
		Short: "Breadth-first wave path finding on a grid",
		Long: `wavepath floods a square grid from a Start cell with a level-by-level
breadth-first wave, then walks the distance field back from the Finish to
highlight a shortest route.

Settings come from flags, WAVEPATH_* environment variables or a .env file.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("env", ".env", "Optional .env file with WAVEPATH_* settings")

	root.AddCommand(newRunCmd(), newServeCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
