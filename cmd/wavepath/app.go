package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wavepath/config"
	"github.com/katalvlaran/wavepath/grid"
	"github.com/katalvlaran/wavepath/search"
)

// loadConfig reads the .env file named by --env and the environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, err := cmd.Flags().GetString("env")
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(envFile)
}

// newSetup builds a grid holding Start and Finish, wrapped in a controller.
// observer, if not nil, receives both grid edits and search steps.
func newSetup(cfg config.Config, observer grid.Observer, logger *slog.Logger, opts ...search.Option) (*search.Controller, error) {
	var gridOpts []grid.Option
	if observer != nil {
		gridOpts = append(gridOpts, grid.WithObserver(observer))
		opts = append(opts, search.WithObserver(observer))
	}
	g, err := grid.New(cfg.GridSize, gridOpts...)
	if err != nil {
		return nil, err
	}
	ctrl, err := search.NewController(g, append(opts, search.WithLogger(logger))...)
	if err != nil {
		return nil, err
	}
	if err := ctrl.SetBlock(cfg.Start.X, cfg.Start.Y, grid.Start); err != nil {
		return nil, err
	}
	if err := ctrl.SetBlock(cfg.Finish.X, cfg.Finish.Y, grid.Finish); err != nil {
		return nil, err
	}
	return ctrl, nil
}

func newLogger(cfg config.Config, name string, w io.Writer) (*slog.Logger, error) {
	logger, err := config.NewLogger(name, cfg.LogLevel, w)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return logger, nil
}
