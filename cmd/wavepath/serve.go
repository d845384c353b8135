package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wavepath/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the grid and its searches over HTTP",
		Long: `Serve a grid over a JSON API under /api/v1, with a server-sent event
stream at /api/v1/events and Prometheus metrics at /metrics.

Examples:
  wavepath serve
  wavepath serve --addr 127.0.0.1:9000
  WAVEPATH_GRID_SIZE=32 WAVEPATH_FINISH=31,31 wavepath serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.HTTPAddr = addr
			}
			gin.SetMode(cfg.GinMode)

			logger, err := newLogger(cfg, "server", cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			events := server.NewBroadcaster()
			ctrl, err := newSetup(cfg, events, logger)
			if err != nil {
				return err
			}
			api := server.NewGridController(ctrl, events, cfg.Delay, logger)

			router := server.NewRouter(server.Config{
				Addr:        cfg.HTTPAddr,
				BaseURL:     "/api",
				Controllers: []server.Controller{api},
				Logger:      logger,
				OnShutdown:  api.Shutdown,
			})
			return router.Run(cmd.Context())
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	return serveCmd
}
