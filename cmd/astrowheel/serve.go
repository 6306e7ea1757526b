package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cvasseur/astrowheel/internal/debug"
	"github.com/cvasseur/astrowheel/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chart renderer over HTTP",
	Long: "Starts an HTTP server with POST /render for chart datasets, GET /chart.svg\n" +
		"for the rendered wheel, and an SSE status stream at /status/stream.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Serve.Port = port
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	broadcaster := web.NewStatusBroadcaster()
	debug.SetOutput(io.MultiWriter(os.Stdout, web.BroadcastWriter(broadcaster)))

	composer, renderer := buildEngine(cfg)
	srv := web.NewServer(fmt.Sprintf(":%d", cfg.Serve.Port), broadcaster, composer, renderer, cfg)
	return srv.Run(ctx)
}
