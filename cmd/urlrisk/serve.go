package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/haukened/urlrisk/internal/urlrisk/common/log"
	"github.com/haukened/urlrisk/internal/urlrisk/gateways/transport"
)

const defaultShutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the evaluation API over HTTP",
		Long: `Serve starts an HTTP server exposing:

  GET  /healthz
  GET  /v1/evaluate?url=<url>
  POST /v1/evaluate   {"url": "<url>"}

The listen port comes from URLRISK_SERVER_PORT unless --addr is given.`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().String("addr", "", "Listen address (host:port), overrides the configured port")

	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	app, err := loadApplication(cmd)
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = fmt.Sprintf(":%d", app.config.Server.Port)
	}
	tr, err := transport.NewTransport(transport.TransportHTTP, addr, log.GetLogger())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, tr)
}

// Run starts the transport and blocks until ctx is cancelled.
func (app *Application) Run(ctx context.Context, tr transport.ServerTransport) error {
	if err := tr.Start(ctx, app.evaluator); err != nil {
		return fmt.Errorf("failed to start HTTP transport: %w", err)
	}

	log.Info(map[string]any{
		"address":   tr.Address(),
		"transport": "http",
		"version":   getVersion(),
	}, "urlrisk server started")

	<-ctx.Done()
	log.Info(nil, "Shutdown initiated")

	done := make(chan error, 1)
	go func() { done <- tr.Stop() }()

	select {
	case err := <-done:
		if err != nil {
			log.Warn(map[string]any{"error": err.Error()}, "Error during transport shutdown")
		}
		hits, misses, evictions := app.cache.Stats()
		log.Info(map[string]any{
			"cache_hits":      hits,
			"cache_misses":    misses,
			"cache_evictions": evictions,
			"cache_entries":   app.cache.Len(),
			"tld_probes":      app.tlds.Stats().Probes,
		}, "Graceful shutdown completed")
		return nil
	case <-time.After(defaultShutdownTimeout):
		log.Warn(map[string]any{"timeout": defaultShutdownTimeout.String()}, "Shutdown timeout exceeded")
		return fmt.Errorf("shutdown timeout")
	}
}
