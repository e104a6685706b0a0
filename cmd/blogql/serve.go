package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/nasdf/blogql"
	"github.com/nasdf/blogql/config"
	"github.com/nasdf/blogql/core"
	blogqlhttp "github.com/nasdf/blogql/http"
	"github.com/nasdf/blogql/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the GraphQL server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func init() {
	flags := serveCmd.Flags()
	flags.String("address", "localhost:8080", "Address to listen on.")
	flags.Bool("playground", true, "Serve the GraphQL playground at /.")
	flags.Bool("seed", true, "Load the demo users, posts, and comments on start.")
	flags.Bool("metrics", true, "Serve prometheus metrics at /metrics.")
}

func serve(ctx context.Context, cfg *config.Config) error {
	log, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	store := core.NewStore()
	if cfg.Store.Seed {
		if err := core.Seed(ctx, store); err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}
	}

	opts := []blogql.Option{blogql.WithLogger(log)}
	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts = append(opts, blogql.WithMetrics(metrics.NewCollector(reg)))
		gatherer = reg
	}

	db, err := blogql.New(store, opts...)
	if err != nil {
		return err
	}
	server := blogqlhttp.NewServer(cfg.Server, db, log, gatherer)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("address", cfg.Server.Address),
			zap.Bool("playground", cfg.Server.Playground))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		log.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	log.Info("server stopped")
	return nil
}
