// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/wyrmgate/wyrmgate/internal/config"
	"github.com/wyrmgate/wyrmgate/internal/logging"
	"github.com/wyrmgate/wyrmgate/internal/observability"
	"github.com/wyrmgate/wyrmgate/internal/world"
	"github.com/wyrmgate/wyrmgate/internal/xdg"
	"github.com/wyrmgate/wyrmgate/pkg/errutil"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the world server",
		Long: `Start the world server: load the partition definitions, start the
heartbeat scheduler, and serve observability endpoints until interrupted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cmd)
		},
	}

	defaults := config.Default()
	cmd.Flags().String("world-file", defaults.WorldFile, "path to the YAML world definition file")
	cmd.Flags().Duration("tick-period", defaults.TickPeriod, "heartbeat period")
	cmd.Flags().String("metrics-addr", defaults.MetricsAddr, "metrics/health HTTP address (empty = disabled)")
	cmd.Flags().String("log-format", defaults.LogFormat, "log format (json or text)")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command) error {
	cfgPath := configFile
	if cfgPath == "" {
		cfgPath = xdg.DefaultConfigFile()
	}

	cfg, err := config.Load(cfgPath, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.WorldFile == "" {
		return oops.Code(config.CodeInvalid).Errorf("world-file is required")
	}

	logging.SetDefault("wyrmgate", cmd.Root().Version, cfg.LogFormat)

	slog.Info("starting world server",
		"world_file", cfg.WorldFile,
		"tick_period", cfg.TickPeriod,
		"log_format", cfg.LogFormat,
	)

	defs, err := world.LoadDefinitions(cfg.WorldFile)
	if err != nil {
		return err
	}

	var ready atomic.Bool
	obs := observability.NewServer(cfg.MetricsAddr, ready.Load)
	metrics := world.NewMetrics(obs.Registry())

	mgr := world.NewManager(world.ManagerConfig{
		TickPeriod: cfg.TickPeriod,
		Identity:   cfg.Identity,
		Metrics:    metrics,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := mgr.Initialize(ctx, defs, world.ClassFactory(world.BuiltinClasses())); err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		obsErrChan, obsErr := obs.Start()
		if obsErr != nil {
			mgr.Shutdown()
			return obsErr
		}
		// Monitor observability server errors - cancel context on error
		go monitorServerErrors(ctx, cancel, obsErrChan, "observability")
	}
	ready.Store(true)

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	cmd.Println("World server started")
	slog.Info("world server ready", "partitions", mgr.Count())

	select {
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig.String())
	case <-ctx.Done():
		slog.Info("context cancelled, shutting down")
	}

	slog.Info("shutting down...")

	mgr.Shutdown()

	if cfg.MetricsAddr != "" {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if stopErr := obs.Stop(shutdownCtx); stopErr != nil {
			errutil.LogError(slog.Default(), "error stopping observability server", stopErr)
		}
	}

	slog.Info("shutdown complete")
	return nil
}

// monitorServerErrors monitors a server's error channel and cancels the
// context on error so a failed server triggers graceful shutdown of the whole
// process. It exits when an error arrives, the channel closes, or the context
// is cancelled.
func monitorServerErrors(ctx context.Context, cancel context.CancelFunc, errCh <-chan error, serverName string) {
	select {
	case err, ok := <-errCh:
		if !ok {
			// Channel closed, server stopped gracefully
			return
		}
		if err != nil {
			slog.Error("server error, triggering shutdown",
				"server", serverName,
				"error", err,
			)
			cancel()
		}
	case <-ctx.Done():
	}
}
