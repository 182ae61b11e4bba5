package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/TheoAcker12/weekly-scheduler/internal/bootstrap"
	"github.com/TheoAcker12/weekly-scheduler/internal/config"
	"github.com/TheoAcker12/weekly-scheduler/internal/server"
	"github.com/TheoAcker12/weekly-scheduler/internal/store"
	"github.com/TheoAcker12/weekly-scheduler/internal/weekly"
)

var configFile string

func main() {
	var debugMode bool
	rootCmd := &cobra.Command{
		Use:           "weekly-server",
		Short:         "Weekly schedule HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	app := bootstrap.New(bootstrap.WithShutdownTimeout(cfg.Server.ShutdownTimeout()))

	source, closeSource, err := store.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("store.New > %w", err)
	}
	app.AddShutdownHook("data source", func(ctx context.Context) error {
		return closeSource()
	})

	service := weekly.NewService(source, weekly.DefaultDisplayOptions(cfg.View))
	srv := server.New(cfg.Server, service)
	app.AddShutdownHook("http server", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("starting server",
			"addr", srv.Addr,
			"datasource", cfg.DataSource.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}
