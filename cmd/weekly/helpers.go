package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/TheoAcker12/weekly-scheduler/internal/config"
	"github.com/TheoAcker12/weekly-scheduler/internal/store"
	"github.com/TheoAcker12/weekly-scheduler/internal/weekly"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newService loads the configuration and opens the configured data source.
// The returned function closes the data source.
func newService(ctx context.Context) (*config.Config, *weekly.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	source, closeSource, err := store.New(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("store.New > %w", err)
	}
	closeFn := func() {
		if err := closeSource(); err != nil {
			slog.Default().Warn("failed to close the data source", "error", err)
		}
	}
	return cfg, weekly.NewService(source, weekly.DefaultDisplayOptions(cfg.View)), closeFn, nil
}

// suggest returns the candidate closest to value, ignoring case. Nothing is
// suggested when every candidate needs more edits than half of value's length.
func suggest(value string, candidates []string) (string, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	best, bestDistance := "", -1
	for _, candidate := range candidates {
		d := levenshtein.ComputeDistance(value, strings.ToLower(candidate))
		if bestDistance == -1 || d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	if bestDistance == -1 || bestDistance > max(1, len(value)/2) {
		return "", false
	}
	return best, true
}
