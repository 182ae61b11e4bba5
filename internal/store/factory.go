package store

import (
	"context"
	"fmt"

	"github.com/TheoAcker12/weekly-scheduler/internal/config"
	"github.com/TheoAcker12/weekly-scheduler/internal/database"
)

// New returns the Source selected by cfg.DataSource.Driver.
// The returned close function releases the source's connections.
func New(ctx context.Context, cfg *config.Config) (Source, func() error, error) {
	switch cfg.DataSource.Driver {
	case config.DataSourceDatabase:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open > %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping %s database: %w", cfg.Database.Driver, err)
		}
		return NewDBRepository(db), db.Close, nil
	case config.DataSourceYAML:
		return NewYAMLRepository(cfg.YAML.CategoriesFile, cfg.YAML.SchedulesFile), func() error { return nil }, nil
	case config.DataSourceAPI:
		repo := NewAPIRepository(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout(), cfg.API.MaxRetryAttempts)
		return repo, repo.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w %q", ErrUnsupportedDataSource, cfg.DataSource.Driver)
	}
}
