// Package store loads categories and schedules from the configured data source.
package store

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
)

//go:generate mockgen -source=store.go -destination=../mocks/store/mock_store.go -package=mock_store

// ErrScheduleNotFound is returned when a schedule id does not exist.
var ErrScheduleNotFound = errors.New("schedule not found")

// ErrFieldNotFound is returned when a field id does not exist.
var ErrFieldNotFound = errors.New("field not found")

// ErrUnsupportedDataSource is returned by New for an unknown datasource driver.
var ErrUnsupportedDataSource = errors.New("unsupported data source")

// CategoryRepository returns every category with its fields in display order.
type CategoryRepository interface {
	FindCategories(ctx context.Context) ([]schedule.Category, error)
}

// ScheduleRepository returns every schedule ordered by item order.
type ScheduleRepository interface {
	FindSchedules(ctx context.Context) ([]schedule.ScheduleRecord, error)
}

// Source is a data source for the weekly view.
type Source interface {
	CategoryRepository
	ScheduleRepository
}

// ScheduleFieldWriter changes which fields are attached to a schedule.
// Only the database source supports writes.
type ScheduleFieldWriter interface {
	ReplaceScheduleFields(ctx context.Context, scheduleID int, fieldIDs []int) error
}

// Snapshot is a consistent read of both collections.
type Snapshot struct {
	Categories []schedule.Category
	Schedules  []schedule.ScheduleRecord
}

// LoadSnapshot fetches categories and schedules concurrently.
// Nil results are normalized to empty slices.
func LoadSnapshot(ctx context.Context, source Source) (Snapshot, error) {
	var snapshot Snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		categories, err := source.FindCategories(ctx)
		if err != nil {
			return fmt.Errorf("find categories: %w", err)
		}
		snapshot.Categories = categories
		return nil
	})
	g.Go(func() error {
		schedules, err := source.FindSchedules(ctx)
		if err != nil {
			return fmt.Errorf("find schedules: %w", err)
		}
		snapshot.Schedules = schedules
		return nil
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	if snapshot.Categories == nil {
		snapshot.Categories = []schedule.Category{}
	}
	if snapshot.Schedules == nil {
		snapshot.Schedules = []schedule.ScheduleRecord{}
	}
	return snapshot, nil
}
