package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheoAcker12/weekly-scheduler/internal/config"
	"github.com/TheoAcker12/weekly-scheduler/internal/database"
	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
	"github.com/TheoAcker12/weekly-scheduler/schemas"
)

func newSQLiteRepository(t *testing.T) *DBRepository {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "weekly.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.ApplySchema(context.Background(), db, schemas.SQLite))
	return NewDBRepository(db)
}

func TestDBRepository_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	yamlRepo := NewYAMLRepository(testdataPath("categories.yml"), testdataPath("schedules.yml"))
	want, err := LoadSnapshot(ctx, yamlRepo)
	require.NoError(t, err)

	repo := newSQLiteRepository(t)
	require.NoError(t, repo.ReplaceAll(ctx, want))

	got, err := LoadSnapshot(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// importing again replaces instead of appending
	require.NoError(t, repo.ReplaceAll(ctx, want))
	got, err = LoadSnapshot(ctx, repo)
	require.NoError(t, err)
	assert.Len(t, got.Schedules, len(want.Schedules))
}

func TestDBRepository_SQLiteReplaceScheduleFields(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepository(t)
	require.NoError(t, repo.ReplaceAll(ctx, Snapshot{
		Categories: []schedule.Category{{
			ID:     1,
			Name:   "Priority",
			Fields: []schedule.Field{{ID: 10, Name: "Low", Order: 0}, {ID: 11, Name: "High", Order: 1}},
		}},
		Schedules: []schedule.ScheduleRecord{
			{Amount: "1", Item: schedule.Item{Name: "Sweep"}, Categories: []schedule.FieldRef{{ID: 10, CategoryID: 1}}, Monday: true},
		},
	}))

	require.NoError(t, repo.ReplaceScheduleFields(ctx, 1, []int{11}))
	schedules, err := repo.FindSchedules(ctx)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, []schedule.FieldRef{{ID: 11, CategoryID: 1}}, schedules[0].Categories)

	err = repo.ReplaceScheduleFields(ctx, 42, []int{11})
	assert.True(t, errors.Is(err, ErrScheduleNotFound))

	// unknown fields are rejected before anything changes
	err = repo.ReplaceScheduleFields(ctx, 1, []int{10, 99})
	assert.ErrorIs(t, err, ErrFieldNotFound)
	assert.EqualError(t, err, "fields [99]: field not found")
	schedules, err = repo.FindSchedules(ctx)
	require.NoError(t, err)
	assert.Equal(t, []schedule.FieldRef{{ID: 11, CategoryID: 1}}, schedules[0].Categories)
}

func TestDBRepository_ReplaceAll_RollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	for _, table := range []string{"schedule_fields", "schedules", "items", "fields", "categories"} {
		mock.ExpectExec("DELETE FROM " + table).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec("INSERT INTO categories").WillReturnError(fmt.Errorf("duplicate entry"))
	mock.ExpectRollback()

	repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
	err = repo.ReplaceAll(context.Background(), Snapshot{
		Categories: []schedule.Category{{ID: 1, Name: "Priority"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert categories")
	assert.NoError(t, mock.ExpectationsWereMet())
}
