package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/TheoAcker12/weekly-scheduler/internal/config"
	mock_store "github.com/TheoAcker12/weekly-scheduler/internal/mocks/store"
	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
)

func TestLoadSnapshot(t *testing.T) {
	categories := []schedule.Category{{ID: 1, Name: "Priority", Fields: []schedule.Field{{ID: 10, Name: "Low"}}}}
	schedules := []schedule.ScheduleRecord{{Amount: "1", Item: schedule.Item{Name: "Sweep"}, Monday: true}}

	tests := []struct {
		name       string
		setupMock  func(m *mock_store.MockSource)
		want       Snapshot
		wantErrMsg string
	}{
		{
			name: "loads both collections",
			setupMock: func(m *mock_store.MockSource) {
				m.EXPECT().FindCategories(gomock.Any()).Return(categories, nil)
				m.EXPECT().FindSchedules(gomock.Any()).Return(schedules, nil)
			},
			want: Snapshot{Categories: categories, Schedules: schedules},
		},
		{
			name: "nil collections become empty",
			setupMock: func(m *mock_store.MockSource) {
				m.EXPECT().FindCategories(gomock.Any()).Return(nil, nil)
				m.EXPECT().FindSchedules(gomock.Any()).Return(nil, nil)
			},
			want: Snapshot{Categories: []schedule.Category{}, Schedules: []schedule.ScheduleRecord{}},
		},
		{
			name: "category error",
			setupMock: func(m *mock_store.MockSource) {
				m.EXPECT().FindCategories(gomock.Any()).Return(nil, errors.New("connection refused"))
				m.EXPECT().FindSchedules(gomock.Any()).Return(schedules, nil).AnyTimes()
			},
			wantErrMsg: "find categories: connection refused",
		},
		{
			name: "schedule error",
			setupMock: func(m *mock_store.MockSource) {
				m.EXPECT().FindCategories(gomock.Any()).Return(categories, nil).AnyTimes()
				m.EXPECT().FindSchedules(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantErrMsg: "find schedules: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := mock_store.NewMockSource(ctrl)
			tt.setupMock(source)

			got, err := LoadSnapshot(context.Background(), source)
			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				assert.Equal(t, Snapshot{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		wantType interface{}
		wantErr  bool
	}{
		{
			name: "yaml",
			cfg: config.Config{
				DataSource: config.DataSourceConfig{Driver: config.DataSourceYAML},
				YAML: config.YAMLConfig{
					CategoriesFile: testdataPath("categories.yml"),
					SchedulesFile:  testdataPath("schedules.yml"),
				},
			},
			wantType: &YAMLRepository{},
		},
		{
			name: "api",
			cfg: config.Config{
				DataSource: config.DataSourceConfig{Driver: config.DataSourceAPI},
				API:        config.APIConfig{BaseURL: "http://localhost:3000", TimeoutSeconds: 1},
			},
			wantType: &APIRepository{},
		},
		{
			name: "sqlite database",
			cfg: config.Config{
				DataSource: config.DataSourceConfig{Driver: config.DataSourceDatabase},
				Database: config.DatabaseConfig{
					Driver: config.DriverSQLite,
					Path:   filepath.Join(t.TempDir(), "weekly.db"),
				},
			},
			wantType: &DBRepository{},
		},
		{
			name: "unknown",
			cfg: config.Config{
				DataSource: config.DataSourceConfig{Driver: "csv"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, closeFn, err := New(context.Background(), &tt.cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedDataSource)
				return
			}
			require.NoError(t, err)
			defer func() { assert.NoError(t, closeFn()) }()
			assert.IsType(t, tt.wantType, source)
		})
	}
}

func TestDBRepository_IsScheduleFieldWriter(t *testing.T) {
	var source Source = NewDBRepository(nil)
	_, ok := source.(ScheduleFieldWriter)
	assert.True(t, ok)

	source = NewAPIRepository("http://localhost:3000", "", 0, 0)
	_, ok = source.(ScheduleFieldWriter)
	assert.False(t, ok)
}
