// Package testutil provides shared test helpers for creating config files and schedule data fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
)

// DataFile returns the absolute path of a file in the repository's data directory.
func DataFile(t *testing.T, name string) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller failed")
	path, err := filepath.Abs(filepath.Join(filepath.Dir(file), "..", "..", "data", name))
	require.NoError(t, err)
	return path
}

// SetupTestConfig writes a config file that reads the repository's example data files.
// extra is appended as-is. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, extra string) string {
	t.Helper()
	return writeConfig(t, tmpDir, DataFile(t, "categories.yml"), DataFile(t, "schedules.yml"), extra)
}

// SetupYAMLConfig creates a config file for the YAML data source.
func SetupYAMLConfig(t *testing.T, tmpDir string) string {
	t.Helper()
	return SetupTestConfig(t, tmpDir, "datasource:\n  driver: yaml\n")
}

// SetupSQLiteConfig creates a config file for a SQLite database inside tmpDir.
// The database file is not created.
func SetupSQLiteConfig(t *testing.T, tmpDir string) string {
	t.Helper()
	return SetupTestConfig(t, tmpDir, fmt.Sprintf(`datasource:
  driver: database
database:
  driver: sqlite3
  path: %s
`, filepath.Join(tmpDir, "weekly.db")))
}

// DataOption configures the fixture written by CreateDataFiles.
type DataOption func(*dataConfig)

type dataConfig struct {
	categories []schedule.Category
	schedules  []schedule.ScheduleRecord
}

// WithCategories replaces the fixture categories.
func WithCategories(categories ...schedule.Category) DataOption {
	return func(cfg *dataConfig) {
		cfg.categories = categories
	}
}

// WithSchedules replaces the fixture schedules.
func WithSchedules(schedules ...schedule.ScheduleRecord) DataOption {
	return func(cfg *dataConfig) {
		cfg.schedules = schedules
	}
}

// CreateDataFiles writes categories.yml and schedules.yml into dir and a config
// file reading them through the YAML data source. By default there is one
// category with one field and one Monday schedule tagged with it.
// Returns the path to the generated config file.
func CreateDataFiles(t *testing.T, dir string, opts ...DataOption) string {
	t.Helper()

	cfg := dataConfig{
		categories: []schedule.Category{
			{ID: 1, Name: "Room", Fields: []schedule.Field{{ID: 1, Name: "Kitchen"}}},
		},
		schedules: []schedule.ScheduleRecord{
			{
				Amount:     "1",
				Item:       schedule.Item{Name: "Sweep floor"},
				Categories: []schedule.FieldRef{{ID: 1, CategoryID: 1}},
				Monday:     true,
			},
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	categoriesFile := filepath.Join(dir, "categories.yml")
	schedulesFile := filepath.Join(dir, "schedules.yml")
	writeYAML(t, categoriesFile, cfg.categories)
	writeYAML(t, schedulesFile, cfg.schedules)
	return writeConfig(t, dir, categoriesFile, schedulesFile, "datasource:\n  driver: yaml\n")
}

func writeConfig(t *testing.T, dir, categoriesFile, schedulesFile, extra string) string {
	t.Helper()

	content := fmt.Sprintf(`yaml:
  categories_file: %s
  schedules_file: %s
%s`, categoriesFile, schedulesFile, extra)

	cfgPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}

func writeYAML(t *testing.T, path string, v any) {
	t.Helper()

	content, err := yaml.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, content, 0644))
}
