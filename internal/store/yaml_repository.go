package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
)

// YAMLRepository reads categories and schedules from YAML files.
// Files are read on every call so edits show up without a restart.
type YAMLRepository struct {
	categoriesFile string
	schedulesFile  string
}

// NewYAMLRepository creates a new YAMLRepository.
func NewYAMLRepository(categoriesFile, schedulesFile string) *YAMLRepository {
	return &YAMLRepository{
		categoriesFile: categoriesFile,
		schedulesFile:  schedulesFile,
	}
}

// FindCategories returns the categories in file order, with fields sorted by their order.
func (r *YAMLRepository) FindCategories(ctx context.Context) ([]schedule.Category, error) {
	var categories []schedule.Category
	if err := readYAMLFile(r.categoriesFile, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		return []schedule.Category{}, nil
	}
	for i := range categories {
		if categories[i].Fields == nil {
			categories[i].Fields = []schedule.Field{}
		}
		sort.SliceStable(categories[i].Fields, func(a, b int) bool {
			return categories[i].Fields[a].Order < categories[i].Fields[b].Order
		})
	}
	return categories, nil
}

// FindSchedules returns the schedules in file order.
func (r *YAMLRepository) FindSchedules(ctx context.Context) ([]schedule.ScheduleRecord, error) {
	var schedules []schedule.ScheduleRecord
	if err := readYAMLFile(r.schedulesFile, &schedules); err != nil {
		return nil, err
	}
	if schedules == nil {
		return []schedule.ScheduleRecord{}, nil
	}
	for i := range schedules {
		if schedules[i].Categories == nil {
			schedules[i].Categories = []schedule.FieldRef{}
		}
	}
	return schedules, nil
}

func readYAMLFile(path string, out interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		// An empty file has no document
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("yaml.NewDecoder(%s).Decode() > %w", path, err)
	}
	return nil
}
