// Package datasync provides import/export orchestration between YAML files and database.
package datasync

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
	"github.com/TheoAcker12/weekly-scheduler/internal/store"
)

//go:generate mockgen -source=datasync.go -destination=../mocks/datasync/mock_datasync.go -package=mock_datasync

// SnapshotWriter replaces the whole contents of a data source.
type SnapshotWriter interface {
	ReplaceAll(ctx context.Context, snapshot store.Snapshot) error
}

// ImportResult tracks counts for each imported collection.
type ImportResult struct {
	Categories int
	Fields     int
	Items      int
	Schedules  int
	FieldLinks int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// Importer reads YAML data and writes it to the database.
type Importer struct {
	source store.Source
	target SnapshotWriter
	writer io.Writer
}

func NewImporter(source store.Source, target SnapshotWriter, writer io.Writer) *Importer {
	return &Importer{
		source: source,
		target: target,
		writer: writer,
	}
}

// Import replaces the target contents with the source contents. Progress is
// written to the importer's writer. A dry run only reports.
func (imp *Importer) Import(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	snapshot, err := store.LoadSnapshot(ctx, imp.source)
	if err != nil {
		return nil, fmt.Errorf("store.LoadSnapshot() > %w", err)
	}

	var result ImportResult
	for _, category := range snapshot.Categories {
		fmt.Fprintf(imp.writer, "  [CATEGORY]  %q (%d fields)\n", category.Name, len(category.Fields))
		result.Categories++
		result.Fields += len(category.Fields)
	}

	type itemKey struct {
		name  string
		notes string
		null  bool
	}
	items := make(map[itemKey]bool)
	for _, s := range snapshot.Schedules {
		key := itemKey{name: s.Item.Name, null: s.Item.Notes == nil}
		if s.Item.Notes != nil {
			key.notes = *s.Item.Notes
		}
		if !items[key] {
			items[key] = true
			result.Items++
		}
		fmt.Fprintf(imp.writer, "  [SCHEDULE]  %q %s on %s\n", s.Item.Name, s.Amount, activeDays(s))
		result.Schedules++
		links := make(map[int]bool, len(s.Categories))
		for _, ref := range s.Categories {
			links[ref.ID] = true
		}
		result.FieldLinks += len(links)
	}

	if opts.DryRun {
		fmt.Fprintln(imp.writer, "Dry run, nothing was written")
		return &result, nil
	}
	if err := imp.target.ReplaceAll(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("ReplaceAll() > %w", err)
	}
	return &result, nil
}

func activeDays(s schedule.ScheduleRecord) string {
	var days []string
	for _, day := range schedule.Days {
		if s.ActiveOn(day) {
			days = append(days, string(day)[:3])
		}
	}
	if len(days) == 0 {
		return "no day"
	}
	return strings.Join(days, ",")
}

// Exporter reads a data source and writes it in the YAML file format.
type Exporter struct {
	source store.Source
}

func NewExporter(source store.Source) *Exporter {
	return &Exporter{
		source: source,
	}
}

// Export writes categories and schedules as YAML documents that the YAML
// data source reads back.
func (e *Exporter) Export(ctx context.Context, categoriesWriter io.Writer, schedulesWriter io.Writer) (store.Snapshot, error) {
	snapshot, err := store.LoadSnapshot(ctx, e.source)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("store.LoadSnapshot() > %w", err)
	}
	if err := encodeYAML(categoriesWriter, snapshot.Categories); err != nil {
		return store.Snapshot{}, fmt.Errorf("encode categories > %w", err)
	}
	if err := encodeYAML(schedulesWriter, snapshot.Schedules); err != nil {
		return store.Snapshot{}, fmt.Errorf("encode schedules > %w", err)
	}
	return snapshot, nil
}

func encodeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
