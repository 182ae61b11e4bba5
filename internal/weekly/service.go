// Package weekly assembles the weekly schedule view from a data source.
package weekly

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/TheoAcker12/weekly-scheduler/internal/config"
	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
	"github.com/TheoAcker12/weekly-scheduler/internal/store"
)

// ErrReadOnlySource is returned for updates when the data source cannot be written.
var ErrReadOnlySource = errors.New("data source is read-only")

// Selection echoes the sort and filters that were applied, in query form.
// Invalid parameters are dropped, so a client can write these values back.
type Selection struct {
	SortBy       *int     `json:"sort_by"`
	SortCategory string   `json:"sort_category,omitempty"`
	Include      []string `json:"include"`
	Exclude      []string `json:"exclude"`
}

// Query returns the selection as URL query values.
func (s Selection) Query() url.Values {
	query := url.Values{}
	if s.SortBy != nil {
		query.Set(schedule.ParamSortBy, fmt.Sprint(*s.SortBy))
	}
	for _, f := range s.Include {
		query.Add(schedule.ParamInclude, f)
	}
	for _, f := range s.Exclude {
		query.Add(schedule.ParamExclude, f)
	}
	return query
}

// View is everything needed to render the weekly schedule.
type View struct {
	Options    schedule.DisplayOptions `json:"options"`
	Days       []schedule.Day          `json:"days"`
	Schedule   schedule.ScheduleData   `json:"schedule"`
	Selection  Selection               `json:"selection"`
	Categories []schedule.Category     `json:"categories"`
}

type Service struct {
	source   store.Source
	defaults schedule.DisplayOptions
}

func NewService(source store.Source, defaults schedule.DisplayOptions) *Service {
	return &Service{
		source:   source,
		defaults: defaults,
	}
}

// DefaultDisplayOptions converts the configured view defaults.
func DefaultDisplayOptions(cfg config.ViewConfig) schedule.DisplayOptions {
	viewType, err := schedule.ParseViewType(cfg.ViewAs)
	if err != nil {
		viewType = schedule.ViewList
	}
	opts := schedule.DisplayOptions{ViewType: viewType}
	if cfg.StartOn != "" {
		opts.StartDayIndex = schedule.StartDayIndex(schedule.Param{cfg.StartOn})
	}
	return opts
}

// Defaults returns the display options used when a request names none.
func (s *Service) Defaults() schedule.DisplayOptions {
	return s.defaults
}

// View builds the weekly view for URL query parameters.
func (s *Service) View(ctx context.Context, query url.Values) (View, error) {
	return s.Build(ctx, schedule.ParamsFromQuery(query), schedule.DisplayOptionsFromQuery(query, s.defaults))
}

// Build builds the weekly view for already separated parameters.
func (s *Service) Build(ctx context.Context, params schedule.Params, opts schedule.DisplayOptions) (View, error) {
	snapshot, err := store.LoadSnapshot(ctx, s.source)
	if err != nil {
		return View{}, fmt.Errorf("load snapshot: %w", err)
	}

	selection := schedule.Parse(params, snapshot.Categories)
	data := selection.Build(snapshot.Categories, snapshot.Schedules)
	slog.Default().Debug("built weekly schedule",
		"categories", len(snapshot.Categories),
		"schedules", len(snapshot.Schedules),
		"sorted", data.Sorted,
		"include", len(selection.Include),
		"exclude", len(selection.Exclude))

	return View{
		Options:    opts,
		Days:       opts.OrderedDays(),
		Schedule:   data,
		Selection:  summarize(selection, snapshot.Categories),
		Categories: snapshot.Categories,
	}, nil
}

// Categories returns every category.
func (s *Service) Categories(ctx context.Context) ([]schedule.Category, error) {
	categories, err := s.source.FindCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	if categories == nil {
		categories = []schedule.Category{}
	}
	return categories, nil
}

// Schedules returns every schedule.
func (s *Service) Schedules(ctx context.Context) ([]schedule.ScheduleRecord, error) {
	schedules, err := s.source.FindSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("find schedules: %w", err)
	}
	if schedules == nil {
		schedules = []schedule.ScheduleRecord{}
	}
	return schedules, nil
}

// ReplaceScheduleFields sets the fields attached to a schedule.
func (s *Service) ReplaceScheduleFields(ctx context.Context, scheduleID int, fieldIDs []int) error {
	writer, ok := s.source.(store.ScheduleFieldWriter)
	if !ok {
		return ErrReadOnlySource
	}
	if err := writer.ReplaceScheduleFields(ctx, scheduleID, fieldIDs); err != nil {
		return fmt.Errorf("replace fields of schedule %d: %w", scheduleID, err)
	}
	slog.Default().Info("replaced schedule fields", "schedule_id", scheduleID, "field_ids", fieldIDs)
	return nil
}

func summarize(selection schedule.Selection, categories []schedule.Category) Selection {
	summary := Selection{
		Include: schedule.FormatFilters(selection.Include, categories),
		Exclude: schedule.FormatFilters(selection.Exclude, categories),
	}
	if selection.Sorted {
		category := categories[selection.SortIndex]
		summary.SortBy = &category.ID
		summary.SortCategory = category.Name
	}
	return summary
}
