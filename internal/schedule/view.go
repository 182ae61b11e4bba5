package schedule

import (
	"fmt"
	"net/url"
)

// ViewType selects how the weekly view is laid out.
type ViewType string

const (
	ViewList  ViewType = "list"
	ViewTable ViewType = "table"
)

// ParseViewType resolves a view_as value. Only "table" switches away from the
// list view.
func ParseViewType(s string) (ViewType, error) {
	switch ViewType(s) {
	case ViewList:
		return ViewList, nil
	case ViewTable:
		return ViewTable, nil
	}
	return ViewList, fmt.Errorf("invalid view type %q, valid values are %q or %q", s, ViewList, ViewTable)
}

// DisplayOptions are the rendering-only parameters of the weekly view.
type DisplayOptions struct {
	ViewType      ViewType `json:"view_as"`
	StartDayIndex int      `json:"start_day_index"`
}

// OrderedDays returns the week in display order.
func (o DisplayOptions) OrderedDays() []Day {
	return OrderedDays(o.StartDayIndex)
}

// DisplayOptionsFromQuery reads view_as and start_on. Parameters that are
// absent or do not resolve keep the values in defaults.
func DisplayOptionsFromQuery(query url.Values, defaults DisplayOptions) DisplayOptions {
	opts := defaults
	if value, ok := Param(query[ParamViewAs]).single(); ok {
		if viewType, err := ParseViewType(value); err == nil {
			opts.ViewType = viewType
		}
	}
	if index, ok := resolveStartDay(Param(query[ParamStartOn])); ok {
		opts.StartDayIndex = index
	}
	return opts
}
