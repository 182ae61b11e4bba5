package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
)

// ViewFlag selects the list or table view.
type ViewFlag string

// Set implements pflag.Value.
func (v *ViewFlag) Set(s string) error {
	viewType, err := schedule.ParseViewType(s)
	if err != nil {
		return err
	}
	*v = ViewFlag(viewType)
	return nil
}

// String implements pflag.Value.
func (v *ViewFlag) String() string {
	if v == nil {
		return ""
	}
	return string(*v)
}

// Type implements pflag.Value.
func (v *ViewFlag) Type() string {
	return "ViewFlag"
}

var (
	_ pflag.Value = (*ViewFlag)(nil)
)

// selectionFlags are the sort, filter and display flags shared by show and print.
type selectionFlags struct {
	sortBy  int
	include []string
	exclude []string
	view    ViewFlag
	startOn string
}

func (f *selectionFlags) register(flags *pflag.FlagSet, withView bool) {
	flags.IntVar(&f.sortBy, "sort-by", 0, "Category id to group items by")
	flags.StringArrayVar(&f.include, "include", nil, "Keep only schedules matching a filter such as 7 or 7_20-21. Repeatable")
	flags.StringArrayVar(&f.exclude, "exclude", nil, "Drop schedules matching a filter such as 7 or 7_20-21. Repeatable")
	flags.StringVar(&f.startOn, "start-on", "", "Day the week starts on")
	if withView {
		flags.Var(&f.view, "view", "View type. Options: list, table")
	}
}

func (f *selectionFlags) params(flags *pflag.FlagSet) schedule.Params {
	params := schedule.Params{
		Include: schedule.Param(f.include),
		Exclude: schedule.Param(f.exclude),
	}
	if flags.Changed("sort-by") {
		params.SortBy = schedule.Param{strconv.Itoa(f.sortBy)}
	}
	return params
}

// displayOptions applies the flags that were set on top of defaults.
// The returned hint explains an unknown --start-on value.
func (f *selectionFlags) displayOptions(flags *pflag.FlagSet, defaults schedule.DisplayOptions) (schedule.DisplayOptions, string) {
	opts := defaults
	if f.view != "" {
		opts.ViewType = schedule.ViewType(f.view)
	}
	var hint string
	if flags.Changed("start-on") {
		opts.StartDayIndex, hint = resolveStartDay(f.startOn)
	}
	return opts, hint
}

// resolveStartDay reads a day name in any case or a day number. Unknown
// values start the week on Monday and come with a hint.
func resolveStartDay(value string) (int, string) {
	if day, ok := schedule.ParseDay(value); ok {
		return day.Index(), ""
	}
	if _, err := strconv.Atoi(value); err == nil {
		return schedule.StartDayIndex(schedule.Param{value}), ""
	}

	names := make([]string, 0, len(schedule.Days))
	for _, d := range schedule.Days {
		names = append(names, string(d))
	}
	if suggestion, ok := suggest(value, names); ok {
		return 0, fmt.Sprintf("unknown day %q, did you mean %q? Starting on %s", value, suggestion, schedule.Monday)
	}
	return 0, fmt.Sprintf("unknown day %q. Starting on %s", value, schedule.Monday)
}
