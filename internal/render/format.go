// Package render writes the weekly view for terminals and print.
package render

import (
	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
)

// Nothing is shown in place of an empty item list.
const Nothing = "Nothing"

// FormatItem formats an item as "name: amount (notes)". Empty notes are omitted.
func FormatItem(item schedule.ScheduledItem) string {
	text := item.Name + ": " + item.Amount
	if item.Notes != nil && *item.Notes != "" {
		text += " (" + *item.Notes + ")"
	}
	return text
}

type lineKind int

const (
	lineGroup lineKind = iota
	lineItem
	lineNothing
)

type line struct {
	kind lineKind
	text string
	// nested is set for lines under a group heading.
	nested bool
}

// dayLines flattens one day into the lines every renderer prints.
func dayLines(day schedule.DaySchedule, sorted bool) []line {
	if !sorted {
		return itemLines(day.Items)
	}
	if len(day.Groups) == 0 {
		return []line{{kind: lineNothing, text: Nothing}}
	}
	var lines []line
	for _, group := range day.Groups {
		lines = append(lines, line{kind: lineGroup, text: group.Name})
		for _, l := range itemLines(group.Items) {
			l.nested = true
			lines = append(lines, l)
		}
	}
	return lines
}

func itemLines(items []schedule.ScheduledItem) []line {
	if len(items) == 0 {
		return []line{{kind: lineNothing, text: Nothing}}
	}
	lines := make([]line, 0, len(items))
	for _, item := range items {
		lines = append(lines, line{kind: lineItem, text: FormatItem(item)})
	}
	return lines
}
