package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
	"github.com/TheoAcker12/weekly-scheduler/internal/weekly"
)

// Terminal renders the weekly view as a list or a table of days.
type Terminal struct {
	writer  io.Writer
	heading *color.Color
	group   *color.Color
	nothing *color.Color
}

func NewTerminal(writer io.Writer) *Terminal {
	return &Terminal{
		writer:  writer,
		heading: color.New(color.Bold, color.FgCyan),
		group:   color.New(color.FgYellow),
		nothing: color.New(color.Faint),
	}
}

// Render writes view using its view type.
func (t *Terminal) Render(view weekly.View) error {
	if view.Options.ViewType == schedule.ViewTable {
		return t.RenderTable(view)
	}
	return t.RenderList(view)
}

// RenderList writes each day as a heading followed by its items.
func (t *Terminal) RenderList(view weekly.View) error {
	for i, day := range view.Days {
		if i > 0 {
			if _, err := fmt.Fprintln(t.writer); err != nil {
				return err
			}
		}
		if _, err := t.heading.Fprintln(t.writer, day); err != nil {
			return err
		}
		for _, l := range dayLines(view.Schedule.Day(day), view.Schedule.Sorted) {
			indent := "  "
			if l.nested {
				indent = "    "
			}
			if _, err := fmt.Fprintln(t.writer, indent+t.styleLine(l)); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderTable writes the days side by side, one column per day.
func (t *Terminal) RenderTable(view weekly.View) error {
	headers := make([]string, len(view.Days))
	cells := make([]string, len(view.Days))
	for i, day := range view.Days {
		headers[i] = t.heading.Sprint(day)
		var b strings.Builder
		for j, l := range dayLines(view.Schedule.Day(day), view.Schedule.Sorted) {
			if j > 0 {
				b.WriteString("\n")
			}
			if l.nested {
				b.WriteString("  ")
			}
			b.WriteString(t.styleLine(l))
		}
		cells[i] = b.String()
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Row(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	_, err := fmt.Fprintln(t.writer, tbl.String())
	return err
}

// RenderCategories lists categories with the ids used by sort and filter parameters.
func (t *Terminal) RenderCategories(categories []schedule.Category) error {
	if len(categories) == 0 {
		_, err := t.nothing.Fprintln(t.writer, "No categories")
		return err
	}
	for _, category := range categories {
		if _, err := t.heading.Fprintf(t.writer, "%s (%d)\n", category.Name, category.ID); err != nil {
			return err
		}
		if len(category.Fields) == 0 {
			if _, err := fmt.Fprintln(t.writer, "  "+t.nothing.Sprint("No fields")); err != nil {
				return err
			}
			continue
		}
		for _, field := range category.Fields {
			if _, err := fmt.Fprintf(t.writer, "  %s (%d)\n", field.Name, field.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Terminal) styleLine(l line) string {
	switch l.kind {
	case lineGroup:
		return t.group.Sprint(l.text)
	case lineNothing:
		return t.nothing.Sprint(l.text)
	default:
		return "[ ] " + l.text
	}
}
