package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/TheoAcker12/weekly-scheduler/internal/assets"
	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
	"github.com/TheoAcker12/weekly-scheduler/internal/weekly"
)

const printTitle = "Weekly Schedule"

// PrintLayout converts view to the print template data. The print layout is
// always a list, whatever view type was requested.
func PrintLayout(view weekly.View) assets.PrintTemplate {
	layout := assets.PrintTemplate{
		Title:        printTitle,
		Sorted:       view.Schedule.Sorted,
		SortCategory: view.Selection.SortCategory,
		Filters:      describeFilters(view),
		Days:         make([]assets.PrintDay, 0, len(view.Days)),
	}
	for _, day := range view.Days {
		content := view.Schedule.Day(day)
		printDay := assets.PrintDay{Name: string(day)}
		if view.Schedule.Sorted {
			for _, group := range content.Groups {
				printDay.Groups = append(printDay.Groups, assets.PrintGroup{
					Name:  group.Name,
					Items: formatItems(group.Items),
				})
			}
		} else {
			printDay.Items = formatItems(content.Items)
		}
		layout.Days = append(layout.Days, printDay)
	}
	return layout
}

// createFile opens the print file. Tests replace it.
var createFile = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// WritePrint writes the print layout markdown for view into directory and
// returns the file path. The file name carries the date of now.
func WritePrint(directory string, templatePath string, view weekly.View, now time.Time) (path string, err error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}

	outputFilename := filepath.Join(directory, "weekly-schedule-"+now.Format(time.DateOnly)+".md")
	output, err := createFile(outputFilename)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", outputFilename, err)
	}
	defer func() {
		if closeErr := output.Close(); closeErr != nil && err == nil {
			path, err = "", fmt.Errorf("output.Close(%s) > %w", outputFilename, closeErr)
		}
	}()

	if err := assets.WriteWeeklyPrint(output, templatePath, PrintLayout(view)); err != nil {
		return "", fmt.Errorf("assets.WriteWeeklyPrint(%s, %s) > %w", outputFilename, templatePath, err)
	}
	return outputFilename, nil
}

func formatItems(items []schedule.ScheduledItem) []string {
	formatted := make([]string, 0, len(items))
	for _, item := range items {
		formatted = append(formatted, FormatItem(item))
	}
	return formatted
}

// describeFilters turns the applied filters into lines such as
// "Include: Location (Garden, Kitchen)".
func describeFilters(view weekly.View) []string {
	var lines []string
	for _, pass := range []struct {
		label   string
		include bool
		raw     []string
	}{
		{"Include", true, view.Selection.Include},
		{"Exclude", false, view.Selection.Exclude},
	} {
		for _, f := range schedule.ParseFilterParams(pass.include, schedule.Param(pass.raw), view.Categories) {
			lines = append(lines, pass.label+": "+describeFilter(f, view.Categories))
		}
	}
	return lines
}

func describeFilter(f schedule.Filter, categories []schedule.Category) string {
	category := categories[f.CategoryIndex]
	if len(f.FieldIndexes) == 0 {
		return category.Name
	}
	names := make([]string, 0, len(f.FieldIndexes))
	for _, i := range f.FieldIndexes {
		names = append(names, category.Fields[i].Name)
	}
	return category.Name + " (" + strings.Join(names, ", ") + ")"
}
