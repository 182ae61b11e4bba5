package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
	"github.com/TheoAcker12/weekly-scheduler/internal/weekly"
)

func newFilterCommand() *cobra.Command {
	var exclude bool

	command := &cobra.Command{
		Use:   "filter <category> [field...]",
		Short: "Print the filter parameter for a category and some of its fields",
		Long: "Print the filter parameter for a category and some of its fields.\n" +
			"Names are matched ignoring case. Without fields the filter matches any field of the category.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, service, closeFn, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			categories, err := service.Categories(cmd.Context())
			if err != nil {
				return fmt.Errorf("service.Categories > %w", err)
			}
			filter, err := composeFilter(categories, args[0], args[1:])
			if err != nil {
				return err
			}

			formatted := schedule.FormatFilter(filter, categories)
			var selection weekly.Selection
			if exclude {
				selection.Exclude = []string{formatted}
			} else {
				selection.Include = []string{formatted}
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatted)
			fmt.Fprintf(cmd.OutOrStdout(), "?%s\n", selection.Query().Encode())
			return nil
		},
	}
	command.Flags().BoolVar(&exclude, "exclude", false, "Compose an exclude filter instead of an include filter")
	return command
}

// composeFilter resolves a category and field names, or ids, to a filter.
func composeFilter(categories []schedule.Category, categoryName string, fieldNames []string) (schedule.Filter, error) {
	names := make([]string, 0, len(categories))
	categoryIndex := schedule.NoCategory
	for i, c := range categories {
		names = append(names, c.Name)
		if matchesName(categoryName, c.Name, c.ID) {
			categoryIndex = i
			break
		}
	}
	if categoryIndex == schedule.NoCategory {
		return schedule.Filter{}, unknownNameError("category", categoryName, names)
	}

	category := categories[categoryIndex]
	filter := schedule.Filter{CategoryIndex: categoryIndex, FieldIndexes: []int{}}
	for _, fieldName := range fieldNames {
		fieldIndex := -1
		fieldNamesOfCategory := make([]string, 0, len(category.Fields))
		for i, f := range category.Fields {
			fieldNamesOfCategory = append(fieldNamesOfCategory, f.Name)
			if matchesName(fieldName, f.Name, f.ID) {
				fieldIndex = i
				break
			}
		}
		if fieldIndex == -1 {
			return schedule.Filter{}, unknownNameError("field of "+category.Name, fieldName, fieldNamesOfCategory)
		}
		filter.FieldIndexes = append(filter.FieldIndexes, fieldIndex)
	}
	return filter, nil
}

func matchesName(value string, name string, id int) bool {
	value = strings.TrimSpace(value)
	return strings.EqualFold(value, name) || value == strconv.Itoa(id)
}

func unknownNameError(kind string, value string, candidates []string) error {
	if suggestion, ok := suggest(value, candidates); ok {
		return fmt.Errorf("unknown %s %q, did you mean %q?", kind, value, suggestion)
	}
	return fmt.Errorf("unknown %s %q", kind, value)
}
