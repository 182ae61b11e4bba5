// Package assets holds the embedded templates used for printed output.
package assets

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/weekly-print.md.go.tmpl
var fallbackWeeklyPrintTemplate string

const weeklyPrintTemplateName = "weekly-print.md.go.tmpl"

// PrintTemplate is the data of the printable weekly schedule.
type PrintTemplate struct {
	Title        string
	Sorted       bool
	SortCategory string
	// Filters are human readable descriptions of the applied filters.
	Filters []string
	Days    []PrintDay
}

// PrintDay is one day of the print layout. Groups is used when the schedule
// is sorted and Items otherwise.
type PrintDay struct {
	Name   string
	Items  []string
	Groups []PrintGroup
}

type PrintGroup struct {
	Name  string
	Items []string
}

// WriteWeeklyPrint renders data as markdown. A readable file at templatePath
// replaces the embedded template.
func WriteWeeklyPrint(output io.Writer, templatePath string, data PrintTemplate) error {
	tmpl, err := ParseWeeklyPrintTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseWeeklyPrintTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

func ParseWeeklyPrintTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, weeklyPrintTemplateName, fallbackWeeklyPrintTemplate)
}

func parseTemplateWithFallback(templatePath string, fallbackName string, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath, using the embedded template",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
