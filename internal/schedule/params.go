package schedule

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names understood by the weekly view.
const (
	ParamSortBy  = "sort_by"
	ParamInclude = "include"
	ParamExclude = "exclude"
	ParamViewAs  = "view_as"
	ParamStartOn = "start_on"
)

// Param is the raw value of one query parameter. nil means the parameter is
// absent, one element is a plain value and more than one is a repeated
// parameter.
type Param []string

func (p Param) single() (string, bool) {
	if len(p) != 1 {
		return "", false
	}
	return p[0], true
}

// Params holds the raw parameters the aggregation reads.
type Params struct {
	SortBy  Param
	Include Param
	Exclude Param
}

// ParamsFromQuery picks the aggregation parameters out of a URL query.
func ParamsFromQuery(query url.Values) Params {
	return Params{
		SortBy:  Param(query[ParamSortBy]),
		Include: Param(query[ParamInclude]),
		Exclude: Param(query[ParamExclude]),
	}
}

// ParseSortParam resolves sort_by, a category id, to the index of that
// category. It reports false when the parameter is missing, repeated, not a
// number or names no known category.
func ParseSortParam(sortBy Param, categories []Category) (int, bool) {
	value, ok := sortBy.single()
	if !ok {
		return NoCategory, false
	}
	id, ok := parseID(value)
	if !ok {
		return NoCategory, false
	}
	index := categoryIndex(categories, id)
	return index, index != NoCategory
}

// ParseFilterParams parses every value of an include or exclude parameter.
// Values that do not resolve to a category are dropped.
func ParseFilterParams(include bool, param Param, categories []Category) []Filter {
	filters := make([]Filter, 0, len(param))
	for _, raw := range param {
		if filter, ok := parseFilter(include, raw, categories); ok {
			filters = append(filters, filter)
		}
	}
	return filters
}

// parseFilter parses "<categoryId>[_<fieldId>[-<fieldId>...]]". Field ids that
// do not resolve are skipped without rejecting the filter.
func parseFilter(include bool, raw string, categories []Category) (Filter, bool) {
	pieces := strings.SplitN(raw, "_", 2)
	catID, ok := parseID(pieces[0])
	if !ok {
		return Filter{}, false
	}
	catIndex := categoryIndex(categories, catID)
	if catIndex == NoCategory {
		return Filter{}, false
	}

	filter := Filter{Include: include, CategoryIndex: catIndex, FieldIndexes: []int{}}
	if len(pieces) < 2 {
		return filter, true
	}
	// anything after a second "_" is ignored
	fieldPart, _, _ := strings.Cut(pieces[1], "_")
	fields := categories[catIndex].Fields
	for _, token := range strings.Split(fieldPart, "-") {
		id, ok := parseID(token)
		if !ok {
			continue
		}
		if index := fieldIndex(fields, id); index != -1 {
			filter.FieldIndexes = append(filter.FieldIndexes, index)
		}
	}
	return filter, true
}

// FormatFilter writes a filter back to its query form using database ids.
// It returns "" for a filter that points at no category.
func FormatFilter(filter Filter, categories []Category) string {
	if !filter.valid(categories) {
		return ""
	}
	category := categories[filter.CategoryIndex]

	var b strings.Builder
	b.WriteString(strconv.Itoa(category.ID))
	sep := "_"
	for _, index := range filter.FieldIndexes {
		if index < 0 || index >= len(category.Fields) {
			continue
		}
		b.WriteString(sep)
		b.WriteString(strconv.Itoa(category.Fields[index].ID))
		sep = "-"
	}
	return b.String()
}

// FormatFilters formats every filter, skipping ones without a category.
func FormatFilters(filters []Filter, categories []Category) []string {
	out := make([]string, 0, len(filters))
	for _, f := range filters {
		if s := FormatFilter(f, categories); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// parseID reads an integer the way the web client does: leading whitespace
// and an optional sign, then the leading run of digits. Trailing characters
// are ignored, so "12abc" is 12 while "abc" is rejected.
func parseID(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func categoryIndex(categories []Category, id int) int {
	for i, c := range categories {
		if c.ID == id {
			return i
		}
	}
	return NoCategory
}

func fieldIndex(fields []Field, id int) int {
	for i, f := range fields {
		if f.ID == id {
			return i
		}
	}
	return -1
}
