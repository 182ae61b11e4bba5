package schedule

// ResolveSortFields returns the fields the view is grouped by when sorting by
// the category at sortIndex.
//
// The first filter, include filters before exclude filters, that targets the
// sort category narrows the list: an include filter keeps only its fields and
// an exclude filter drops its fields. When the narrowing would leave nothing,
// every field of the category is used.
func ResolveSortFields(categories []Category, sortIndex int, include, exclude []Filter) []Field {
	if sortIndex < 0 || sortIndex >= len(categories) {
		return nil
	}
	all := categories[sortIndex].Fields

	filter, ok := findFilter(sortIndex, include, exclude)
	if !ok {
		return append([]Field(nil), all...)
	}

	listed := make(map[int]bool, len(filter.FieldIndexes))
	for _, index := range filter.FieldIndexes {
		listed[index] = true
	}
	narrowed := make([]Field, 0, len(all))
	for i, field := range all {
		if listed[i] == filter.Include {
			narrowed = append(narrowed, field)
		}
	}
	if len(narrowed) == 0 {
		return append([]Field(nil), all...)
	}
	return narrowed
}

func findFilter(catIndex int, groups ...[]Filter) (Filter, bool) {
	for _, filters := range groups {
		for _, f := range filters {
			if f.CategoryIndex == catIndex {
				return f, true
			}
		}
	}
	return Filter{}, false
}
