package schedule

// ApplyFilters returns the schedules that pass the include filters and then
// the exclude filters. A schedule passes the include group when it matches
// any include filter, and the exclude group when it matches no exclude
// filter. An empty group lets everything through. The input is not modified.
func ApplyFilters(schedules []ScheduleRecord, include, exclude []Filter, categories []Category) []ScheduleRecord {
	passed := filterPass(schedules, include, categories, true)
	return filterPass(passed, exclude, categories, false)
}

func filterPass(schedules []ScheduleRecord, filters []Filter, categories []Category, include bool) []ScheduleRecord {
	if len(filters) == 0 {
		return schedules
	}

	sets := make([]map[int]bool, len(filters))
	for i, f := range filters {
		sets[i] = allowedFieldIDs(f, categories)
	}

	out := make([]ScheduleRecord, 0, len(schedules))
	for _, s := range schedules {
		matched := false
		for _, set := range sets {
			if matchesAny(s, set) {
				matched = true
				break
			}
		}
		if matched == include {
			out = append(out, s)
		}
	}
	return out
}

// allowedFieldIDs returns the field ids a filter selects: the listed fields,
// or every field of the category when none are listed. A filter without a
// category selects nothing.
func allowedFieldIDs(f Filter, categories []Category) map[int]bool {
	if !f.valid(categories) {
		return nil
	}
	fields := categories[f.CategoryIndex].Fields
	set := make(map[int]bool, len(fields))
	if len(f.FieldIndexes) == 0 {
		for _, field := range fields {
			set[field.ID] = true
		}
		return set
	}
	for _, index := range f.FieldIndexes {
		if index >= 0 && index < len(fields) {
			set[fields[index].ID] = true
		}
	}
	return set
}

func matchesAny(s ScheduleRecord, fieldIDs map[int]bool) bool {
	for _, ref := range s.Categories {
		if fieldIDs[ref.ID] {
			return true
		}
	}
	return false
}
