package schedule

import (
	"bytes"
	"encoding/json"
)

// DaySchedule is the content of one day. Items is used by unsorted data and
// Groups by sorted data; the other one is nil.
type DaySchedule struct {
	Day    Day
	Items  []ScheduledItem
	Groups []FieldGroup
}

// ScheduleData is the weekly view model. Days always holds all seven days in
// canonical order.
type ScheduleData struct {
	Sorted bool
	Days   [7]DaySchedule
}

// Day returns the content of day.
func (d ScheduleData) Day(day Day) DaySchedule {
	if i := day.Index(); i >= 0 {
		return d.Days[i]
	}
	return DaySchedule{Day: day}
}

// MarshalJSON encodes the data as {"sorted": bool, "day_map": {...}} with the
// day keys in canonical order.
func (d ScheduleData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"sorted":`)
	if d.Sorted {
		buf.WriteString("true")
	} else {
		buf.WriteString("false")
	}
	buf.WriteString(`,"day_map":{`)
	for i, day := range d.Days {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(Days[i]))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		var value any = day.Items
		if d.Sorted {
			value = day.Groups
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

// Selection is the validated form of the aggregation parameters.
type Selection struct {
	Sorted    bool
	SortIndex int
	Include   []Filter
	Exclude   []Filter
}

// Parse validates params against categories.
func Parse(params Params, categories []Category) Selection {
	sortIndex, sorted := ParseSortParam(params.SortBy, categories)
	return Selection{
		Sorted:    sorted,
		SortIndex: sortIndex,
		Include:   ParseFilterParams(true, params.Include, categories),
		Exclude:   ParseFilterParams(false, params.Exclude, categories),
	}
}

// Build filters schedules and aggregates them according to the selection.
func (sel Selection) Build(categories []Category, schedules []ScheduleRecord) ScheduleData {
	filtered := ApplyFilters(schedules, sel.Include, sel.Exclude, categories)
	if !sel.Sorted {
		return Aggregate(filtered, nil, false)
	}
	return Aggregate(filtered, ResolveSortFields(categories, sel.SortIndex, sel.Include, sel.Exclude), true)
}

// Build turns categories, schedules and raw query parameters into the weekly
// view model.
func Build(categories []Category, schedules []ScheduleRecord, params Params) ScheduleData {
	return Parse(params, categories).Build(categories, schedules)
}

// Aggregate buckets schedules by every day they are active on. When sorted is
// true each day is further split into one group per sort field, and a
// schedule lands in every group whose field it carries.
func Aggregate(schedules []ScheduleRecord, sortFields []Field, sorted bool) ScheduleData {
	data := ScheduleData{Sorted: sorted}

	positions := make(map[int]int, len(sortFields))
	for i, field := range sortFields {
		if _, ok := positions[field.ID]; !ok {
			positions[field.ID] = i
		}
	}
	for i, day := range Days {
		data.Days[i].Day = day
		if !sorted {
			data.Days[i].Items = []ScheduledItem{}
			continue
		}
		groups := make([]FieldGroup, len(sortFields))
		for j, field := range sortFields {
			groups[j] = FieldGroup{Name: field.Name, Items: []ScheduledItem{}}
		}
		data.Days[i].Groups = groups
	}

	for _, s := range schedules {
		for i, day := range Days {
			if !s.ActiveOn(day) {
				continue
			}
			item := ScheduledItem{Name: s.Item.Name, Amount: s.Amount, Notes: s.Item.Notes}
			if !sorted {
				data.Days[i].Items = append(data.Days[i].Items, item)
				continue
			}
			for _, ref := range s.Categories {
				if pos, ok := positions[ref.ID]; ok {
					group := &data.Days[i].Groups[pos]
					group.Items = append(group.Items, item)
				}
			}
		}
	}
	return data
}
