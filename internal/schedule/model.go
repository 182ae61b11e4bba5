// Package schedule builds the weekly schedule view from categories, schedule
// records and URL query parameters.
//
// Everything in this package is a pure function of its inputs. Malformed or
// stale parameters never produce errors; they degrade to the unfiltered and
// unsorted defaults.
package schedule

// Field is one selectable value within a category.
type Field struct {
	ID    int    `json:"id" yaml:"id" db:"id"`
	Name  string `json:"name" yaml:"name" db:"name"`
	Order int    `json:"order" yaml:"order" db:"sort_order"`
}

// Category groups fields. Fields are kept in display order.
type Category struct {
	ID     int     `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Item is the part of an item a schedule record carries.
type Item struct {
	Name  string  `json:"name" yaml:"name"`
	Notes *string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// FieldRef attaches a field to a schedule. CategoryID is a back-reference to
// the field's owning category.
type FieldRef struct {
	ID         int `json:"id" yaml:"id" db:"field_id"`
	CategoryID int `json:"cat_id" yaml:"cat_id" db:"cat_id"`
}

// ScheduleRecord is a recurring weekly schedule of an item. The day flags are
// independent of each other.
type ScheduleRecord struct {
	Amount     string     `json:"amount" yaml:"amount"`
	Item       Item       `json:"item" yaml:"item"`
	Categories []FieldRef `json:"categories" yaml:"categories"`

	Monday    bool `json:"Monday" yaml:"Monday"`
	Tuesday   bool `json:"Tuesday" yaml:"Tuesday"`
	Wednesday bool `json:"Wednesday" yaml:"Wednesday"`
	Thursday  bool `json:"Thursday" yaml:"Thursday"`
	Friday    bool `json:"Friday" yaml:"Friday"`
	Saturday  bool `json:"Saturday" yaml:"Saturday"`
	Sunday    bool `json:"Sunday" yaml:"Sunday"`
}

// ActiveOn reports whether the schedule recurs on day.
func (s ScheduleRecord) ActiveOn(day Day) bool {
	switch day {
	case Monday:
		return s.Monday
	case Tuesday:
		return s.Tuesday
	case Wednesday:
		return s.Wednesday
	case Thursday:
		return s.Thursday
	case Friday:
		return s.Friday
	case Saturday:
		return s.Saturday
	case Sunday:
		return s.Sunday
	}
	return false
}

// NoCategory marks a filter that does not point at any category.
const NoCategory = -1

// Filter restricts schedules by category and field membership.
// CategoryIndex and FieldIndexes are positions in the category list and in
// that category's fields, not database ids.
type Filter struct {
	Include       bool
	CategoryIndex int
	// An empty list matches any field of the category.
	FieldIndexes []int
}

// valid reports whether the filter points at a category in categories.
func (f Filter) valid(categories []Category) bool {
	return f.CategoryIndex >= 0 && f.CategoryIndex < len(categories)
}

// ScheduledItem is a single entry shown under a day.
type ScheduledItem struct {
	Name   string  `json:"name"`
	Amount string  `json:"amount"`
	Notes  *string `json:"notes,omitempty"`
}

// FieldGroup holds the items of one sort field on one day.
type FieldGroup struct {
	Name  string          `json:"name"`
	Items []ScheduledItem `json:"items"`
}
