package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func record(name string, fieldIDs ...int) ScheduleRecord {
	refs := make([]FieldRef, 0, len(fieldIDs))
	for _, id := range fieldIDs {
		refs = append(refs, FieldRef{ID: id})
	}
	return ScheduleRecord{Amount: "1", Item: Item{Name: name}, Categories: refs, Monday: true}
}

func names(schedules []ScheduleRecord) []string {
	out := make([]string, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, s.Item.Name)
	}
	return out
}

func TestApplyFilters(t *testing.T) {
	categories := testCategories()
	schedules := []ScheduleRecord{
		record("low", 10),
		record("high", 11),
		record("garden", 20),
		record("garage and high", 30, 11),
		record("untagged"),
	}

	tests := []struct {
		name    string
		include []Filter
		exclude []Filter
		want    []string
	}{
		{
			name: "no filters keeps everything",
			want: []string{"low", "high", "garden", "garage and high", "untagged"},
		},
		{
			name:    "include a single field",
			include: []Filter{{Include: true, CategoryIndex: 0, FieldIndexes: []int{1}}},
			want:    []string{"high", "garage and high"},
		},
		{
			name:    "include a whole category",
			include: []Filter{{Include: true, CategoryIndex: 1, FieldIndexes: []int{}}},
			// field id 10 is shared by Priority/Low and Location/Kitchen
			want: []string{"low", "garden", "garage and high"},
		},
		{
			name: "include filters are OR-ed",
			include: []Filter{
				{Include: true, CategoryIndex: 1, FieldIndexes: []int{1}},
				{Include: true, CategoryIndex: 1, FieldIndexes: []int{2}},
			},
			want: []string{"garden", "garage and high"},
		},
		{
			name:    "include on a category without fields matches nothing",
			include: []Filter{{Include: true, CategoryIndex: 2, FieldIndexes: []int{}}},
			want:    []string{},
		},
		{
			name:    "exclude a single field",
			exclude: []Filter{{CategoryIndex: 0, FieldIndexes: []int{1}}},
			want:    []string{"low", "garden", "untagged"},
		},
		{
			name: "matching either exclude filter rejects",
			exclude: []Filter{
				{CategoryIndex: 0, FieldIndexes: []int{0}},
				{CategoryIndex: 1, FieldIndexes: []int{1}},
			},
			want: []string{"high", "garage and high", "untagged"},
		},
		{
			name:    "include runs before exclude",
			include: []Filter{{Include: true, CategoryIndex: 0, FieldIndexes: []int{}}},
			exclude: []Filter{{CategoryIndex: 1, FieldIndexes: []int{2}}},
			want:    []string{"low", "high"},
		},
		{
			name:    "same category include and exclude apply independently",
			include: []Filter{{Include: true, CategoryIndex: 0, FieldIndexes: []int{}}},
			exclude: []Filter{{CategoryIndex: 0, FieldIndexes: []int{1}}},
			want:    []string{"low"},
		},
		{
			name:    "include filter without a category never matches",
			include: []Filter{{Include: true, CategoryIndex: NoCategory}},
			want:    []string{},
		},
		{
			name:    "exclude filter without a category never matches",
			exclude: []Filter{{CategoryIndex: NoCategory}, {CategoryIndex: 5}},
			want:    []string{"low", "high", "garden", "garage and high", "untagged"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(schedules, tt.include, tt.exclude, categories)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestApplyFilters_IncludeIsIdempotent(t *testing.T) {
	categories := testCategories()
	schedules := []ScheduleRecord{record("a", 10), record("b", 11), record("c", 20)}
	include := []Filter{{Include: true, CategoryIndex: 0, FieldIndexes: []int{0}}}

	once := ApplyFilters(schedules, include, nil, categories)
	twice := ApplyFilters(once, include, nil, categories)
	assert.Equal(t, once, twice)
}

func TestApplyFilters_IncludeOR(t *testing.T) {
	categories := testCategories()
	s := record("s", 20)

	neither := []Filter{
		{Include: true, CategoryIndex: 0, FieldIndexes: []int{0}},
		{Include: true, CategoryIndex: 1, FieldIndexes: []int{2}},
	}
	assert.Empty(t, ApplyFilters([]ScheduleRecord{s}, neither, nil, categories))

	secondOnly := []Filter{
		{Include: true, CategoryIndex: 0, FieldIndexes: []int{0}},
		{Include: true, CategoryIndex: 1, FieldIndexes: []int{1}},
	}
	assert.Equal(t, []ScheduleRecord{s}, ApplyFilters([]ScheduleRecord{s}, secondOnly, nil, categories))
}

func TestApplyFilters_DoesNotModifyInput(t *testing.T) {
	categories := testCategories()
	schedules := []ScheduleRecord{record("a", 10), record("b", 11)}
	before := append([]ScheduleRecord(nil), schedules...)

	ApplyFilters(schedules, nil, []Filter{{CategoryIndex: 0, FieldIndexes: []int{0}}}, categories)
	assert.Equal(t, before, schedules)
}
