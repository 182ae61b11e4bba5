package schedule

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseViewType(t *testing.T) {
	got, err := ParseViewType("table")
	assert.NoError(t, err)
	assert.Equal(t, ViewTable, got)

	got, err = ParseViewType("list")
	assert.NoError(t, err)
	assert.Equal(t, ViewList, got)

	got, err = ParseViewType("grid")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid view type")
	assert.Equal(t, ViewList, got)
}

func TestDisplayOptionsFromQuery(t *testing.T) {
	defaults := DisplayOptions{ViewType: ViewTable, StartDayIndex: 6}

	tests := []struct {
		name  string
		query string
		want  DisplayOptions
	}{
		{
			name:  "defaults when absent",
			query: "sort_by=1",
			want:  DisplayOptions{ViewType: ViewTable, StartDayIndex: 6},
		},
		{
			name:  "list view",
			query: "view_as=list",
			want:  DisplayOptions{ViewType: ViewList, StartDayIndex: 6},
		},
		{
			name:  "unknown view type keeps the default",
			query: "view_as=grid",
			want:  DisplayOptions{ViewType: ViewTable, StartDayIndex: 6},
		},
		{
			name:  "start on a day name",
			query: "view_as=table&start_on=Wednesday",
			want:  DisplayOptions{ViewType: ViewTable, StartDayIndex: 2},
		},
		{
			name:  "unknown start day keeps the default",
			query: "start_on=whenever",
			want:  DisplayOptions{ViewType: ViewTable, StartDayIndex: 6},
		},
		{
			name:  "numeric start day wraps",
			query: "start_on=9",
			want:  DisplayOptions{ViewType: ViewTable, StartDayIndex: 2},
		},
		{
			name:  "repeated start day keeps the default",
			query: "start_on=Monday&start_on=Friday",
			want:  DisplayOptions{ViewType: ViewTable, StartDayIndex: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, DisplayOptionsFromQuery(query, defaults))
		})
	}
}

func TestDisplayOptions_OrderedDays(t *testing.T) {
	opts := DisplayOptions{StartDayIndex: 2}
	assert.Equal(t, Wednesday, opts.OrderedDays()[0])
}
