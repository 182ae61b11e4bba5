package schedule

import "strings"

// Day is the English name of a day of the week.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// Days is the canonical week order. Aggregated data is always stored in this
// order regardless of the display rotation.
var Days = [7]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseDay resolves a day name, ignoring case.
func ParseDay(s string) (Day, bool) {
	s = strings.TrimSpace(s)
	for _, d := range Days {
		if strings.EqualFold(s, string(d)) {
			return d, true
		}
	}
	return "", false
}

// Index returns the position of d in the canonical week, or -1.
func (d Day) Index() int {
	for i, day := range Days {
		if day == d {
			return i
		}
	}
	return -1
}

// OrderedDays returns the week starting at start. Any integer is accepted and
// reduced modulo 7.
func OrderedDays(start int) []Day {
	start = ((start % len(Days)) + len(Days)) % len(Days)
	ordered := make([]Day, 0, len(Days))
	for i := range Days {
		ordered = append(ordered, Days[(start+i)%len(Days)])
	}
	return ordered
}

// StartDayIndex resolves a start_on parameter. A day name maps to its index
// and an integer is reduced modulo 7. Everything else starts on Monday.
func StartDayIndex(startOn Param) int {
	index, _ := resolveStartDay(startOn)
	return index
}

func resolveStartDay(startOn Param) (int, bool) {
	value, ok := startOn.single()
	if !ok {
		return 0, false
	}
	if day, ok := ParseDay(value); ok {
		return day.Index(), true
	}
	n, ok := parseID(value)
	if !ok {
		return 0, false
	}
	return ((n % len(Days)) + len(Days)) % len(Days), true
}
