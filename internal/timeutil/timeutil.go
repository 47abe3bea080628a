package timeutil

import "time"

// Display layouts for dashboard labels.
const (
	EventLayout   = "Jan 2, 3:04 PM"
	UpdatedLayout = "3:04 PM"
)

// eventLayouts are the timestamp shapes the scores API emits, most specific first.
var eventLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// ParseEventTime parses an upstream event timestamp.
func ParseEventTime(value string) (time.Time, bool) {
	for _, layout := range eventLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// EventLabel formats a start time in loc, e.g. "Mar 1, 7:30 PM".
// An unparseable value is returned unchanged.
func EventLabel(value string, loc *time.Location) string {
	t, ok := ParseEventTime(value)
	if !ok {
		return value
	}
	return t.In(orLocal(loc)).Format(EventLayout)
}

// UpdatedLabel formats the last successful refresh, e.g. "Updated 7:42 PM".
func UpdatedLabel(t time.Time, loc *time.Location) string {
	return "Updated " + t.In(orLocal(loc)).Format(UpdatedLayout)
}

// ResolveLocation loads an IANA zone name, falling back to the host's local zone.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

func orLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
