package testutil

import (
	"time"

	"sportsbase/internal/timeutil"
)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustEventTime parses an upstream event date (RFC3339 or minute precision) or panics.
func MustEventTime(v string) time.Time {
	t, ok := timeutil.ParseEventTime(v)
	if !ok {
		panic("testutil: invalid event time " + v)
	}
	return t
}
