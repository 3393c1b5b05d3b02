package engine

import "time"

// DateLayout renders a calendar date the way the stored markers expect
// ("Sat Oct 17 2026"). Dates are compared as strings, never parsed.
const DateLayout = "Mon Jan 02 2006"

// Clock supplies the current time. Tests inject a fixed one.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the local wall clock.
var SystemClock Clock = systemClock{}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// DateString formats t as a calendar date in t's location.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

func today(c Clock) string {
	return DateString(c.Now())
}

func yesterday(c Clock) string {
	return DateString(c.Now().AddDate(0, 0, -1))
}
