package dateutil

import "time"

// StartOfDay strips the time-of-day component, keeping the location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether t falls on the same calendar date as now.
func IsToday(t, now time.Time) bool {
	return SameDay(t, now)
}

// IsPastDay reports whether t's calendar date is strictly before now's.
// Today does not count as past.
func IsPastDay(t, now time.Time) bool {
	return StartOfDay(t).Before(StartOfDay(now))
}

// AddDays shifts t forward by the given number of calendar days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// DateOnly formats t as a calendar date without time-of-day.
func DateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}
