// Package reltime formats publication timestamps relative to a
// reference time, the way article cards display them.
package reltime

import (
	"fmt"
	"time"
)

// Format renders ts relative to now:
//   - under an hour: "X minutes ago" (including "0 minutes ago")
//   - later the same calendar day: "X hours ago"
//   - one calendar day back: "Yesterday"
//   - two to six days back: "X days ago"
//   - a week or more: absolute date, e.g. "Dec 1, 2023"
//
// Timestamps in the future are clamped to "0 minutes ago".
func Format(ts, now time.Time) string {
	diff := now.Sub(ts)
	if diff < 0 {
		diff = 0
	}

	if diff < time.Hour {
		return plural(int(diff.Minutes()), "minute")
	}

	switch days := calendarDays(ts, now); {
	case days == 0:
		return plural(int(diff.Hours()), "hour")
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return ts.Format("Jan 2, 2006")
	}
}

// calendarDays counts midnights crossed between ts and now in now's
// location, so "Yesterday" tracks the calendar rather than 24h blocks.
func calendarDays(ts, now time.Time) int {
	loc := now.Location()
	ts = ts.In(loc)
	a := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, loc)
	b := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return int(b.Sub(a).Hours() / 24)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
