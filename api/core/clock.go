package core

import (
	"fmt"
	"strings"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

// ParseWeekStart accepts "sunday" or "monday" (case-insensitive).
func ParseWeekStart(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("invalid week start %q: want sunday or monday", s)
	}
}

// StartOfDay returns midnight of the day containing t, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the most recent weekStart day on or before t.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	back := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -back)
}

// StartOfMonth returns midnight of the 1st of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Windows returns the inclusive starts of the current week and month for now in loc.
func Windows(now time.Time, loc *time.Location, weekStart time.Weekday) (week, month time.Time) {
	if loc != nil {
		now = now.In(loc)
	}
	return StartOfWeek(now, weekStart), StartOfMonth(now)
}
