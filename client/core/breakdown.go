package core

import (
	"fmt"
	"sort"
)

type CategoryTotal struct {
	Category string
	Minutes  int64
}

// Breakdown orders totals by minutes descending, then by category name.
func Breakdown(totals map[string]int64) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(totals))
	for c, m := range totals {
		out = append(out, CategoryTotal{Category: c, Minutes: m})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Hours renders minutes as hours with two decimals, e.g. 75 -> "1.25 hrs".
func Hours(minutes int64) string {
	return fmt.Sprintf("%.2f hrs", float64(minutes)/60)
}

// FormatMinutes renders minutes like "45m", "2h" or "1h 30m".
func FormatMinutes(minutes int64) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
