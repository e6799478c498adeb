package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"time-tracker/client/core"
)

const whenLayout = "2006-01-02 15:04"

func writeEntries(w io.Writer, entries []core.Entry, loc *time.Location) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries")
		return
	}

	writeRow(w, "%-4s %-16s %8s  %-16s  %s", "ID", "CATEGORY", "MINUTES", "WHEN", "DESCRIPTION")
	for _, e := range entries {
		writeRow(w, "%-4d %-16s %8d  %-16s  %s",
			e.ID, e.Category, e.Minutes, e.Timestamp.In(loc).Format(whenLayout), e.Description)
	}
}

func writeRow(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, strings.TrimRight(fmt.Sprintf(format, args...), " "))
}

func describeEntry(e core.Entry) string {
	s := fmt.Sprintf("#%d %s %d mins", e.ID, e.Category, e.Minutes)
	if e.Description != "" {
		s += " - " + e.Description
	}
	return s
}

// renderStats is the text printed by `stats` and copied by `stats --copy`.
func renderStats(st core.Stats, loc *time.Location) string {
	var b strings.Builder

	windows := []struct {
		title  string
		start  time.Time
		totals map[string]int64
	}{
		{"This week", st.WeekStart, st.Week},
		{"This month", st.MonthStart, st.Month},
	}
	for i, win := range windows {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (since %s)\n", win.title, win.start.In(loc).Format("2006-01-02"))

		rows := core.Breakdown(win.totals)
		if len(rows) == 0 {
			b.WriteString("  No entries\n")
			continue
		}
		for _, r := range rows {
			fmt.Fprintf(&b, "  %-16s %s\n", r.Category, core.Hours(r.Minutes))
		}
	}
	return b.String()
}

func renderHealth(h core.Health) string {
	var b strings.Builder

	fmt.Fprintf(&b, "status: %s\n", h.Status)
	if h.Time != "" {
		fmt.Fprintf(&b, "time:   %s\n", h.Time)
	}
	names := make([]string, 0, len(h.Services))
	for name := range h.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %s\n", name, h.Services[name])
	}
	return b.String()
}
