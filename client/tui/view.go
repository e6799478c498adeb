package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"time-tracker/client/core"
)

const timestampLayout = "Jan 2 2006 15:04"

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Personal Time Tracker"))
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString(m.viewForm("Add entry"))
	case modeEdit:
		b.WriteString(m.viewForm(fmt.Sprintf("Edit entry %d", m.editID)))
	case modeConfirm:
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("Delete ALL entries? This cannot be undone. [y/N]"))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(errText(m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.viewStats())
	b.WriteString(m.viewEntries())
	b.WriteString(m.viewHelp())

	return b.String()
}

func (m Model) viewForm(title string) string {
	var b strings.Builder

	b.WriteString(m.styles.Section.Render(title))
	b.WriteString("\n")
	labels := [fieldCount]string{"Category", "Minutes", "Description"}
	for i, in := range m.inputs {
		b.WriteString(m.styles.Label.Render(labels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewStats() string {
	var b strings.Builder

	windows := []struct {
		title  string
		totals map[string]int64
	}{
		{"This week", m.stats.Week},
		{"This month", m.stats.Month},
	}
	for _, w := range windows {
		b.WriteString(m.styles.Section.Render(w.title))
		b.WriteString("\n")
		rows := core.Breakdown(w.totals)
		if len(rows) == 0 {
			b.WriteString(m.styles.Muted.Render("  No entries"))
			b.WriteString("\n")
			continue
		}
		for _, r := range rows {
			fmt.Fprintf(&b, "  %s %s\n", m.styles.Category.Render(r.Category+":"), core.Hours(r.Minutes))
		}
	}
	return b.String()
}

func (m Model) viewEntries() string {
	var b strings.Builder

	title := "Entries"
	if q := m.search.Value(); q != "" {
		title = fmt.Sprintf("Entries matching %q", q)
	}
	b.WriteString(m.styles.Section.Render(title))
	b.WriteString("\n")

	if m.mode == modeSearch {
		b.WriteString("  ")
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(m.styles.Muted.Render("  No entries"))
		b.WriteString("\n")
		return b.String()
	}

	for i, e := range m.entries {
		line := fmt.Sprintf("%s %d mins", e.Category+":", e.Minutes)
		if e.Description != "" {
			line += " - " + e.Description
		}
		line += "  " + m.styles.Muted.Render(e.Timestamp.Local().Format(timestampLayout))

		if i == m.cursor && m.mode == modeNormal {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewHelp() string {
	bindings := m.keys.normalHelp()
	if m.mode == modeAdd || m.mode == modeEdit {
		bindings = m.keys.formHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		parts = append(parts, helpText(k))
	}
	return m.styles.Help.Render(strings.Join(parts, " • "))
}

func helpText(k key.Binding) string {
	h := k.Help()
	return h.Key + " " + h.Desc
}
