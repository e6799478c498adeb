package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title    lipgloss.Style
	Section  lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Category lipgloss.Style
	Error    lipgloss.Style
	Status   lipgloss.Style
	Label    lipgloss.Style
	Help     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Section:  lipgloss.NewStyle().Bold(true).MarginTop(1),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Category: lipgloss.NewStyle().Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		Label:    lipgloss.NewStyle().Width(13),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
	}
}
