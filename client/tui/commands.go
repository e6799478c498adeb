package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"time-tracker/client/core"
)

type entriesLoadedMsg struct {
	seq     uint64
	entries []core.Entry
	err     error
}

type statsLoadedMsg struct {
	stats core.Stats
	err   error
}

type entrySavedMsg struct {
	entry   core.Entry
	updated bool
	err     error
}

type entriesDeletedMsg struct {
	deleted int64
	err     error
}

func (m Model) requestCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}

func (m Model) loadEntries(seq uint64, search string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()

		entries, err := m.tracker.ListEntries(ctx, search)
		return entriesLoadedMsg{seq: seq, entries: entries, err: err}
	}
}

func (m Model) loadStats() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()

		st, err := m.tracker.Stats(ctx)
		return statsLoadedMsg{stats: st, err: err}
	}
}

func (m Model) addEntry(f core.EntryForm) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()

		e, err := m.tracker.AddEntry(ctx, f)
		return entrySavedMsg{entry: e, err: err}
	}
}

func (m Model) updateEntry(id int64, f core.EntryForm) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()

		e, err := m.tracker.UpdateEntry(ctx, id, f)
		return entrySavedMsg{entry: e, updated: true, err: err}
	}
}

func (m Model) deleteAll() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()

		n, err := m.tracker.DeleteAll(ctx)
		return entriesDeletedMsg{deleted: n, err: err}
	}
}

const defaultTimeout = 5 * time.Second
