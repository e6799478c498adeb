// Package tui is the interactive terminal view of the time tracker.
package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"time-tracker/client/core"
)

type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeEdit
	modeSearch
	modeConfirm
)

const (
	fieldCategory = iota
	fieldMinutes
	fieldDescription
	fieldCount
)

type Model struct {
	tracker core.Tracker
	timeout time.Duration
	keys    KeyMap
	styles  Styles

	width  int
	height int

	mode   mode
	cursor int

	entries []core.Entry
	stats   core.Stats
	err     error
	status  string

	// add and edit share the inputs; editID is the row being edited
	inputs [fieldCount]textinput.Model
	focus  int
	editID int64

	search    textinput.Model
	searchSeq uint64
}

type Option func(*Model)

func WithTimeout(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.timeout = d
		}
	}
}

func New(tracker core.Tracker, opts ...Option) Model {
	m := Model{
		tracker: tracker,
		timeout: defaultTimeout,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		stats:   core.Stats{Week: map[string]int64{}, Month: map[string]int64{}},
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.inputs[fieldCategory] = newInput("Category (e.g. Study)", 64)
	m.inputs[fieldMinutes] = newInput("Minutes (e.g. 60)", 10)
	m.inputs[fieldDescription] = newInput("Description (optional)", 128)
	m.search = newInput("Search category or description...", 100)

	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadStats(), m.loadEntries(m.searchSeq, m.search.Value()))
}

// refresh reloads stats and the list for the current search.
func (m *Model) refresh() tea.Cmd {
	m.searchSeq++
	return tea.Batch(m.loadStats(), m.loadEntries(m.searchSeq, m.search.Value()))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateForm(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateNormal(msg)
		}

	case entriesLoadedMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.entries = msg.entries
		if m.cursor >= len(m.entries) {
			m.cursor = max(len(m.entries)-1, 0)
		}
		return m, nil

	case statsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.stats = msg.stats
		return m, nil

	case entrySavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.updated {
			m.status = fmt.Sprintf("Updated entry %d", msg.entry.ID)
		} else {
			m.status = fmt.Sprintf("Added %s (%s)", msg.entry.Category, core.FormatMinutes(msg.entry.Minutes))
		}
		m.err = nil
		m.closeForm()
		return m, m.refresh()

	case entriesDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = fmt.Sprintf("Deleted %d entries", msg.deleted)
		m.err = nil
		return m, m.refresh()
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		m.openForm(modeAdd, core.EntryForm{})
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if len(m.entries) == 0 {
			return m, nil
		}
		e := m.entries[m.cursor]
		m.editID = e.ID
		m.openForm(modeEdit, core.FormFromEntry(e))

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.search.Focus()

	case key.Matches(msg, m.keys.Purge):
		m.mode = modeConfirm

	case key.Matches(msg, m.keys.Refresh):
		m.err = nil
		return m, m.refresh()

	case key.Matches(msg, m.keys.Cancel):
		if m.search.Value() != "" {
			m.search.SetValue("")
			return m, m.refresh()
		}
	}
	return m, nil
}

func (m *Model) openForm(md mode, f core.EntryForm) {
	m.mode = md
	m.err = nil
	m.status = ""
	m.inputs[fieldCategory].SetValue(f.Category)
	m.inputs[fieldMinutes].SetValue(f.Minutes)
	m.inputs[fieldDescription].SetValue(f.Description)
	m.setFocus(fieldCategory)
}

func (m *Model) closeForm() {
	m.mode = modeNormal
	m.editID = 0
	for i := range m.inputs {
		m.inputs[i].Blur()
		m.inputs[i].SetValue("")
	}
}

func (m *Model) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m Model) form() core.EntryForm {
	return core.EntryForm{
		Category:    m.inputs[fieldCategory].Value(),
		Minutes:     m.inputs[fieldMinutes].Value(),
		Description: m.inputs[fieldDescription].Value(),
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeForm()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		f := m.form()
		if err := f.Validate(); err != nil {
			m.err = err
			return m, nil
		}
		if m.mode == modeEdit {
			return m, m.updateEntry(m.editID, f)
		}
		return m, m.addEntry(f)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// updateSearch refetches on every change of the query.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.mode = modeNormal
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeNormal
		m.search.Blur()
		if m.search.Value() == "" {
			return m, nil
		}
		m.search.SetValue("")
		return m, m.refresh()
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}

	m.searchSeq++
	m.cursor = 0
	return m, tea.Batch(cmd, m.loadEntries(m.searchSeq, m.search.Value()))
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	if key.Matches(msg, m.keys.Confirm) {
		return m, m.deleteAll()
	}
	m.status = "Delete cancelled"
	return m, nil
}

// Err is the last error shown to the user, if any.
func (m Model) Err() error {
	return m.err
}

func errText(err error) string {
	var apiErr *core.APIError
	switch {
	case errors.As(err, &apiErr):
		return "Error: " + apiErr.Error()
	case errors.Is(err, core.ErrUnavailable):
		return "Error: cannot reach the server"
	default:
		return "Error: " + err.Error()
	}
}
