// Package tray renders the story tray: one ring per user with stories,
// the session owner's own ring first. Selecting a ring opens the viewer
// positioned at that user.
package tray

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashmitb/unistory/domain"
	"github.com/ashmitb/unistory/tui/common"
)

// OpenMsg asks the root model to open the viewer at the given user index.
type OpenMsg struct {
	UserIndex int
}

// RefreshMsg asks the root model to refetch the story catalog.
type RefreshMsg struct{}

// Model holds the tray's selection state.
type Model struct {
	sequences      domain.SequenceList
	sessionOwnerID string
	cursor         int
	keys           common.KeyMap
	width          int
	height         int
}

// New creates a tray over the given catalog.
func New(sequences domain.SequenceList, sessionOwnerID string) Model {
	return Model{
		sequences:      sequences,
		sessionOwnerID: sessionOwnerID,
		keys:           common.DefaultKeyMap(),
	}
}

// SetSequences replaces the catalog, clamping the selection. The viewer
// hands back a catalog with deletions applied; the tray re-renders from it.
func (m *Model) SetSequences(sequences domain.SequenceList) {
	m.sequences = sequences
	if m.cursor >= len(sequences) {
		m.cursor = max(0, len(sequences)-1)
	}
}

// Update handles tray input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.sequences)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Enter):
			if len(m.sequences) == 0 {
				return m, nil
			}
			idx := m.cursor
			return m, func() tea.Msg { return OpenMsg{UserIndex: idx} }
		case key.Matches(msg, m.keys.Refresh):
			return m, func() tea.Msg { return RefreshMsg{} }
		}
	}
	return m, nil
}

// Cursor returns the selected ring index.
func (m Model) Cursor() int {
	return m.cursor
}

// Sequences returns the catalog the tray is showing.
func (m Model) Sequences() domain.SequenceList {
	return m.sequences
}
