package viewer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// advance moves to the next item, crossing into the next user's sequence
// at a boundary, and closes the session past the last item of the last
// user. Automatic completion, tap zones, and ArrowRight all come through
// here; there is no separate manual-jump path.
func (m Model) advance() (Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}
	if m.itemIndex+1 < len(m.currentSequence().Items) {
		m.itemIndex++
		return m, m.activateItem()
	}
	if m.userIndex+1 < len(m.sequences) {
		m.userIndex++
		m.itemIndex = 0
		return m, m.activateItem()
	}
	return m.close()
}

// retreat moves to the previous item, crossing into the previous user's
// last item at a boundary. Before the first item of the first user it is
// a no-op.
func (m Model) retreat() (Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}
	if m.itemIndex > 0 {
		m.itemIndex--
		return m, m.activateItem()
	}
	if m.userIndex > 0 {
		m.userIndex--
		m.itemIndex = len(m.currentSequence().Items) - 1
		return m, m.activateItem()
	}
	return m, nil
}

// close ends the session. All generations are bumped so pending ticks and
// debounce timers die, and late async results are dropped by the closed
// flag before they can touch the cursor.
func (m Model) close() (Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}
	m.closed = true
	m.clock.gen++
	m.reply.debounceGen++
	m.noticeGen++
	sequences := m.sequences
	return m, func() tea.Msg {
		return ClosedMsg{Sequences: sequences}
	}
}

// activateItem is the single item-change path. It atomically resets the
// clock, loader, draft, and pending timers for the newly active item, then
// starts the media load and fires the view record.
func (m *Model) activateItem() tea.Cmd {
	item := m.currentItem()

	m.clock = newClock(m.clock.gen)
	m.loader = loadState{loading: true}

	m.reply.input.SetValue("")
	m.reply.input.Blur()
	m.reply.focused = false
	m.reply.composing = false
	m.reply.sending = false
	m.reply.debounceGen++

	m.hold = false
	m.paused = false
	m.pressActive = false
	m.confirmDelete = false
	m.deleting = false
	m.viewers = viewersState{}

	cmds := []tea.Cmd{m.loadCmd(item)}
	if cmd := m.recordViewCmd(item); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
