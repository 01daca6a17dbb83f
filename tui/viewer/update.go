package viewer

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages for the viewer. Everything serializes through
// here; once the session is closed only the ClosedMsg emission survives.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reply.input.Width = max(20, msg.Width-8)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clockTickMsg:
		return m.handleClockTick(msg)

	case mediaReadyMsg:
		return m.handleMediaReady(msg)

	case debounceFiredMsg:
		return m.handleDebounceFired(msg)

	case viewRecordedMsg:
		return m.handleViewRecorded(msg)

	case viewersLoadedMsg:
		return m.handleViewersLoaded(msg)

	case sendResultMsg:
		return m.handleSendResult(msg)

	case deleteResultMsg:
		return m.handleDeleteResult(msg)

	case noticeExpiredMsg:
		if msg.Gen == m.noticeGen {
			m.notice = ""
			m.noticeErr = false
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}
