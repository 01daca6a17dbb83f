package viewer

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// tapMaxDuration separates a tap from a press-and-hold: shorter presses
// navigate by zone, longer ones only suspend while held.
const tapMaxDuration = 400 * time.Millisecond

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}

	// Modal states first: each owns the keyboard while up.
	if m.reply.focused {
		return m.handleReplyKey(msg)
	}

	if m.confirmDelete {
		switch msg.String() {
		case "y":
			return m.confirmDeleteNow()
		case "n", "esc":
			return m.cancelDelete()
		}
		return m, nil
	}

	if m.viewers.open {
		switch {
		case key.Matches(msg, m.keys.Viewers), msg.String() == "esc", msg.String() == "q":
			return m.closeViewers()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Close), msg.String() == "q":
		return m.close()

	case key.Matches(msg, m.keys.Advance):
		return m.advance()

	case key.Matches(msg, m.keys.Retreat):
		return m.retreat()

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, m.syncClock()

	case key.Matches(msg, m.keys.Reply):
		return m.focusReply()

	case key.Matches(msg, m.keys.Viewers):
		return m.openViewers()

	case key.Matches(msg, m.keys.Delete):
		return m.requestDelete()
	}

	// 1..6 send one-tap reactions.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '6' {
		return m.sendReaction(reactionSet[s[0]-'1'])
	}

	return m, nil
}

// handleMouseMsg implements press-and-hold suspension and the tap zones.
// Press starts a hold; release clears it, and a short press counts as a
// tap: the left third of the viewport retreats, the right third advances.
// Taps funnel into the same advance/retreat transitions as the keyboard.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.closed || m.reply.focused || m.confirmDelete || m.viewers.open {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.hold = true
		m.pressActive = true
		m.pressedAt = time.Now()
		return m, m.syncClock()

	case tea.MouseActionRelease:
		if !m.pressActive {
			return m, nil
		}
		held := time.Since(m.pressedAt)
		m.hold = false
		m.pressActive = false

		if held < tapMaxDuration && m.width > 0 {
			switch {
			case msg.X < m.width/3:
				return m.retreat()
			case msg.X >= m.width*2/3:
				return m.advance()
			}
		}
		return m, m.syncClock()
	}

	return m, nil
}
