package viewer

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashmitb/unistory/app"
	"github.com/ashmitb/unistory/domain"
	"github.com/ashmitb/unistory/wire"
)

// debounceWindow is how long the composing state outlives the last
// keystroke.
const debounceWindow = 1500 * time.Millisecond

// focusReply opens the reply input. Own items never take replies.
func (m Model) focusReply() (Model, tea.Cmd) {
	if m.onOwnItem() {
		return m, m.setNotice("You can't reply to your own story", true)
	}
	m.reply.focused = true
	return m, m.reply.input.Focus()
}

// blurReply discards the draft and releases the composing suspension.
func (m *Model) blurReply() tea.Cmd {
	m.reply.input.SetValue("")
	m.reply.input.Blur()
	m.reply.focused = false
	m.reply.composing = false
	m.reply.debounceGen++
	return m.syncClock()
}

// handleReplyKey routes a keystroke into the draft. Any keystroke that
// leaves a non-empty draft marks composing and restarts the debounce
// timer; composing directly feeds the clock's suspension set, so typing
// always pauses autoplay.
func (m Model) handleReplyKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		cmd := m.blurReply()
		return m, cmd

	case "enter":
		return m.submitReply()
	}

	var inputCmd tea.Cmd
	m.reply.input, inputCmd = m.reply.input.Update(msg)

	var cmds []tea.Cmd
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	if m.reply.input.Value() != "" {
		m.reply.composing = true
		m.reply.debounceGen++
		gen := m.reply.debounceGen
		cmds = append(cmds, tea.Tick(debounceWindow, func(time.Time) tea.Msg {
			return debounceFiredMsg{Gen: gen}
		}))
	} else {
		// Draft deleted back to empty: no text means nothing is composing.
		m.reply.composing = false
		m.reply.debounceGen++
	}

	if cmd := m.syncClock(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleDebounceFired ends composing when no newer keystroke renewed the
// generation.
func (m Model) handleDebounceFired(msg debounceFiredMsg) (Model, tea.Cmd) {
	if m.closed || msg.Gen != m.reply.debounceGen || !m.reply.composing {
		return m, nil
	}
	m.reply.composing = false
	return m, m.syncClock()
}

// submitReply frames the draft into the wire envelope and sends it over
// the owner's direct conversation.
func (m Model) submitReply() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.reply.input.Value())
	if text == "" || m.reply.sending {
		return m, nil
	}
	m.reply.sending = true
	item := m.currentItem()
	return m, sendCmd(m.conv, item, text, false)
}

// sendReaction sends a one-tap emoji through the same channel with the
// reaction flag set. Hidden while a draft is non-empty, and never for own
// items.
func (m Model) sendReaction(emoji string) (Model, tea.Cmd) {
	if m.onOwnItem() || m.reply.input.Value() != "" {
		return m, nil
	}
	item := m.currentItem()
	return m, sendCmd(m.conv, item, emoji, true)
}

func sendCmd(conv app.ConversationService, item domain.Item, message string, reaction bool) tea.Cmd {
	return func() tea.Msg {
		body, err := frame(item, message, reaction)
		if err != nil {
			return sendResultMsg{ItemID: item.ID, Reaction: reaction, Err: err}
		}
		convID, err := conv.ResolveDirect(context.Background(), item.OwnerID)
		if err != nil {
			return sendResultMsg{ItemID: item.ID, Reaction: reaction, Err: err}
		}
		err = conv.SendMessage(context.Background(), convID, body)
		return sendResultMsg{ItemID: item.ID, Reaction: reaction, Err: err}
	}
}

func frame(item domain.Item, message string, reaction bool) (string, error) {
	if reaction {
		return wire.Reaction(item, message)
	}
	return wire.Reply(item, message)
}

// handleSendResult applies a send outcome. On failure the draft and the
// composing state survive so the user can retry; on success the draft is
// cleared. A result landing after the item changed only surfaces a notice:
// the draft it belonged to is already gone.
func (m Model) handleSendResult(msg sendResultMsg) (Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}

	stale := msg.ItemID != m.currentItem().ID
	if !stale && !msg.Reaction {
		m.reply.sending = false
	}

	if msg.Err != nil {
		if msg.Reaction {
			return m, m.setNotice("Reaction failed: "+msg.Err.Error(), true)
		}
		return m, m.setNotice("Reply failed, draft kept: "+msg.Err.Error(), true)
	}

	if msg.Reaction {
		return m, m.setNotice("Reaction sent", false)
	}
	var cmds []tea.Cmd
	if !stale {
		cmds = append(cmds, m.blurReply())
	}
	cmds = append(cmds, m.setNotice("Reply sent", false))
	return m, tea.Batch(cmds...)
}
