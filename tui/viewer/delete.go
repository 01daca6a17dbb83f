package viewer

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashmitb/unistory/domain"
)

// requestDelete opens the y/n confirmation for the active own item and
// pauses playback while it is up.
func (m Model) requestDelete() (Model, tea.Cmd) {
	if !m.onOwnItem() {
		return m, nil
	}
	m.confirmDelete = true
	m.paused = true
	return m, m.syncClock()
}

// cancelDelete dismisses the confirmation, leaving everything unchanged.
func (m Model) cancelDelete() (Model, tea.Cmd) {
	m.confirmDelete = false
	m.paused = false
	return m, m.syncClock()
}

// confirmDeleteNow issues the delete call. The cursor stays put until the
// server confirms; deletion is irreversible from the engine's view.
func (m Model) confirmDeleteNow() (Model, tea.Cmd) {
	if !m.confirmDelete || m.deleting {
		return m, nil
	}
	m.deleting = true
	story := m.story
	itemID := m.currentItem().ID
	return m, func() tea.Msg {
		err := story.Delete(context.Background(), itemID)
		return deleteResultMsg{ItemID: itemID, Err: err}
	}
}

// handleDeleteResult removes the item from the in-memory sequence and
// re-derives the cursor: the next item by preference, the previous one
// when the last item was deleted, and session close when the sequence is
// empty. Failure leaves cursor and sequence untouched.
func (m Model) handleDeleteResult(msg deleteResultMsg) (Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}
	m.deleting = false
	m.confirmDelete = false

	if msg.Err != nil {
		m.paused = false
		var cmds []tea.Cmd
		cmds = append(cmds, m.setNotice("Delete failed: "+msg.Err.Error(), true))
		if cmd := m.syncClock(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	seq := m.currentSequence()
	if msg.ItemID != seq.Items[m.itemIndex].ID {
		// The cursor moved past the item while the call was in flight; the
		// catalog copy still has to drop it.
		m.removeItemEverywhere(msg.ItemID)
		m.paused = false
		return m, m.syncClock()
	}

	items := make([]domain.Item, 0, len(seq.Items)-1)
	items = append(items, seq.Items[:m.itemIndex]...)
	items = append(items, seq.Items[m.itemIndex+1:]...)

	if len(items) == 0 {
		// Nothing left in this ring: drop it from the catalog and end the
		// session.
		m.sequences = append(m.sequences[:m.userIndex:m.userIndex], m.sequences[m.userIndex+1:]...)
		return m.close()
	}

	m.sequences[m.userIndex].Items = items
	if m.itemIndex >= len(items) {
		m.itemIndex = len(items) - 1
	}
	return m, m.activateItem()
}

// removeItemEverywhere drops a deleted item from whichever sequence holds
// it without disturbing the cursor's current item.
func (m *Model) removeItemEverywhere(itemID string) {
	for si := range m.sequences {
		for ii, it := range m.sequences[si].Items {
			if it.ID != itemID {
				continue
			}
			items := append([]domain.Item{}, m.sequences[si].Items[:ii]...)
			m.sequences[si].Items = append(items, m.sequences[si].Items[ii+1:]...)
			if si == m.userIndex && ii < m.itemIndex {
				m.itemIndex--
			}
			return
		}
	}
}
