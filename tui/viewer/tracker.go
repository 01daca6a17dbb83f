package viewer

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashmitb/unistory/domain"
)

// recordViewCmd fires exactly one record-view call per activation of
// someone else's item. The server dedupes repeats; the client only
// guarantees it does not re-call within one activation.
func (m Model) recordViewCmd(item domain.Item) tea.Cmd {
	if item.OwnerID == m.sessionOwnerID {
		return nil
	}
	story := m.story
	itemID := item.ID
	return func() tea.Msg {
		err := story.RecordView(context.Background(), itemID)
		return viewRecordedMsg{ItemID: itemID, Err: err}
	}
}

// handleViewRecorded swallows the record-view outcome. View tracking is
// best-effort telemetry and must never block or alter playback; the infra
// client already wrote any failure to the debug log.
func (m Model) handleViewRecorded(viewRecordedMsg) (Model, tea.Cmd) {
	return m, nil
}

// openViewers lazily fetches who saw the active own item and pauses
// playback while the panel is up.
func (m Model) openViewers() (Model, tea.Cmd) {
	if !m.onOwnItem() {
		return m, nil
	}
	item := m.currentItem()
	m.viewers = viewersState{open: true, loading: true, itemID: item.ID}
	m.paused = true
	story := m.story
	itemID := item.ID
	cmds := []tea.Cmd{
		func() tea.Msg {
			records, err := story.Viewers(context.Background(), itemID)
			return viewersLoadedMsg{ItemID: itemID, Records: records, Err: err}
		},
	}
	if cmd := m.syncClock(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// closeViewers discards the fetched list; nothing is cached across items.
func (m Model) closeViewers() (Model, tea.Cmd) {
	m.viewers = viewersState{}
	m.paused = false
	return m, m.syncClock()
}

// handleViewersLoaded fills the open panel. Results for a different item
// or an already-closed panel are discarded.
func (m Model) handleViewersLoaded(msg viewersLoadedMsg) (Model, tea.Cmd) {
	if m.closed || !m.viewers.open || msg.ItemID != m.viewers.itemID {
		return m, nil
	}
	m.viewers.loading = false
	m.viewers.records = msg.Records
	m.viewers.err = msg.Err
	return m, nil
}
