package viewer

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashmitb/unistory/domain"
)

// loadCmd resolves the active item's ready state. Text cards only wait for
// a settle delay so the layout paints before the clock starts; images and
// videos block on the media probe. Every result is tagged with the item it
// was issued for.
func (m Model) loadCmd(item domain.Item) tea.Cmd {
	if item.Kind == domain.KindText {
		itemID := item.ID
		return tea.Tick(textSettleDelay, func(time.Time) tea.Msg {
			return mediaReadyMsg{ItemID: itemID}
		})
	}

	media := m.media
	return func() tea.Msg {
		durationMs, err := media.Probe(context.Background(), item)
		return mediaReadyMsg{ItemID: item.ID, DurationMs: durationMs, Err: err}
	}
}

// handleMediaReady applies a load result. Stale results from a previous
// item are dropped. Load errors are non-fatal: the loader flag clears, a
// notice surfaces, and playback runs the full fallback duration rather
// than skipping the item. There is no automatic retry.
func (m Model) handleMediaReady(msg mediaReadyMsg) (Model, tea.Cmd) {
	if m.closed || msg.ItemID != m.currentItem().ID {
		return m, nil
	}

	m.loader.loading = false

	var cmds []tea.Cmd
	if msg.Err != nil {
		m.loader.failed = true
		cmds = append(cmds, m.setNotice("Media failed to load, playing through", true))
	} else if m.currentItem().Kind == domain.KindVideo {
		m.clock.setVideoDuration(msg.DurationMs)
	}

	if cmd := m.syncClock(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}
