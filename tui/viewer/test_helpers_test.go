package viewer

import (
	"context"
	"testing"
	"time"

	"github.com/ashmitb/unistory/domain"
)

type stubStory struct {
	viewed     []string
	deleted    []string
	viewers    []domain.ViewRecord
	viewersErr error
	deleteErr  error
}

func (s *stubStory) Sequences(context.Context) (domain.SequenceList, error) { return nil, nil }
func (s *stubStory) RecordView(_ context.Context, itemID string) error {
	s.viewed = append(s.viewed, itemID)
	return nil
}
func (s *stubStory) Viewers(context.Context, string) ([]domain.ViewRecord, error) {
	return s.viewers, s.viewersErr
}
func (s *stubStory) Delete(_ context.Context, itemID string) error {
	s.deleted = append(s.deleted, itemID)
	return s.deleteErr
}

type stubConversation struct {
	resolved   []string
	sentBodies []string
	resolveErr error
	sendErr    error
}

func (c *stubConversation) ResolveDirect(_ context.Context, counterpartyID string) (string, error) {
	c.resolved = append(c.resolved, counterpartyID)
	return "conv-" + counterpartyID, c.resolveErr
}
func (c *stubConversation) SendMessage(_ context.Context, _ string, body string) error {
	c.sentBodies = append(c.sentBodies, body)
	return c.sendErr
}

type stubMedia struct {
	durationMs int
	err        error
}

func (s stubMedia) Probe(context.Context, domain.Item) (int, error) {
	return s.durationMs, s.err
}

func makeItem(id, ownerID string, kind domain.ItemKind) domain.Item {
	return domain.Item{
		ID:        id,
		OwnerID:   ownerID,
		Kind:      kind,
		CreatedAt: time.Now().Add(-time.Hour),
	}
}

// makeSequences builds one text-item sequence per owner with the given
// item counts. Item IDs read owner/index, e.g. "alice/0".
func makeSequences(counts map[string]int, order ...string) domain.SequenceList {
	var out domain.SequenceList
	for _, owner := range order {
		seq := domain.UserSequence{OwnerID: owner, OwnerDisplay: owner}
		for i := 0; i < counts[owner]; i++ {
			seq.Items = append(seq.Items, makeItem(owner+"/"+string(rune('0'+i)), owner, domain.KindText))
		}
		out = append(out, seq)
	}
	return out
}

func newTestModel(t *testing.T, sequences domain.SequenceList, sessionOwnerID string) Model {
	t.Helper()
	m, err := New(&stubStory{}, &stubConversation{}, stubMedia{}, sequences, sessionOwnerID, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.width = 100
	m.height = 30
	return m
}

// settled completes the active item's load so the clock is playing.
func settled(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = m.handleMediaReady(mediaReadyMsg{ItemID: m.currentItem().ID})
	if m.clock.state != clockPlaying {
		t.Fatalf("clock should be playing after load, state=%d", m.clock.state)
	}
	return m
}

// tick delivers one on-generation clock tick.
func tick(m Model) (Model, bool) {
	before := m.userIndex<<16 | m.itemIndex
	m, _ = m.handleClockTick(clockTickMsg{Gen: m.clock.gen})
	after := m.userIndex<<16 | m.itemIndex
	return m, before != after || m.closed
}
