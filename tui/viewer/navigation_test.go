package viewer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashmitb/unistory/domain"
)

func TestAdvanceWalksAcrossUsersThenCloses(t *testing.T) {
	seqs := makeSequences(map[string]int{"alice": 3, "bob": 2}, "alice", "bob")
	m := newTestModel(t, seqs, "me")

	want := [][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 1}}
	for i, w := range want {
		m, _ = m.advance()
		if u, it := m.Cursor(); u != w[0] || it != w[1] {
			t.Fatalf("advance %d: got (%d,%d) want (%d,%d)", i+1, u, it, w[0], w[1])
		}
		if m.Closed() {
			t.Fatalf("advance %d closed the session early", i+1)
		}
	}

	m, cmd := m.advance()
	if !m.Closed() {
		t.Fatalf("advancing past the last item must close the session")
	}
	if cmd == nil {
		t.Fatalf("close must emit ClosedMsg")
	}
	if _, ok := cmd().(ClosedMsg); !ok {
		t.Fatalf("close emitted %T, want ClosedMsg", cmd())
	}
}

func TestRetreatNoOpAtOrigin(t *testing.T) {
	seqs := makeSequences(map[string]int{"alice": 3, "bob": 2}, "alice", "bob")
	m := newTestModel(t, seqs, "me")

	m, cmd := m.retreat()
	if u, i := m.Cursor(); u != 0 || i != 0 {
		t.Fatalf("retreat at origin moved to (%d,%d)", u, i)
	}
	if cmd != nil {
		t.Fatalf("retreat at origin should issue nothing")
	}
}

func TestRetreatCrossesToPreviousUserLastItem(t *testing.T) {
	seqs := makeSequences(map[string]int{"alice": 3, "bob": 2}, "alice", "bob")
	m := newTestModel(t, seqs, "me")
	m.userIndex = 1
	m.itemIndex = 0

	m, _ = m.retreat()
	if u, i := m.Cursor(); u != 0 || i != 2 {
		t.Fatalf("retreat across boundary: got (%d,%d) want (0,2)", u, i)
	}
}

func TestActivateItemResetsTransientState(t *testing.T) {
	seqs := makeSequences(map[string]int{"alice": 2}, "alice")
	m := settled(t, newTestModel(t, seqs, "me"))

	m.reply.input.SetValue("half a thought")
	m.reply.composing = true
	m.paused = true
	m.hold = true
	m.confirmDelete = true
	m.viewers = viewersState{open: true, itemID: "alice/0"}
	prevClockGen := m.clock.gen
	prevDebounceGen := m.reply.debounceGen

	m, _ = m.advance()

	if m.reply.input.Value() != "" || m.reply.composing {
		t.Fatalf("draft must not survive an item change")
	}
	if m.paused || m.hold || m.confirmDelete || m.viewers.open {
		t.Fatalf("transient state survived activation")
	}
	if m.clock.gen <= prevClockGen {
		t.Fatalf("clock generation not bumped on activation")
	}
	if m.reply.debounceGen <= prevDebounceGen {
		t.Fatalf("debounce generation not bumped on activation")
	}
	if m.clock.state != clockLoading || !m.loader.loading {
		t.Fatalf("new item must start loading")
	}
}

func TestActivationRecordsViewForOthersOnly(t *testing.T) {
	seqs := domain.SequenceList{
		{OwnerID: "me", OwnerDisplay: "me", Items: []domain.Item{makeItem("mine-1", "me", domain.KindText)}},
		{OwnerID: "bob", OwnerDisplay: "bob", Items: []domain.Item{makeItem("bob-1", "bob", domain.KindText)}},
	}
	story := &stubStory{}
	m, err := New(story, &stubConversation{}, stubMedia{}, seqs, "me", 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if cmd := m.recordViewCmd(m.currentItem()); cmd != nil {
		t.Fatalf("own items must not be view-recorded")
	}

	m, _ = m.advance()
	cmd := m.recordViewCmd(m.currentItem())
	if cmd == nil {
		t.Fatalf("someone else's item should be view-recorded")
	}
	if msg := cmd().(viewRecordedMsg); msg.ItemID != "bob-1" {
		t.Fatalf("recorded wrong item: %s", msg.ItemID)
	}
	if len(story.viewed) != 1 || story.viewed[0] != "bob-1" {
		t.Fatalf("record-view call not issued: %v", story.viewed)
	}
}

func TestClosedSessionIgnoresEverything(t *testing.T) {
	seqs := makeSequences(map[string]int{"alice": 1}, "alice")
	m := settled(t, newTestModel(t, seqs, "me"))
	m, _ = m.close()

	m, cmd := m.Update(clockTickMsg{Gen: m.clock.gen})
	if cmd != nil {
		t.Fatalf("closed session scheduled a tick")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if u, i := m.Cursor(); u != 0 || i != 0 {
		t.Fatalf("closed session moved its cursor")
	}
}

func TestNewRejectsEmptyCatalog(t *testing.T) {
	if _, err := New(&stubStory{}, &stubConversation{}, stubMedia{}, nil, "me", 0); err == nil {
		t.Fatalf("empty catalog must be rejected")
	}
	seqs := domain.SequenceList{{OwnerID: "alice", OwnerDisplay: "alice"}}
	if _, err := New(&stubStory{}, &stubConversation{}, stubMedia{}, seqs, "me", 0); err == nil {
		t.Fatalf("a sequence with no items must be rejected")
	}
}
