package viewer

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ashmitb/unistory/app"
	"github.com/ashmitb/unistory/domain"
	"github.com/ashmitb/unistory/tui/common"
)

// --- Messages ---

// ClosedMsg is sent when the viewer session ends: terminal advance past the
// last item, escape, or deleting the last own item. Sequences carries the
// catalog as the session left it (deletions applied) so the caller can
// re-render without refetching.
type ClosedMsg struct {
	Sequences domain.SequenceList
}

// clockTickMsg drives playback progress. Gen identifies the clock
// generation the tick was scheduled for; stale ticks are dropped and not
// rescheduled, which is how the tick timer gets fully stopped.
type clockTickMsg struct {
	Gen int
}

// mediaReadyMsg resolves an item's load wait. Carries the item ID it was
// issued for so results from a previous item are ignored.
type mediaReadyMsg struct {
	ItemID     string
	DurationMs int
	Err        error
}

// debounceFiredMsg ends the composing state when no keystroke renewed the
// generation within the debounce window.
type debounceFiredMsg struct {
	Gen int
}

// viewRecordedMsg reports the best-effort view-record call. Failures are
// silent; the message exists so in-flight calls have somewhere to land.
type viewRecordedMsg struct {
	ItemID string
	Err    error
}

// viewersLoadedMsg delivers the viewer list for an own item.
type viewersLoadedMsg struct {
	ItemID  string
	Records []domain.ViewRecord
	Err     error
}

// sendResultMsg reports a reply or reaction send attempt.
type sendResultMsg struct {
	ItemID   string
	Reaction bool
	Err      error
}

// deleteResultMsg reports an item deletion attempt.
type deleteResultMsg struct {
	ItemID string
	Err    error
}

// noticeExpiredMsg clears the transient notice line.
type noticeExpiredMsg struct {
	Gen int
}

// --- State ---

type loadState struct {
	loading bool
	failed  bool
}

type replyState struct {
	input       textinput.Model
	focused     bool
	composing   bool
	debounceGen int
	sending     bool
}

type viewersState struct {
	open    bool
	loading bool
	itemID  string
	records []domain.ViewRecord
	err     error
}

// Model is the story playback engine. One Model is one viewer session; it
// owns the cursor, the clock, the draft, and all pending timers.
type Model struct {
	story app.StoryService
	conv  app.ConversationService
	media app.MediaService

	sessionOwnerID string
	sequences      domain.SequenceList
	userIndex      int
	itemIndex      int

	clock  playbackClock
	loader loadState
	reply  replyState

	hold   bool // pointer button held down
	paused bool // space toggle, confirm prompts, viewers panel

	pressActive bool
	pressedAt   time.Time

	viewers       viewersState
	confirmDelete bool
	deleting      bool

	closed bool

	notice    string
	noticeErr bool
	noticeGen int

	width  int
	height int

	keys    common.KeyMap
	spinner spinner.Model
	bar     progress.Model
}

// reactionSet maps the 1..6 keys to one-tap reactions.
var reactionSet = []string{"❤️", "🔥", "😂", "😮", "😢", "👏"}

// New creates a viewer session positioned at the given user's first item.
// Every sequence must be non-empty; the caller owns that precondition.
func New(story app.StoryService, conv app.ConversationService, media app.MediaService,
	sequences domain.SequenceList, sessionOwnerID string, startUser int) (Model, error) {

	if len(sequences) == 0 {
		return Model{}, domain.ErrEmptySequence
	}
	for _, seq := range sequences {
		if len(seq.Items) == 0 {
			return Model{}, domain.ErrEmptySequence
		}
	}
	if startUser < 0 || startUser >= len(sequences) {
		startUser = 0
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#8AADF4"))

	ti := textinput.New()
	ti.Placeholder = "Send a reply..."
	ti.CharLimit = 500

	bar := progress.New(
		progress.WithSolidFill("#8AADF4"),
		progress.WithoutPercentage(),
	)

	return Model{
		story:          story,
		conv:           conv,
		media:          media,
		sessionOwnerID: sessionOwnerID,
		sequences:      sequences,
		userIndex:      startUser,
		clock:          newClock(0),
		loader:         loadState{loading: true},
		keys:           common.DefaultKeyMap(),
		spinner:        s,
		bar:            bar,
		reply:          replyState{input: ti},
	}, nil
}

// Init starts the spinner, the first item's media load, and its view
// record. New already put the clock and loader in the loading state, so
// no ticking starts until the load resolves.
func (m Model) Init() tea.Cmd {
	item := m.currentItem()
	cmds := []tea.Cmd{m.spinner.Tick, m.loadCmd(item)}
	if cmd := m.recordViewCmd(item); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// currentSequence returns the active user's sequence.
func (m Model) currentSequence() domain.UserSequence {
	return m.sequences[m.userIndex]
}

// currentItem returns the active item.
func (m Model) currentItem() domain.Item {
	return m.sequences[m.userIndex].Items[m.itemIndex]
}

// onOwnItem reports whether the active item belongs to the session owner.
func (m Model) onOwnItem() bool {
	return m.currentItem().OwnerID == m.sessionOwnerID
}

// Cursor exposes the (user, item) position for the root model and tests.
func (m Model) Cursor() (userIndex, itemIndex int) {
	return m.userIndex, m.itemIndex
}

// Progress exposes the 0..100 playback progress.
func (m Model) Progress() float64 {
	return m.clock.progress
}

// Closed reports whether the session has ended.
func (m Model) Closed() bool {
	return m.closed
}

// setNotice replaces the transient notice line and schedules its expiry.
func (m *Model) setNotice(text string, isErr bool) tea.Cmd {
	m.notice = text
	m.noticeErr = isErr
	m.noticeGen++
	gen := m.noticeGen
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{Gen: gen}
	})
}
