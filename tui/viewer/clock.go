package viewer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// tickInterval is the playback clock's fixed step.
	tickInterval = 50 * time.Millisecond

	// fixedDurationMs is the playback budget for text and image items, and
	// the fallback for videos while metadata is pending or unusable.
	fixedDurationMs = 10_000

	// maxVideoDurationMs caps reported video durations.
	maxVideoDurationMs = 180_000

	// textSettleDelay lets the layout paint before a text card's clock
	// starts; text items have no network wait.
	textSettleDelay = 150 * time.Millisecond

	// noticeTTL is how long a transient notice stays on screen.
	noticeTTL = 3 * time.Second
)

type clockState int

const (
	clockLoading clockState = iota
	clockPlaying
	clockSuspended
	clockComplete
)

// playbackClock produces a monotonically increasing 0..100 progress value
// for the active item. Gen is bumped on every item change, suspension, and
// resume; a tick message carrying an older generation is discarded without
// rescheduling, so suspension genuinely stops the timer rather than merely
// masking it.
type playbackClock struct {
	state      clockState
	progress   float64
	durationMs int
	gen        int
}

// newClock returns a clock in the loading state at the fallback duration.
// The previous clock's generation is carried forward and bumped so ticks
// scheduled for the prior item die on arrival.
func newClock(prevGen int) playbackClock {
	return playbackClock{
		state:      clockLoading,
		durationMs: fixedDurationMs,
		gen:        prevGen + 1,
	}
}

// step advances progress by one tick's worth and reports completion.
// A zero or negative duration falls back to the fixed budget: a broken
// metadata report must still run the full configured time, never
// instant-skip.
func (c *playbackClock) step() (complete bool) {
	d := c.durationMs
	if d <= 0 {
		d = fixedDurationMs
	}
	c.progress += float64(tickInterval.Milliseconds()) / float64(d) * 100
	if c.progress >= 100 {
		c.progress = 100
		c.state = clockComplete
		return true
	}
	return false
}

// setVideoDuration applies probed metadata, capped. Zero or negative
// reports keep the fallback budget.
func (c *playbackClock) setVideoDuration(reportedMs int) {
	if reportedMs <= 0 {
		return
	}
	if reportedMs > maxVideoDurationMs {
		reportedMs = maxVideoDurationMs
	}
	c.durationMs = reportedMs
}

// suspended reports whether any suspension source is active. The sources
// compose by logical OR: clearing one while another remains must not
// resume ticking.
func (m Model) suspendedNow() bool {
	return m.loader.loading || m.hold || m.paused || m.reply.composing
}

// syncClock reconciles the clock state with the current suspension
// sources and returns the tick command when playback (re)starts. All
// play/suspend transitions funnel through here; progress is never touched.
func (m *Model) syncClock() tea.Cmd {
	if m.closed || m.clock.state == clockComplete {
		return nil
	}
	if m.clock.state == clockLoading && m.loader.loading {
		return nil
	}

	if m.suspendedNow() {
		if m.clock.state == clockPlaying {
			m.clock.state = clockSuspended
			m.clock.gen++ // kill the in-flight tick
		}
		return nil
	}

	if m.clock.state != clockPlaying {
		m.clock.state = clockPlaying
		m.clock.gen++
		return m.tickCmd()
	}
	return nil
}

// tickCmd schedules the next tick for the current generation.
func (m Model) tickCmd() tea.Cmd {
	gen := m.clock.gen
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return clockTickMsg{Gen: gen}
	})
}

// handleClockTick steps the clock, advancing the cursor on completion.
func (m Model) handleClockTick(msg clockTickMsg) (Model, tea.Cmd) {
	if m.closed || msg.Gen != m.clock.gen || m.clock.state != clockPlaying {
		return m, nil
	}
	if m.clock.step() {
		// Exactly one advance per item: the clock is now complete and stops
		// ticking; activation of the next item resets it to loading.
		return m.advance()
	}
	return m, m.tickCmd()
}
