package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ashmitb/unistory/app"
	"github.com/ashmitb/unistory/domain"
	"github.com/ashmitb/unistory/tui/common"
	"github.com/ashmitb/unistory/tui/tray"
	"github.com/ashmitb/unistory/tui/viewer"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Story          app.StoryService
	Conversation   app.ConversationService
	Media          app.MediaService
	SessionOwnerID string
}

type activeView int

const (
	loadingView activeView = iota
	trayView
	viewerView
)

// sequencesLoadedMsg delivers the story catalog fetch.
type sequencesLoadedMsg struct {
	Sequences domain.SequenceList
	Err       error
}

// App is the root Bubble Tea model. It routes between the tray and the
// viewer and owns the transient status line.
type App struct {
	deps    Deps
	active  activeView
	tray    tray.Model
	viewer  viewer.Model
	keys    common.KeyMap
	spinner spinner.Model
	status  string
	err     error
	width   int
	height  int
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#8AADF4"))

	return App{
		deps:    deps,
		active:  loadingView,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// Init starts the catalog fetch.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.fetchSequences(), a.spinner.Tick)
}

func (a App) fetchSequences() tea.Cmd {
	story := a.deps.Story
	return func() tea.Msg {
		sequences, err := story.Sequences(context.Background())
		return sequencesLoadedMsg{Sequences: sequences, Err: err}
	}
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Both sub-models track their own size.
		a.tray, _ = a.tray.Update(msg)
		a.viewer, _ = a.viewer.Update(msg)
		return a, nil

	case tea.KeyMsg:
		// Quit is global outside the viewer; the viewer owns its own keys
		// so typing a reply containing "q" works.
		if a.active != viewerView && key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}

	case sequencesLoadedMsg:
		if msg.Err != nil {
			a.active = trayView
			a.err = msg.Err
			a.tray = tray.New(nil, a.deps.SessionOwnerID)
			return a, nil
		}
		a.err = nil
		a.active = trayView
		a.tray = tray.New(msg.Sequences, a.deps.SessionOwnerID)
		return a, nil

	case tray.RefreshMsg:
		a.active = loadingView
		a.status = ""
		return a, a.fetchSequences()

	case tray.OpenMsg:
		v, err := viewer.New(
			a.deps.Story, a.deps.Conversation, a.deps.Media,
			a.traySequences(), a.deps.SessionOwnerID, msg.UserIndex,
		)
		if err != nil {
			a.status = "Error: " + err.Error()
			return a, nil
		}
		a.active = viewerView
		a.status = ""
		a.viewer = v
		return a, a.viewer.Init()

	case viewer.ClosedMsg:
		// The viewer hands back the catalog as the session left it, with
		// any deletions applied.
		a.active = trayView
		a.tray = tray.New(msg.Sequences, a.deps.SessionOwnerID)
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		if a.active == viewerView {
			var vcmd tea.Cmd
			a.viewer, vcmd = a.viewer.Update(msg)
			return a, tea.Batch(cmd, vcmd)
		}
		return a, cmd
	}

	// Delegate to the active sub-model.
	switch a.active {
	case trayView:
		updated, cmd := a.tray.Update(msg)
		a.tray = updated
		return a, cmd
	case viewerView:
		updated, cmd := a.viewer.Update(msg)
		a.viewer = updated
		return a, cmd
	}

	return a, nil
}

// traySequences re-reads the catalog currently shown by the tray.
func (a App) traySequences() domain.SequenceList {
	return a.tray.Sequences()
}

// View renders the active sub-model.
func (a App) View() string {
	var s string

	switch a.active {
	case loadingView:
		s = "\n  " + a.spinner.View() + " Loading stories...\n"
	case trayView:
		s = a.tray.View()
		if a.err != nil {
			s += "\n" + common.ErrorStyle.Render("  Error: "+a.err.Error()) +
				"\n" + common.StatusBarStyle.Render("  Press R to retry.")
		}
	case viewerView:
		s = a.viewer.View()
	}

	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render(a.status)
	}
	return s
}
