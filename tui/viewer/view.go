package viewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ashmitb/unistory/domain"
	"github.com/ashmitb/unistory/tui/common"
)

// View renders the active item with its progress rail, header, and any
// open overlay.
func (m Model) View() string {
	if m.closed {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBars())
	b.WriteString("\n\n")

	if m.viewers.open {
		b.WriteString(m.renderViewersPanel())
	} else {
		b.WriteString(m.renderCard())
	}
	b.WriteString("\n")

	item := m.currentItem()
	if item.Caption != "" && !m.viewers.open {
		b.WriteString(common.CaptionStyle.Render("  " + item.Caption))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	seq := m.currentSequence()
	item := m.currentItem()

	owner := common.OwnerStyle.Render(seq.OwnerDisplay)
	if m.onOwnItem() {
		owner += common.OwnBadgeStyle.Render("(you)")
	}
	age := common.TimestampStyle.Render(" · " + common.RelativeAge(item.CreatedAt, time.Now()))

	state := ""
	switch {
	case m.loader.loading:
		state = "  " + m.spinner.View()
	case m.hold || m.paused:
		state = common.PausedStyle.Render("  ⏸")
	case m.reply.composing:
		state = common.PausedStyle.Render("  ✎")
	}

	return common.AppTitleStyle.Padding(0, 0, 0, 1).Render("◉ unistory") + "  " + owner + age + state
}

// renderBars draws one segment per item in the active sequence: full for
// watched segments, the live progress bar for the active one, empty for
// the rest.
func (m Model) renderBars() string {
	items := m.currentSequence().Items
	width := m.width
	if width <= 0 {
		width = 80
	}
	segWidth := (width - 2 - len(items)) / max(1, len(items))
	if segWidth < 3 {
		segWidth = 3
	}

	bar := m.bar
	bar.Width = segWidth

	parts := make([]string, 0, len(items))
	for i := range items {
		switch {
		case i < m.itemIndex:
			parts = append(parts, bar.ViewAs(1.0))
		case i == m.itemIndex:
			parts = append(parts, bar.ViewAs(m.clock.progress/100))
		default:
			parts = append(parts, bar.ViewAs(0))
		}
	}
	return " " + strings.Join(parts, " ")
}

func (m Model) renderCard() string {
	item := m.currentItem()
	width := m.cardWidth()

	switch item.Kind {
	case domain.KindText:
		return m.renderTextCard(item, width)
	default:
		return m.renderMediaCard(item, width)
	}
}

func (m Model) cardWidth() int {
	width := m.width - 6
	if width < 30 {
		width = 30
	}
	if width > 100 {
		width = 100
	}
	return width
}

func (m Model) renderTextCard(item domain.Item, width int) string {
	style := common.TextCardStyle.Width(width - 6)
	if bg := backgroundColor(item.Background); bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	content := style.Render(item.TextContent)
	return common.CardStyle.Width(width).Render(content)
}

func (m Model) renderMediaCard(item domain.Item, width int) string {
	var lines []string

	icon := "🖼"
	label := "image"
	if item.Kind == domain.KindVideo {
		icon = "▶"
		label = fmt.Sprintf("video · %s budget", (time.Duration(m.clock.durationMs) * time.Millisecond).Round(time.Second))
	}

	switch {
	case m.loader.loading:
		lines = append(lines, fmt.Sprintf("%s Loading %s...", m.spinner.View(), label))
	case m.loader.failed:
		lines = append(lines, common.ErrorStyle.Render("⚠ media unavailable"), "")
		lines = append(lines, common.TimestampStyle.Render(label))
	default:
		lines = append(lines, icon+"  "+label)
	}

	if item.MediaURL != "" {
		url := item.MediaURL
		if ansi.StringWidth(url) > width-8 {
			url = ansi.Truncate(url, width-8, "…")
		}
		lines = append(lines, common.TimestampStyle.Render(url))
	}
	if item.Filter != "" {
		lines = append(lines, common.TimestampStyle.Render("filter: "+item.Filter))
	}

	return common.CardStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderViewersPanel() string {
	width := m.cardWidth()
	var lines []string
	lines = append(lines, common.OwnerStyle.Render(fmt.Sprintf("Seen by %d", len(m.viewers.records))))

	switch {
	case m.viewers.loading:
		lines = append(lines, m.spinner.View()+" Loading viewers...")
	case m.viewers.err != nil:
		lines = append(lines, common.ErrorStyle.Render("Error: "+m.viewers.err.Error()))
	case len(m.viewers.records) == 0:
		lines = append(lines, common.TimestampStyle.Render("No views yet."))
	default:
		for _, r := range m.viewers.records {
			lines = append(lines, fmt.Sprintf("  %s %s",
				r.ViewerDisplay,
				common.TimestampStyle.Render(common.RelativeAge(r.ViewedAt, time.Now()))))
		}
	}

	lines = append(lines, "", common.TimestampStyle.Render("v/esc: close"))
	return common.PanelStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	if m.confirmDelete {
		prompt := "Delete this story? It can't be restored. (y/n)"
		if m.deleting {
			prompt = m.spinner.View() + " Deleting..."
		}
		return common.ConfirmStyle.Render(prompt)
	}

	var b strings.Builder
	if m.reply.focused {
		b.WriteString("  " + m.reply.input.View())
		b.WriteString("\n")
		hint := "enter: send • esc: cancel"
		if m.reply.sending {
			hint = m.spinner.View() + " Sending..."
		}
		b.WriteString(common.StatusBarStyle.Render("  " + hint))
	} else {
		hints := "←/→: navigate • space: pause • esc: close"
		if m.onOwnItem() {
			hints += " • v: viewers • d: delete"
		} else if m.reply.input.Value() == "" {
			hints += " • r: reply • 1-6: react"
		} else {
			hints += " • r: reply"
		}
		b.WriteString(common.StatusBarStyle.Render("  " + hints))
	}

	if m.notice != "" {
		style := common.SuccessStyle
		if m.noticeErr {
			style = common.ErrorStyle
		}
		b.WriteString("\n" + style.Render("  "+m.notice))
	}
	return b.String()
}

// backgroundColor maps a platform background spec to a terminal color.
// Unknown specs render without a background rather than guessing.
func backgroundColor(spec string) string {
	name, ok := strings.CutPrefix(spec, "solid:")
	if !ok {
		name, ok = strings.CutPrefix(spec, "gradient:")
		if !ok {
			return ""
		}
	}
	switch name {
	case "navy":
		return "#1E2030"
	case "sunset":
		return "#B4543B"
	case "indigo":
		return "#494D64"
	case "forest":
		return "#2E5339"
	case "plum":
		return "#5B4466"
	default:
		return ""
	}
}
