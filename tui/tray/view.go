package tray

import (
	"fmt"
	"strings"
	"time"

	"github.com/ashmitb/unistory/tui/common"
)

// View renders the tray as a vertical ring list.
func (m Model) View() string {
	var b strings.Builder

	title := common.AppTitleStyle.Render("◉ unistory")
	tagline := common.TaglineStyle.Render("<campus stories, no browser required>")
	b.WriteString(title + tagline + "\n\n")

	if len(m.sequences) == 0 {
		b.WriteString("  No stories right now. Press R to refresh.\n")
		b.WriteString(common.StatusBarStyle.Render("  q: quit"))
		return b.String()
	}

	now := time.Now()
	for i, seq := range m.sequences {
		newest := seq.Items[len(seq.Items)-1].CreatedAt

		owner := common.OwnerStyle.Render(seq.OwnerDisplay)
		if seq.OwnerID == m.sessionOwnerID {
			owner += common.OwnBadgeStyle.Render("(you)")
		}
		line := fmt.Sprintf("%s  %s · %s",
			owner,
			common.TimestampStyle.Render(fmt.Sprintf("%d %s", len(seq.Items), pluralItems(len(seq.Items)))),
			common.TimestampStyle.Render(common.RelativeAge(newest, now)))

		if i == m.cursor {
			b.WriteString(common.SelectedStyle.Render(line))
		} else {
			b.WriteString(common.UnselectedStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(common.StatusBarStyle.Render("  ↑/↓: select • enter: watch • R: refresh • q: quit"))
	return b.String()
}

func pluralItems(n int) string {
	if n == 1 {
		return "story"
	}
	return "stories"
}
