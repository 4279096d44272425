package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// feedPaneHeight is the number of terminal rows the activity pane occupies,
// including its title row.
const feedPaneHeight = 8

// renderFeed renders the activity feed pane under the board. The front of
// the feed is drawn first; the 250ms rotation is what makes the pane appear
// to stream.
func (m Model) renderFeed() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Activity"))
	b.WriteString("\n")

	visible := feedPaneHeight - 1
	entries := m.feed.Entries()
	if len(entries) > visible {
		entries = entries[:visible]
	}

	labelWidth := m.width - 12
	if labelWidth < 10 {
		labelWidth = 10
	}

	for i, entry := range entries {
		badge := styles.SeverityStyle(entry.Severity.String()).Render(entry.Severity.String())
		label := runewidth.Truncate(entry.Label, labelWidth, "…")
		b.WriteString(badge)
		b.WriteString(" ")
		b.WriteString(styles.Text.Render(label))
		if i < len(entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
