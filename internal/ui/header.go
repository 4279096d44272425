package ui

import (
	"fmt"
	"strings"

	"github.com/mwkelly/triptych/internal/board"
)

// renderHeader renders the status line: logo, per-column counts, selection.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	parts := []string{
		styles.Logo.Render("triptych"),
		styles.MutedText.Render("Items:") + " " + styles.Text.Render(fmt.Sprintf("%d", m.board.Len())),
	}

	for _, status := range board.Statuses() {
		count := len(m.board.ColumnItems(status))
		label := styles.MutedText.Render(status.String() + ":")
		value := styles.Text.Render(fmt.Sprintf("%d", count))
		if status == m.board.ActiveColumn() {
			value = styles.AccentText.Bold(true).Render(fmt.Sprintf("%d", count))
		}
		parts = append(parts, label+" "+value)
	}

	if i, ok := m.board.Selected(); ok {
		parts = append(parts, styles.MutedText.Render("Sel:")+" "+styles.Text.Render(fmt.Sprintf("#%d", i)))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderCommandBar renders the key hint line under the header.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"j/k", "Select"},
		{"←", "Unselect"},
		{"h/l", "Column"},
		{"x", "Delete"},
		{"?", "Help"},
		{"q", "Quit"},
	}

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			styles.AccentText.Render(c.key)+styles.FaintText.Render(":")+styles.MutedText.Render(c.desc))
	}

	// Theme indicator
	segments = append(segments,
		styles.AccentText.Render("T")+styles.FaintText.Render(":")+styles.FaintText.Render(m.theme.Name))

	return styles.Header.Width(m.width).Render(strings.Join(segments, "  "))
}
