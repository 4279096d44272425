package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mwkelly/triptych/internal/board"
)

const (
	// minColumnHeight keeps the board legible on tiny terminals.
	minColumnHeight = 8

	// cardDetail is the filler line a card repeats Weight times, so card
	// height tracks item weight.
	cardDetail = "Something important to do"

	// selectionMarker prefixes the highlighted row in each column.
	selectionMarker = ">> "
)

// renderColumns renders the three status columns side by side. The active
// column gets the focus border and background.
//
// Each column filters the full item slice on every draw and applies the
// board's full-slice cursor within its own filtered view: the cursor value i
// highlights the i-th visible row of every column that has at least i+1
// items. Navigation and deletion stay filter-unaware; only the drawing is
// per-column. This shared-cursor rendering is intentional.
func (m Model) renderColumns(height int) string {
	styles := m.theme.Styles()

	colWidth := m.width/3 - 2
	if colWidth < 10 {
		colWidth = 10
	}

	cols := make([]string, 0, 3)
	for _, status := range board.Statuses() {
		cols = append(cols, m.renderColumn(status, colWidth, height, styles))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// renderColumn renders one bordered status column.
func (m Model) renderColumn(status board.Status, width, height int, styles Styles) string {
	var b strings.Builder

	// Padding eats two cells of the frame's width.
	inner := width - 2
	if inner < 4 {
		inner = 4
	}

	title := styles.ColumnTitle.Render(status.String())
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", inner)))
	b.WriteString("\n")

	items := m.board.ColumnItems(status)
	cursor, hasCursor := m.board.Selected()

	for i, item := range items {
		highlighted := hasCursor && i == cursor

		label := runewidth.Truncate(item.Label, inner-len(selectionMarker), "…")
		if highlighted {
			b.WriteString(styles.Selected.Render(selectionMarker + label))
		} else {
			b.WriteString(styles.Text.Render(label))
		}
		b.WriteString("\n")

		for w := 0; w < item.Weight; w++ {
			b.WriteString(styles.CardDetail.Render(runewidth.Truncate(cardDetail, inner, "…")))
			b.WriteString("\n")
		}
	}

	frame := styles.Column
	if status == m.board.ActiveColumn() {
		frame = styles.ActiveColumn
	}
	return frame.Width(width).Height(height).Render(strings.TrimRight(b.String(), "\n"))
}
