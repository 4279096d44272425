package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwkelly/triptych/internal/board"
	"github.com/mwkelly/triptych/internal/config"
	"github.com/mwkelly/triptych/internal/logfeed"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func specialKey(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// newTestModel builds a ready model over the default seed with a throwaway
// prefs path.
func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	m := New(Options{
		Board:     board.New(cfg.Items),
		Feed:      logfeed.New(cfg.Events),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	return resize(m, 120, 40)
}

func resize(m Model, w, h int) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestUpdate_ColumnCycleRoundTrip(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, keyMsg("l"))
	if got := m.board.ActiveColumn(); got != board.StatusUpNext {
		t.Fatalf("active column = %v after l, want StatusUpNext", got)
	}
	m, _ = press(m, keyMsg("l"))
	m, _ = press(m, keyMsg("l"))
	if got := m.board.ActiveColumn(); got != board.StatusTodo {
		t.Fatalf("active column = %v after l,l,l, want StatusTodo", got)
	}

	m, _ = press(m, keyMsg("h"))
	if got := m.board.ActiveColumn(); got != board.StatusInProgress {
		t.Fatalf("active column = %v after h, want StatusInProgress", got)
	}
}

func TestUpdate_DeleteWithoutSelectionKeepsCount(t *testing.T) {
	m := newTestModel(t)
	if got := m.board.Len(); got != 24 {
		t.Fatalf("seed item count = %d, want 24", got)
	}
	m, _ = press(m, keyMsg("x"))
	if got := m.board.Len(); got != 24 {
		t.Fatalf("item count = %d after x with no selection, want 24", got)
	}
}

func TestUpdate_NavigationKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, keyMsg("j"))
	if i, ok := m.board.Selected(); !ok || i != 0 {
		t.Fatalf("selected = %d,%v after j, want 0", i, ok)
	}
	m, _ = press(m, specialKey(tea.KeyDown))
	if i, _ := m.board.Selected(); i != 1 {
		t.Fatalf("selected = %d after down, want 1", i)
	}
	m, _ = press(m, keyMsg("k"))
	if i, _ := m.board.Selected(); i != 0 {
		t.Fatalf("selected = %d after k, want 0", i)
	}
	m, _ = press(m, specialKey(tea.KeyUp))
	if i, _ := m.board.Selected(); i != 23 {
		t.Fatalf("selected = %d after up at 0, want wraparound to 23", i)
	}
}

func TestUpdate_LeftClearsSelection(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, keyMsg("j"))
	m, _ = press(m, specialKey(tea.KeyLeft))
	if _, ok := m.board.Selected(); ok {
		t.Fatal("selection should be cleared by left arrow")
	}
}

func TestUpdate_DeleteSelectedRemovesItem(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, keyMsg("j"))
	m, _ = press(m, keyMsg("j")) // full-slice index 1
	m, _ = press(m, keyMsg("x"))

	if got := m.board.Len(); got != 23 {
		t.Fatalf("item count = %d after delete, want 23", got)
	}
	if i, ok := m.board.Selected(); !ok || i != 0 {
		t.Fatalf("selected = %d,%v after deleting index 1, want 0", i, ok)
	}
}

func TestUpdate_QuitKeysReturnQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyMsg("q"), specialKey(tea.KeyCtrlC)} {
		m := newTestModel(t)
		_, cmd := press(m, msg)
		if cmd == nil {
			t.Fatalf("key %v: cmd = nil, want tea.Quit", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("key %v: cmd() = %T, want tea.QuitMsg", msg, cmd())
		}
	}
}

func TestUpdate_TickRotatesFeedAndReschedules(t *testing.T) {
	m := newTestModel(t)
	front := m.feed.Entries()[0]

	next, cmd := m.Update(tickMsg{})
	m = next.(Model)

	entries := m.feed.Entries()
	if entries[len(entries)-1] != front {
		t.Fatalf("front entry %v not rotated to back on tick", front)
	}
	if cmd == nil {
		t.Fatal("tick should reschedule itself")
	}
}

func TestUpdate_KeyPressDoesNotRotateFeed(t *testing.T) {
	m := newTestModel(t)
	before := m.feed.Entries()

	m, _ = press(m, keyMsg("j"))
	m, _ = press(m, keyMsg("l"))
	m, _ = press(m, keyMsg("x"))

	after := m.feed.Entries()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("feed entry %d changed on key input: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestView_SharedCursorHighlightsEachColumn(t *testing.T) {
	// The cursor indexes the full slice but every column applies it to its
	// own filtered view, so cursor 0 highlights the first row of all three
	// columns. Deliberate behavior; see the board package doc.
	m := newTestModel(t)
	m, _ = press(m, keyMsg("j")) // cursor 0

	view := m.View()
	if got := strings.Count(view, selectionMarker); got != 3 {
		t.Fatalf("View() contains %d selection markers, want 3 (one per column)", got)
	}

	m, _ = press(m, specialKey(tea.KeyLeft))
	if got := strings.Count(m.View(), selectionMarker); got != 0 {
		t.Fatalf("View() contains %d selection markers after unselect, want 0", got)
	}
}

func TestView_CursorBeyondShortColumnSkipsIt(t *testing.T) {
	items := []board.Item{
		{Label: "t0", Weight: 1, Status: board.StatusTodo},
		{Label: "t1", Weight: 1, Status: board.StatusTodo},
		{Label: "u0", Weight: 1, Status: board.StatusUpNext},
	}
	m := New(Options{
		Board: board.New(items),
		Feed:  logfeed.New(nil),
	})
	m = resize(m, 120, 40)

	m, _ = press(m, keyMsg("j"))
	m, _ = press(m, keyMsg("j")) // cursor 1: To Do has a row 1, Up Next does not

	if got := strings.Count(m.View(), selectionMarker); got != 1 {
		t.Fatalf("View() contains %d selection markers, want 1 (only To Do has index 1)", got)
	}
}

func TestView_ColumnTitlesPresent(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, title := range []string{"To Do", "Up Next", "In Progress"} {
		if !strings.Contains(view, title) {
			t.Errorf("View() missing column title %q", title)
		}
	}
	if !strings.Contains(view, "Activity") {
		t.Error("View() missing activity pane title")
	}
}

func TestUpdate_HelpOverlayToggles(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, keyMsg("?"))
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatal("View() should show help overlay after ?")
	}
	// Any key closes help without mutating the board.
	m, _ = press(m, keyMsg("x"))
	if strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatal("help overlay should close on next key")
	}
	if got := m.board.Len(); got != 24 {
		t.Fatalf("item count = %d, want 24 (key that closes help is swallowed)", got)
	}
}

func TestUpdate_ThemeCyclePersists(t *testing.T) {
	m := newTestModel(t)
	before := m.theme.Name
	m, _ = press(m, keyMsg("T"))
	if m.theme.Name == before {
		t.Fatalf("theme = %q after T, want a different theme", m.theme.Name)
	}
	if m.theme.Name != NextTheme(before) {
		t.Fatalf("theme = %q, want %q", m.theme.Name, NextTheme(before))
	}
}
