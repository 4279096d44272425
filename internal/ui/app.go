package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwkelly/triptych/internal/board"
	"github.com/mwkelly/triptych/internal/logfeed"
	"github.com/mwkelly/triptych/internal/prefs"
)

// tickInterval is the fixed cadence of the activity feed rotation. It is a
// constant on purpose: the feed advances every 250ms regardless of input.
const tickInterval = 250 * time.Millisecond

// Options configures the UI.
type Options struct {
	Context   context.Context
	Board     *board.Board
	Feed      *logfeed.Feed
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	board     *board.Board
	feed      *logfeed.Feed
	keys      keyMap
	theme     Theme
	prefsPath string

	width    int
	height   int
	ready    bool
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		board:     opts.Board,
		feed:      opts.Feed,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		prefsPath: prefsPath,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(),
	)
}

// Update implements tea.Model. Each message applies at most one board or
// feed mutation, so a quit is always clean.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		// The tick fires whether or not any key arrived, and key handling
		// never reschedules it.
		m.feed.Advance()
		return m, tickCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey dispatches one key press to one board operation.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Unselect):
		m.board.Unselect()

	case key.Matches(msg, m.keys.Down):
		m.board.SelectNext()

	case key.Matches(msg, m.keys.Up):
		m.board.SelectPrev()

	case key.Matches(msg, m.keys.ColumnForward):
		m.board.CycleColumnForward()

	case key.Matches(msg, m.keys.ColumnBackward):
		m.board.CycleColumnBackward()

	case key.Matches(msg, m.keys.Delete):
		m.board.DeleteSelected()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
	}

	return m, nil
}

// renderMain renders the full UI: header, command bar, columns, feed.
func (m Model) renderMain() string {
	header := m.renderHeader()
	cmdBar := m.renderCommandBar()
	feed := m.renderFeed()
	columns := m.renderColumns(m.columnsHeight())

	return header + "\n" + cmdBar + "\n" + columns + "\n" + feed
}

// columnsHeight returns the vertical space left for the board columns after
// the header, command bar, and feed pane take theirs.
func (m Model) columnsHeight() int {
	h := m.height - 2 - feedPaneHeight
	if h < minColumnHeight {
		h = minColumnHeight
	}
	return h
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until quit or context
// cancellation.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// Shutdown came from the signal context, not a failure.
		return nil
	}
	return err
}
