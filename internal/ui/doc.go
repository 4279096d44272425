// Package ui provides the Bubble Tea terminal interface for triptych.
//
// # Control Loop
//
// The Bubble Tea runtime multiplexes key presses and timer messages into a
// single Update, which keeps the application turn-based: exactly one board
// or feed mutation per message, no shared state across goroutines, and a
// quit that takes effect immediately with nothing half-applied.
//
// The activity feed rotates on a fixed 250ms tea.Tick. The tick reschedules
// itself from its own handler; key handling never touches it, so rotation
// cadence is independent of input.
//
// # Layout
//
//   - Header: logo, total and per-column item counts, selection indicator
//   - Command bar: key hints and the active theme
//   - Three bordered status columns; the active column gets the focus border
//   - Activity feed pane with severity badges
//
// # Selection Rendering
//
// The board's cursor indexes the full item slice, but each column draws its
// own filtered view and highlights its i-th visible row when the cursor is
// i. A cursor value inside several columns' ranges therefore highlights one
// row in each. This mirrors the modeled system's shared-cursor rendering
// and is covered by tests; see the board package doc for the invariant.
//
// # Key Bindings
//
//   - j/↓, k/↑: select next/previous (full slice, wraparound)
//   - ←: clear selection
//   - x: delete selected item
//   - l/h: cycle active column forward/backward
//   - T: cycle theme (persisted to prefs)
//   - ?: help overlay
//   - q, ctrl+c: quit
package ui
