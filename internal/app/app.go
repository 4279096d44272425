package app

import (
	"context"
	"fmt"

	"github.com/mwkelly/triptych/internal/board"
	"github.com/mwkelly/triptych/internal/config"
	"github.com/mwkelly/triptych/internal/logfeed"
	"github.com/mwkelly/triptych/internal/prefs"
	"github.com/mwkelly/triptych/internal/ui"
)

// Options configure the triptych application.
type Options struct {
	SeedPath  string // empty uses the built-in seed
	PrefsPath string // empty uses default ~/.config/triptych/prefs.toml
	Theme     string // empty uses the persisted preference
}

// Run boots the triptych TUI until the user quits or the context is
// cancelled. The board and feed are built fresh on every run; nothing is
// persisted between sessions except user preferences.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.SeedPath)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}

	themeName := opts.Theme
	if themeName == "" {
		themeName = prefs.Load(opts.PrefsPath).Theme
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Board:     board.New(cfg.Items),
		Feed:      logfeed.New(cfg.Events),
		ThemeName: themeName,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
