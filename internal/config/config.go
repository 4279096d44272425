package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/mwkelly/triptych/internal/board"
	"github.com/mwkelly/triptych/internal/logfeed"
)

// Config is the seed data the board and feed start from.
type Config struct {
	Items  []board.Item
	Events []logfeed.Entry
}

// Load reads a TOML seed file. An empty path or a missing file yields the
// built-in default seed; a file that exists but fails to parse or validate
// is a fatal startup error.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	resolved, err := expandPath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read seed file: %w", err)
	}

	var raw struct {
		Items []struct {
			Label  string `toml:"label"`
			Weight int    `toml:"weight"`
			Status string `toml:"status"`
		} `toml:"items"`
		Events []struct {
			Label    string `toml:"label"`
			Severity string `toml:"severity"`
		} `toml:"events"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse seed file: %w", err)
	}

	cfg := Config{}
	for i, it := range raw.Items {
		if strings.TrimSpace(it.Label) == "" {
			return Config{}, fmt.Errorf("items[%d]: label is empty", i)
		}
		if it.Weight <= 0 {
			return Config{}, fmt.Errorf("items[%d] %q: weight %d is not positive", i, it.Label, it.Weight)
		}
		status, err := parseStatus(it.Status)
		if err != nil {
			return Config{}, fmt.Errorf("items[%d] %q: %w", i, it.Label, err)
		}
		cfg.Items = append(cfg.Items, board.Item{Label: it.Label, Weight: it.Weight, Status: status})
	}
	for i, ev := range raw.Events {
		if strings.TrimSpace(ev.Label) == "" {
			return Config{}, fmt.Errorf("events[%d]: label is empty", i)
		}
		severity, err := parseSeverity(ev.Severity)
		if err != nil {
			return Config{}, fmt.Errorf("events[%d] %q: %w", i, ev.Label, err)
		}
		cfg.Events = append(cfg.Events, logfeed.Entry{Label: ev.Label, Severity: severity})
	}

	if len(cfg.Items) == 0 {
		cfg.Items = Default().Items
	}
	if len(cfg.Events) == 0 {
		cfg.Events = Default().Events
	}
	return cfg, nil
}

func parseStatus(s string) (board.Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo", "to-do", "to do":
		return board.StatusTodo, nil
	case "upnext", "up-next", "up next":
		return board.StatusUpNext, nil
	case "inprogress", "in-progress", "in progress":
		return board.StatusInProgress, nil
	default:
		return 0, fmt.Errorf("unknown status %q", s)
	}
}

func parseSeverity(s string) (logfeed.Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO":
		return logfeed.SeverityInfo, nil
	case "WARNING", "WARN":
		return logfeed.SeverityWarning, nil
	case "ERROR":
		return logfeed.SeverityError, nil
	case "CRITICAL":
		return logfeed.SeverityCritical, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
