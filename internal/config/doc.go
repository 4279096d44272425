// Package config loads the TOML seed file that populates the board and the
// activity feed.
//
// The seed is read once at startup. A missing file falls back to the
// built-in default seed (24 items, 26 feed entries), so the binary runs out
// of the box with no configuration at all. A file that exists but cannot be
// parsed, or that contains an empty label, a non-positive weight, or an
// unknown status/severity, is a fatal startup error.
//
// Seed file format:
//
//	[[items]]
//	label = "Ship dark mode"
//	weight = 4
//	status = "in-progress"   # todo | up-next | in-progress
//
//	[[events]]
//	label = "Deploy finished: api v2.41.0"
//	severity = "info"        # info | warning | error | critical
//
// The tick interval is a fixed constant in the UI and is deliberately not
// configurable here.
package config
