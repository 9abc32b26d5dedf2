// Package logging provides a small slog setup: a couple of levels
// above Info for the fine-grained tracing the teacher's core/util.go
// defines (LevelTrace, LevelWaveform), plus a Title Case helper. No
// other package of this module imports it.
package logging

import (
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LevelTrace is a verbosity level above Info used for per-mutation and
// per-subcycle trace messages that are too noisy for normal operation.
const LevelTrace slog.Level = slog.LevelInfo + 1

// LevelWaveform is a verbosity level above LevelTrace used for
// per-cycle wire-slot dumps, the circuit analogue of the teacher's
// per-cycle waveform log.
const LevelWaveform slog.Level = slog.LevelInfo + 2

var titleCaser = cases.Title(language.English)

// TitleCase renders s in Title Case, e.g. "north" or "NORTH" becomes
// "North".
func TitleCase(s string) string {
	return titleCaser.String(strings.ToLower(s))
}

// Default returns slog.Default(). The module has no option for
// injecting a different logger.
func Default() *slog.Logger {
	return slog.Default()
}
