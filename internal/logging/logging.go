// Package logging configures the diagnostics logger shared by the hook commands.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// EnvLogLevel names the diagnostics level (trace, debug, info, warn,
	// error or off).
	EnvLogLevel = "PUSH_HOOKS_LOG_LEVEL"
	// EnvLogNoColor disables colour in diagnostics when set to a true value.
	EnvLogNoColor = "PUSH_HOOKS_LOG_NOCOLOR"
)

// Options controls logger construction.
type Options struct {
	NoColor bool
	Level   zerolog.Level
}

// DefaultOptions returns warn level unless EnvLogLevel names another. It
// does not depend on the hooks' --verbose output.
func DefaultOptions() Options {
	opts := Options{Level: zerolog.WarnLevel}
	applyEnvOverrides(&opts)
	return opts
}

// New builds a console logger writing to w.
func New(w io.Writer, opts Options) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    opts.NoColor,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(console).Level(opts.Level).With().Timestamp().Logger()
}

func applyEnvOverrides(opts *Options) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		opts.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		opts.NoColor = v
	}
}

// ParseLevel maps a level name to a zerolog level. The second result is
// false for empty or unknown names.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.WarnLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.WarnLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
