// Package obslog provides the structured logging this module's search
// driver and composer packages use, adapted from this codebase's layered
// slog-based logging package but trimmed to what a library (rather than a
// CLI host) needs: no file sink, no enterprise exporter, just a
// Service/Component-tagged slog.Logger.
package obslog

import (
	"log/slog"
	"os"
)

// Config configures a Logger. A zero-value Config logs Info and above to
// stderr as text.
type Config struct {
	// Level is the minimum level that is emitted.
	Level slog.Level
	// JSON selects JSON output over text output.
	JSON bool
	// Component identifies the package/subsystem emitting logs, e.g.
	// "search" or "agg/histogram".
	Component string
}

// Logger wraps a *slog.Logger pre-tagged with this module's service name
// and a caller-supplied component name.
type Logger struct {
	*slog.Logger
}

// New builds a Logger per config, tagging every record with
// service="aggregations" and component=config.Component.
func New(config Config) *Logger {
	opts := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	if config.JSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	base := slog.New(handler).With(
		"service", "aggregations",
		"component", config.Component,
	)
	return &Logger{Logger: base}
}

// Default returns a Logger at Info level writing text to stderr, tagged
// with the given component name.
func Default(component string) *Logger {
	return New(Config{Level: slog.LevelInfo, Component: component})
}

// With returns a Logger carrying the given additional attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}
