// Package logging builds the structured logger that carries non-fatal warnings
// (unopenable directories, unreadable cat inputs) out of the tools.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// New returns a charm logger writing to w at the given level name
// ("debug", "info", "warn", "error", "fatal"). Unknown names fall back to warn.
func New(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:           parseLevel(level),
		ReportTimestamp: false,
		Prefix:          "sysutil",
	})
	logger.SetStyles(styles())
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel + 1})
}

func parseLevel(name string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return log.WarnLevel
	}
	return level
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.Color("214"))
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("196"))
	s.Keys["path"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	s.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	return s
}
