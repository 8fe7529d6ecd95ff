package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#5C6773")
	colorError  = lipgloss.Color("#E74C3C")
)

var styles = struct {
	Title lipgloss.Style
	Key   lipgloss.Style
	Value lipgloss.Style
	Error lipgloss.Style
	Box   lipgloss.Style
}{
	Title: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Key:   lipgloss.NewStyle().Foreground(colorMuted),
	Value: lipgloss.NewStyle().Bold(true),
	Error: lipgloss.NewStyle().Foreground(colorError),
	Box:   lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent),
}

// interactive reports whether stdout is a terminal, gating the huh picker
// and the --tui viewport; the styles above are applied either way.
func interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}
