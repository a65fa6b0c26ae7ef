// Package ui provides styled terminal output for skillreg commands.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal. When false,
// helpers fall back to plain text.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

var (
	Green  = lipgloss.Color("#58D68D")
	Red    = lipgloss.Color("#EC7063")
	Yellow = lipgloss.Color("#F4D03F")
	Blue   = lipgloss.Color("#5DADE2")
	Gray   = lipgloss.Color("#AAB7B8")
)

var (
	Success = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Failure = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Warning = lipgloss.NewStyle().Foreground(Yellow)
	Info    = lipgloss.NewStyle().Foreground(Blue)
	Muted   = lipgloss.NewStyle().Foreground(Gray)
)

// Render applies style when attached to a terminal, plain text otherwise.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// SectionHeader renders a titled rule of the given width.
func SectionHeader(title string, width int) string {
	line := title
	if pad := width - len(title) - 4; pad > 0 {
		line = title + " " + strings.Repeat("─", pad)
	}
	return Render(Info, "── "+line)
}
