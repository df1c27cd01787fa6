package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// styles is the set of text styles bound to one renderer
type styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Symbol lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),

		Label: r.NewStyle().
			Foreground(colorMuted).
			Width(10),

		Value: r.NewStyle().
			Bold(true).
			Foreground(colorSecondary),

		Symbol: r.NewStyle().
			Foreground(colorAccent),

		Muted: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),

		Error: r.NewStyle().
			Foreground(colorError),
	}
}
