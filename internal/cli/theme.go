package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	accent  lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
	danger  lipgloss.Color
	success lipgloss.Color
}

var (
	darkPalette = palette{
		accent:  lipgloss.Color("#7DCFFF"),
		text:    lipgloss.Color("#C0CAF5"),
		muted:   lipgloss.Color("#565F89"),
		danger:  lipgloss.Color("#F7768E"),
		success: lipgloss.Color("#9ECE6A"),
	}
	lightPalette = palette{
		accent:  lipgloss.Color("#2E7DE9"),
		text:    lipgloss.Color("#3760BF"),
		muted:   lipgloss.Color("#848CB5"),
		danger:  lipgloss.Color("#F52A65"),
		success: lipgloss.Color("#587539"),
	}
)

// Theme holds the output styles for one palette.
type Theme struct {
	Dark bool

	Title   lipgloss.Style
	Index   lipgloss.Style
	Name    lipgloss.Style
	Account lipgloss.Style
	Secret  lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

// NewTheme builds styles for w. Color is dropped automatically when w is
// not a terminal.
func NewTheme(w io.Writer, dark bool) *Theme {
	r := lipgloss.NewRenderer(w)
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return &Theme{
		Dark:    dark,
		Title:   r.NewStyle().Bold(true).Foreground(p.accent),
		Index:   r.NewStyle().Foreground(p.muted).Width(4).Align(lipgloss.Right),
		Name:    r.NewStyle().Bold(true).Foreground(p.text),
		Account: r.NewStyle().Foreground(p.muted),
		Secret:  r.NewStyle().Foreground(p.accent),
		Muted:   r.NewStyle().Foreground(p.muted),
		Error:   r.NewStyle().Foreground(p.danger),
		Success: r.NewStyle().Foreground(p.success),
	}
}
