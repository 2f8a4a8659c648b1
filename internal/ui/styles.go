package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, foundations
	ColorHighlight = "205" // Magenta - held cards
	ColorDanger    = "196" // Red - red suits, errors
	ColorMuted     = "241" // Gray - empty slots, hints
	ColorText      = "252" // Light gray - black suits, normal text
)

// Styles contains shared style definitions used across the board renderer
// and the status bar.
var Styles = struct {
	Title     lipgloss.Style // game title
	RedCard   lipgloss.Style // hearts and diamonds
	BlackCard lipgloss.Style // clubs and spades
	EmptySlot lipgloss.Style // empty cells, columns, foundations
	Held      lipgloss.Style // cards currently in hand
	Status    lipgloss.Style // status line text
	Hint      lipgloss.Style // help hints
	Banner    lipgloss.Style // the win banner
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	RedCard: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	BlackCard: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	EmptySlot: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Held: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Banner: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
}
