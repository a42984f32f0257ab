package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the page
const (
	ColorAccent    = "39"  // Blue - titles, primary buttons
	ColorHighlight = "135" // Purple - the brand gradient's second stop
	ColorCode      = "78"  // Green - code text
	ColorMuted     = "241" // Gray - subtitles, hints
	ColorText      = "252" // Light gray - body text
	ColorDim       = "236" // Dark gray - code box background, rules
	ColorBadge     = "153" // Pale blue - hero badge
	ColorDanger    = "203" // Red window dot
	ColorWarning   = "221" // Yellow window dot
	ColorSuccess   = "114" // Green window dot
)

// Styles contains shared style definitions used by the section renderers.
var Styles = struct {
	// Header
	Header lipgloss.Style // Fixed bar with bottom rule
	Brand  lipgloss.Style // "Ligon" wordmark

	// Headings
	Title     lipgloss.Style // Section title
	HeroTitle lipgloss.Style // Large hero title
	Brandmark lipgloss.Style // Highlighted product name inside titles
	Subtitle  lipgloss.Style // Muted section lede
	Badge     lipgloss.Style // Pill above the hero title

	// Triggers
	Button        lipgloss.Style // Secondary trigger
	ButtonPrimary lipgloss.Style // Primary trigger (Download, Get Started)
	NavLink       lipgloss.Style // Plain header link
	HeaderButton  lipgloss.Style // Single-line Download button in the header
	Tab           lipgloss.Style // Tab strip entry
	TabActive     lipgloss.Style // Selected tab

	// Blocks
	Card     lipgloss.Style // Feature / download card
	CardHead lipgloss.Style // Card title
	CodeBox  lipgloss.Style // Dark code window
	Code     lipgloss.Style // Code text
	Shell    lipgloss.Style // Shell command line
	Mascot   lipgloss.Style // Mascot art

	// Footer and chrome
	Footer    lipgloss.Style
	FooterCol lipgloss.Style
	Muted     lipgloss.Style
	Normal    lipgloss.Style
	Status    lipgloss.Style // Bottom status bar
	Rule      lipgloss.Style
}{
	Header: lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	Brand: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	HeroTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Brandmark: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Badge: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Background(lipgloss.Color(ColorBadge)).
		Padding(0, 2),
	Button: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
	ButtonPrimary: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true).
		Padding(0, 2),
	NavLink: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	HeaderButton: lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color(ColorAccent)).
		Bold(true).
		Padding(0, 1),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
	TabActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorDim)).
		Bold(true).
		Padding(0, 2),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	CardHead: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	CodeBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 2),
	Code: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorCode)),
	Shell: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorCode)),
	Mascot: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	Footer: lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(1, 1, 0, 1),
	FooterCol: lipgloss.NewStyle().
		PaddingRight(3),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Rule: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
}

// focusedStyle marks the trigger that enter would activate.
func focusedStyle(base lipgloss.Style, focused bool) lipgloss.Style {
	if !focused {
		return base
	}
	return base.
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color(ColorHighlight)).
		Underline(true)
}

// windowDots is the red/yellow/green chrome above code boxes.
func windowDots() string {
	dot := "●"
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)).Render(dot) + " " +
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render(dot) + " " +
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render(dot)
}
