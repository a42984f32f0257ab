package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ligonsite/internal/ui/textutil"
)

// compactHeaderWidth is the width below which the header drops its text
// links and keeps only the logo and the Download button.
const compactHeaderWidth = 64

// headerLink is one text link in the header bar.
type headerLink struct {
	id    string
	label string
}

var headerLinks = []headerLink{
	{TriggerNavFeatures, "Features"},
	{TriggerNavDocs, "Documentation"},
	{TriggerNavExamples, "Examples"},
}

// header renders the fixed bar above the viewport.
func (r renderer) header(width int) string {
	logo := focusedStyle(Styles.Brand, r.focused(TriggerLogo)).Render("🐱 " + r.site.Name)
	download := focusedStyle(Styles.HeaderButton, r.focused(TriggerNavDownload)).Render("⬇ Download")

	right := download
	if width >= compactHeaderWidth {
		links := make([]string, 0, len(headerLinks)+1)
		for _, l := range headerLinks {
			links = append(links, focusedStyle(Styles.NavLink, r.focused(l.id)).Render(l.label))
		}
		links = append(links, download)
		right = strings.Join(links, "   ")
	}

	inner := max(1, width-Styles.Header.GetHorizontalFrameSize())
	line := textutil.Spread(logo, right, inner)
	if lipgloss.Width(line) > inner {
		line = logo
	}
	return Styles.Header.Width(width).Render(line)
}
