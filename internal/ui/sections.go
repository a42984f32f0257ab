package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ligonsite/internal/content"
	"ligonsite/internal/tabs"
	"ligonsite/internal/ui/textutil"
)

const (
	maxTextWidth = 72  // Ledes and taglines wrap here
	maxCodeWidth = 88  // Code windows never grow past this
	maxGridWidth = 120 // Card grids never grow past this
	gridGap      = 2
)

// renderer draws the page for one frame. It is cheap to build and holds no
// state of its own.
type renderer struct {
	site  content.Site
	focus *FocusManager
	tabs  *tabs.Store
}

func (r renderer) focused(id string) bool {
	return r.focus != nil && r.focus.Focused(id)
}

func (r renderer) button(id, label string, primary bool) string {
	base := Styles.Button
	if primary {
		base = Styles.ButtonPrimary
	}
	return focusedStyle(base, r.focused(id)).Render(label)
}

// featureColumns picks the card grid column count for a width.
func featureColumns(width int) int {
	switch {
	case width >= 108:
		return 3
	case width >= 72:
		return 2
	default:
		return 1
	}
}

func centered(width int, block string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func wrapCentered(width int, style lipgloss.Style, text string) string {
	w := min(max(1, width-4), maxTextWidth)
	return centered(width, style.Width(w).Align(lipgloss.Center).Render(text))
}

// section pads a block vertically so sections do not touch.
func section(width int, body string) string {
	return lipgloss.NewStyle().Width(width).Padding(1, 0).Render(body)
}

func (r renderer) heading(width int, title, subtitle string) string {
	out := centered(width, r.brandTitle(title, Styles.Title))
	if subtitle != "" {
		out += "\n" + wrapCentered(width, Styles.Subtitle, subtitle)
	}
	return out
}

// brandTitle highlights the product name where it ends a title
// ("Welcome to Ligon", "Get Started with Ligon").
func (r renderer) brandTitle(title string, base lipgloss.Style) string {
	name := r.site.Name
	if name == "" || !strings.HasSuffix(title, name) {
		return base.Render(title)
	}
	return base.Render(strings.TrimSuffix(title, name)) + Styles.Brandmark.Render(name)
}

// hero renders the top section: mascot, badge, title, tagline, the two
// calls to action and the sample program.
func (r renderer) hero(width int) string {
	h := r.site.Hero
	parts := []string{
		centered(width, Styles.Mascot.Render(strings.Trim(r.site.Mascot, "\n"))),
		"",
		centered(width, Styles.Badge.Render(textutil.Truncate(h.Badge, max(1, width-4)))),
		"",
		centered(width, r.brandTitle(h.Title, Styles.HeroTitle)),
		"",
		wrapCentered(width, Styles.Subtitle, h.Tagline),
		"",
	}

	primary := r.button(TriggerGetStarted, "⬇ "+h.PrimaryCTA, true)
	secondary := r.button(TriggerHeroGitHub, h.SecondaryCTA, false)
	ctas := lipgloss.JoinHorizontal(lipgloss.Top, primary, "  ", secondary)
	if lipgloss.Width(ctas) > width {
		ctas = lipgloss.JoinVertical(lipgloss.Center, primary, secondary)
	}
	parts = append(parts, centered(width, ctas), "", r.codeBox(width, h.SampleFile, h.Sample))
	return section(width, strings.Join(parts, "\n"))
}

// codeBox renders a dark code window with traffic-light dots and a filename.
func (r renderer) codeBox(width int, filename, code string) string {
	outer := min(max(12, width-2), maxCodeWidth)
	inner := outer - Styles.CodeBox.GetHorizontalFrameSize()

	chrome := textutil.Spread(windowDots(), Styles.Muted.Render(textutil.Truncate(filename, max(1, inner-6))), inner)
	lines := strings.Split(strings.Trim(code, "\n"), "\n")
	for i, l := range lines {
		lines[i] = textutil.Truncate(strings.ReplaceAll(l, "\t", "    "), inner)
	}
	box := Styles.CodeBox.
		Width(outer - Styles.CodeBox.GetHorizontalBorderSize()).
		Render(chrome + "\n\n" + Styles.Code.Render(strings.Join(lines, "\n")))
	return centered(width, box)
}

// card renders a bordered card outer columns wide. height, when non-zero,
// pads the card to that many rows including its border.
func card(outer, height int, title, body string) string {
	style := Styles.Card.Width(max(1, outer-Styles.Card.GetHorizontalBorderSize()))
	if height > 0 {
		style = style.Height(height - Styles.Card.GetVerticalBorderSize())
	}
	text := Styles.CardHead.Render(title)
	if body != "" {
		text += "\n\n" + body
	}
	return style.Render(text)
}

// grid lays cards out cols per row, padding each row to its tallest card.
func grid(cols, n int, build func(i, height int) string) string {
	var rows []string
	for start := 0; start < n; start += cols {
		end := min(start+cols, n)
		height := 0
		for i := start; i < end; i++ {
			height = max(height, lipgloss.Height(build(i, 0)))
		}
		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", gridGap))
			}
			cells = append(cells, build(i, height))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// gridCellWidth is the outer width of one card when cols share width.
func gridCellWidth(width, cols int) int {
	total := min(max(1, width-2), maxGridWidth)
	return max(1, (total-gridGap*(cols-1))/cols)
}

// features renders the "Why Choose" card grid.
func (r renderer) features(width int) string {
	f := r.site.Features
	cols := featureColumns(width)
	cell := gridCellWidth(width, cols)
	build := func(i, height int) string {
		c := f.Cards[i]
		return card(cell, height, strings.TrimSpace(c.Icon+"  "+c.Title), Styles.Normal.Render(c.Description))
	}
	body := r.heading(width, f.Title, f.Subtitle)
	if len(f.Cards) > 0 {
		body += "\n\n" + centered(width, grid(cols, len(f.Cards), build))
	}
	return section(width, body)
}

// tabStrip renders the example selector. It wraps into rows of two when the
// single row does not fit.
func (r renderer) tabStrip(width int) string {
	panels := r.tabs.Panels()
	labels := make([]string, len(panels))
	for i, p := range panels {
		style := Styles.Tab
		if p.Key == r.tabs.Current() {
			style = Styles.TabActive
		}
		style = focusedStyle(style, r.focused(TabTriggerID(p.Key)))
		labels[i] = style.Render(strconv.Itoa(i+1) + " " + p.Title)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, labels...)
	if lipgloss.Width(row) <= width-2 {
		return row
	}
	var rows []string
	for i := 0; i < len(labels); i += 2 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, labels[i:min(i+2, len(labels))]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// examples renders the tab strip and the selected example's code window.
func (r renderer) examples(width int) string {
	e := r.site.Examples
	panel := r.tabs.CurrentPanel()
	ex := content.Example{Title: panel.Title, Code: panel.Content}

	body := r.heading(width, e.Title, e.Subtitle) +
		"\n\n" + centered(width, r.tabStrip(width)) +
		"\n\n" + r.codeBox(width, ex.Filename(), ex.Code)
	return section(width, body)
}

// download renders the two download cards and the getting-started steps.
func (r renderer) download(width int) string {
	d := r.site.Download
	cols := 2
	if width < 72 {
		cols = 1
	}
	cell := gridCellWidth(min(width, maxCodeWidth+2), cols)
	build := func(i, height int) string {
		c := d.Cards[i]
		body := Styles.Muted.Render(c.Description)
		if c.Action == content.CardActionRepo {
			body += "\n\n" + r.button(TriggerDownloadRepo, c.Body, true)
		} else if c.Body != "" {
			body += "\n\n" + Styles.Normal.Render(c.Body)
		}
		return card(cell, height, c.Title, body)
	}

	body := r.heading(width, d.Title, d.Subtitle)
	if len(d.Cards) > 0 {
		body += "\n\n" + centered(width, grid(cols, len(d.Cards), build))
	}
	body += "\n\n" + r.steps(width)
	return section(width, body)
}

func (r renderer) steps(width int) string {
	d := r.site.Download
	outer := min(max(12, width-2), maxCodeWidth)
	inner := outer - Styles.Card.GetHorizontalFrameSize()

	var parts []string
	for _, s := range d.Steps {
		part := Styles.CardHead.Render(s.Title)
		if s.Text != "" {
			part += "\n" + Styles.Muted.Width(inner).Render(s.Text)
		}
		if len(s.Commands) > 0 {
			cmds := make([]string, len(s.Commands))
			for i, c := range s.Commands {
				cmds[i] = Styles.Shell.Render(textutil.Truncate("$ "+c, inner))
			}
			part += "\n" + strings.Join(cmds, "\n")
		}
		parts = append(parts, part)
	}
	rule := Styles.Rule.Render(strings.Repeat("─", inner))
	parts = append(parts, rule, centered(inner, r.button(TriggerRepoDocs, d.RepoCTA, false)))

	title := d.StepsTitle
	if title == "" {
		title = "Getting Started"
	}
	return centered(width, card(outer, 0, "📖 "+title, strings.Join(parts, "\n\n")))
}

// footer renders the brand blurb, link columns and copyright. It is not a
// navigable section.
func (r renderer) footer(width int) string {
	inner := max(1, width-Styles.Footer.GetHorizontalFrameSize())
	brand := Styles.Brand.Render("🐱 "+r.site.Name) + "\n" +
		Styles.Muted.Width(min(30, inner)).Render(r.site.Footer.Blurb)

	cols := []string{Styles.FooterCol.Render(brand)}
	for _, c := range r.site.Footer.Columns {
		lines := []string{Styles.Title.Render(c.Title)}
		for _, l := range c.Links {
			lines = append(lines, Styles.Muted.Render(l.Label))
		}
		cols = append(cols, Styles.FooterCol.Render(strings.Join(lines, "\n")))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if lipgloss.Width(row) > inner {
		row = lipgloss.JoinVertical(lipgloss.Left, cols...)
	}

	body := row + "\n\n" + centered(inner, Styles.Muted.Render(textutil.Truncate(r.site.Copyright, inner)))
	return Styles.Footer.Width(width).Render(body)
}
