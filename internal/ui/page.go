package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"ligonsite/internal/config"
	"ligonsite/internal/content"
	"ligonsite/internal/logging"
	"ligonsite/internal/nav"
	"ligonsite/internal/tabs"
	"ligonsite/internal/trace"
	"ligonsite/internal/ui/textutil"
)

// statusHeight is the number of rows under the viewport.
const statusHeight = 1

// sectionRegion is a mounted section: its first line in the document and
// its height. It is the nav.Region handle for that section.
type sectionRegion struct {
	key    string
	top    int
	height int
}

// Top implements nav.Region.
func (r sectionRegion) Top() int { return r.top }

// Page is the landing page: a fixed header, a scrolling document of
// sections, and a status line. It owns one section controller and one tab
// store for its lifetime.
type Page struct {
	ID   string
	Nav  *nav.Controller
	Tabs *tabs.Store

	site     content.Site
	viewport viewport.Model
	scroller *smoothScroller
	keys     *KeyHandler
	focus    *FocusManager
	triggers *triggerSet
	overlays OverlayStack
	help     help.Model

	regions       []sectionRegion
	width, height int
	mounted       bool
	initial       string
	heading       string // section the current smooth scroll is headed for

	logger *slog.Logger
	tracer oteltrace.Tracer
}

// Ensure Page implements View.
var _ View = (*Page)(nil)

// PageOption configures a Page.
type PageOption func(*Page)

// WithPageLogger sets the logger for the page and its controllers.
func WithPageLogger(l *slog.Logger) PageOption {
	return func(p *Page) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithPageTracer records spans for navigation, tab selection and mounts.
func WithPageTracer(t oteltrace.Tracer) PageOption {
	return func(p *Page) {
		if t != nil {
			p.tracer = t
		}
	}
}

// WithPageID overrides the generated page instance id.
func WithPageID(id string) PageOption {
	return func(p *Page) {
		if id != "" {
			p.ID = id
		}
	}
}

// NewPage builds the page for site. Nothing is mounted until the first
// WindowSizeMsg; navigation requested before then is ignored, except
// cfg.Nav.Initial which is applied once on mount.
func NewPage(site content.Site, cfg config.Config, opts ...PageOption) (*Page, error) {
	p := &Page{
		ID:      uuid.NewString(),
		site:    site,
		initial: cfg.Nav.Initial,
		help:    newHelpModel(),
		logger:  logging.Discard(),
		tracer:  noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("page_id", p.ID)

	p.viewport = viewport.New(0, 0)
	p.viewport.KeyMap = pageScrollKeys()
	p.scroller = newSmoothScroller(&p.viewport, cfg.Scroll.Smooth, cfg.Scroll.FrameInterval, cfg.Scroll.Easing)

	ctrl, err := nav.NewController(nav.DefaultSections, cfg.Nav.Aliases, p.scroller,
		nav.WithLogger(p.logger),
		nav.WithTracer(p.tracer),
		nav.WithPageID(p.ID),
	)
	if err != nil {
		return nil, fmt.Errorf("section controller: %w", err)
	}
	p.Nav = ctrl

	store, err := tabs.New(examplePanels(site.Examples)...)
	if err != nil {
		return nil, fmt.Errorf("example tabs: %w", err)
	}
	store.SetTracer(p.tracer)
	store.OnChange = func(from, to string) {
		p.logger.Debug("example tab changed", "from", from, "to", to)
		p.relayout()
	}
	p.Tabs = store

	p.triggers = p.buildTriggers()
	p.focus = &FocusManager{
		Order:    p.triggers.order,
		OnChange: func(string, string) { p.relayout() },
	}
	p.keys = NewKeyHandler(p.buildKeybinds())
	return p, nil
}

// examplePanels turns the example list into tab panels keyed "0", "1", ...
func examplePanels(e content.Examples) []tabs.Panel {
	panels := make([]tabs.Panel, len(e.Items))
	for i, item := range e.Items {
		panels[i] = tabs.Panel{Key: strconv.Itoa(i), Title: item.Title, Content: item.Code}
	}
	return panels
}

// pageScrollKeys is the viewport key map for manual scrolling. Keys used by
// page bindings (space, f, d) are left out.
func pageScrollKeys() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", "ctrl+f")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "ctrl+b")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

func (p *Page) buildTriggers() *triggerSet {
	s := newTriggerSet()
	goTo := func(id, label, section string) {
		s.add(Trigger{ID: id, Label: label, Action: func() { p.navigate(section) }})
	}
	link := func(id, label, url string) {
		s.add(Trigger{ID: id, Label: label, Action: func() { p.openLink(label, url) }})
	}

	goTo(TriggerLogo, p.site.Name, nav.SectionHero)
	goTo(TriggerNavFeatures, "Features", nav.SectionFeatures)
	goTo(TriggerNavDocs, "Documentation", "docs")
	goTo(TriggerNavExamples, "Examples", nav.SectionExamples)
	goTo(TriggerNavDownload, "Download", nav.SectionDownload)
	goTo(TriggerGetStarted, p.site.Hero.PrimaryCTA, nav.SectionDownload)
	link(TriggerHeroGitHub, p.site.Hero.SecondaryCTA, p.site.RepoURL)
	for _, panel := range p.Tabs.Panels() {
		k := panel.Key
		s.add(Trigger{ID: TabTriggerID(k), Label: panel.Title, Action: func() { p.selectTab(k) }})
	}
	for _, c := range p.site.Download.Cards {
		if c.Action == content.CardActionRepo {
			link(TriggerDownloadRepo, c.Body, p.site.RepoURL)
		}
	}
	link(TriggerRepoDocs, p.site.Download.RepoCTA, p.site.RepoURL)
	return s
}

func (p *Page) buildKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	activate := func(id string) tea.Cmd {
		return func() tea.Msg { return ActivateTriggerMsg{ID: id} }
	}
	send := func(msg tea.Msg) tea.Cmd {
		return func() tea.Msg { return msg }
	}

	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	sections := []struct {
		key, trigger, desc string
	}{
		{"h", TriggerLogo, "Top"},
		{"f", TriggerNavFeatures, "Features"},
		{"d", TriggerNavDocs, "Documentation"},
		{"e", TriggerNavExamples, "Examples"},
		{"D", TriggerNavDownload, "Download"},
	}
	for _, s := range sections {
		reg.BindWithDesc(s.key, activate(s.trigger), s.desc)
		reg.BindWithDesc("SPC g "+s.key, activate(s.trigger), s.desc)
	}

	for i, k := range p.Tabs.Keys() {
		if i >= 9 {
			break
		}
		n := strconv.Itoa(i + 1)
		title := p.Tabs.Panels()[i].Title
		reg.BindWithDesc(n, activate(TabTriggerID(k)), title)
		reg.BindWithDesc("SPC t "+n, activate(TabTriggerID(k)), title)
	}
	reg.BindWithDesc("left", send(CycleTabMsg{Delta: -1}), "Previous example")
	reg.BindWithDesc("right", send(CycleTabMsg{Delta: 1}), "Next example")

	reg.BindWithDesc("tab", send(MoveFocusMsg{Delta: 1}), "Next link")
	reg.BindWithDesc("shift+tab", send(MoveFocusMsg{Delta: -1}), "Previous link")
	reg.BindWithDesc("enter", send(ActivateFocusedMsg{}), "Open")

	reg.BindWithDesc("g", send(ScrollEdgeMsg{}), "Top of page")
	reg.BindWithDesc("G", send(ScrollEdgeMsg{Bottom: true}), "Bottom of page")
	return reg
}

// navigate asks the controller to scroll to section and remembers it so a
// remount can move the animation to the section's new top.
func (p *Page) navigate(section string) {
	if !p.Nav.Navigate(section) {
		return
	}
	if target, ok := p.Nav.Resolve(section); ok {
		p.heading = target
	}
}

func (p *Page) selectTab(k string) {
	if err := p.Tabs.Select(k); err != nil {
		p.logger.Warn("tab trigger for missing panel", "key", k, "err", err)
	}
}

func (p *Page) openLink(title, url string) {
	p.logger.Debug("open link", "title", title, "url", url)
	p.overlays.Push(Overlay{View: &LinkOverlay{Title: title, URL: url}, Dismiss: "esc"})
}

func (p *Page) renderer() renderer {
	return renderer{site: p.site, focus: p.focus, tabs: p.Tabs}
}

// Init implements View.
func (p *Page) Init() tea.Cmd {
	return p.viewport.Init()
}

// Update implements View.
func (p *Page) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
		p.relayout()
		if p.mounted && p.initial != "" {
			p.navigate(p.initial)
			p.initial = ""
		}

	case scrollFrameMsg:
		cmds = append(cmds, p.scroller.Step(msg))

	case ActivateTriggerMsg:
		p.activate(msg.ID)

	case ActivateFocusedMsg:
		if p.focus.Current != "" {
			p.activate(p.focus.Current)
		}

	case MoveFocusMsg:
		if msg.Delta < 0 {
			p.focus.Prev()
		} else {
			p.focus.Next()
		}

	case CycleTabMsg:
		if msg.Delta < 0 {
			p.Tabs.Prev()
		} else {
			p.Tabs.Next()
		}

	case ScrollEdgeMsg:
		p.scroller.Cancel()
		if msg.Bottom {
			p.viewport.GotoBottom()
		} else {
			p.viewport.GotoTop()
		}

	case DismissOverlayMsg:
		p.overlays.Pop()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			cmds = append(cmds, tea.Quit)
			break
		}
		if top, ok := p.overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				p.overlays.Pop()
			} else if cmd, _ := p.overlays.UpdateTop(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
			break
		}
		if consumed, cmd := p.keys.Handle(msg); consumed {
			cmds = append(cmds, cmd)
			break
		}
		if msg.String() == "esc" {
			p.focus.Blur()
			break
		}
		cmds = append(cmds, p.scrollByHand(msg))

	case tea.MouseMsg:
		if p.overlays.Len() == 0 {
			cmds = append(cmds, p.scrollByHand(msg))
		}
	}

	cmds = append(cmds, p.scroller.Start())
	return p, tea.Batch(cmds...)
}

func (p *Page) activate(id string) {
	t, ok := p.triggers.get(id)
	if !ok {
		p.logger.Debug("unknown trigger", "id", id)
		return
	}
	p.logger.Debug("trigger", "id", t.ID, "label", t.Label)
	p.triggers.activate(id)
}

// scrollByHand passes input to the viewport. Any manual movement cancels a
// smooth scroll in flight.
func (p *Page) scrollByHand(msg tea.Msg) tea.Cmd {
	before := p.viewport.YOffset
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	if p.viewport.YOffset != before {
		p.scroller.Cancel()
	}
	return cmd
}

// relayout re-renders the document for the current size and registers the
// section regions. It is a no-op until the page has a size.
func (p *Page) relayout() {
	if p.width <= 0 || p.height <= 0 {
		return
	}
	headerHeight := lipgloss.Height(p.renderer().header(p.width))
	p.viewport.Width = p.width
	p.viewport.Height = max(1, p.height-headerHeight-statusHeight)

	doc, regions := p.document(p.width)
	p.viewport.SetContent(doc)
	p.mount(regions)
}

func (p *Page) mount(regions []sectionRegion) {
	_, span := p.tracer.Start(context.Background(), "page.mount",
		oteltrace.WithAttributes(trace.PageAttributes(p.ID)...))
	defer span.End()

	first := !p.mounted
	p.regions = regions
	for _, r := range regions {
		if err := p.Nav.Register(r.key, r); err != nil {
			p.logger.Error("register section", "key", r.key, "err", err)
			continue
		}
		p.logger.Debug("section mounted", "key", r.key, "top", r.top, "height", r.height)
	}
	p.mounted = true
	p.followHeading()
	span.SetAttributes(
		attribute.Bool("ligonsite.page.first_mount", first),
		attribute.Int("ligonsite.page.lines", p.viewport.TotalLineCount()),
	)
	if first {
		p.logger.Info("page mounted", "width", p.width, "height", p.height, "sections", len(regions))
	}
}

// followHeading points a smooth scroll still in flight at the current top of
// the section it was started for.
func (p *Page) followHeading() {
	if !p.scroller.Animating() || p.heading == "" {
		return
	}
	if r, ok := p.Nav.Region(p.heading); ok {
		p.scroller.Retarget(r.Top())
	}
}

// Close unmounts the page. Later navigation requests are ignored.
func (p *Page) Close() {
	p.Nav.UnregisterAll()
	p.regions = nil
	p.mounted = false
	p.scroller.Cancel()
}

// document renders every section top to bottom and records where each
// navigable section starts.
func (p *Page) document(width int) (string, []sectionRegion) {
	r := p.renderer()
	blocks := []struct {
		key  string
		body string
	}{
		{nav.SectionHero, r.hero(width)},
		{nav.SectionFeatures, r.features(width)},
		{nav.SectionExamples, r.examples(width)},
		{nav.SectionDownload, r.download(width)},
		{"", r.footer(width)},
	}

	parts := make([]string, 0, len(blocks))
	regions := make([]sectionRegion, 0, len(blocks))
	line := 0
	for _, b := range blocks {
		h := lipgloss.Height(b.body)
		if b.key != "" {
			regions = append(regions, sectionRegion{key: b.key, top: line, height: h})
		}
		parts = append(parts, b.body)
		line += h
	}
	return strings.Join(parts, "\n"), regions
}

// Render returns the whole page, header included, as static text.
func (p *Page) Render(width int) string {
	doc, _ := p.document(width)
	return p.renderer().header(width) + "\n" + doc
}

// Mounted reports whether the page has been laid out.
func (p *Page) Mounted() bool {
	return p.mounted
}

// Offset is the current scroll position.
func (p *Page) Offset() int {
	return p.viewport.YOffset
}

// SectionTop returns the first line of a mounted section.
func (p *Page) SectionTop(key string) (int, bool) {
	for _, r := range p.regions {
		if r.key == key {
			return r.top, true
		}
	}
	return 0, false
}

// ActiveSection is the section under the top of the viewport, or the last
// visible one once the page is scrolled to the bottom.
func (p *Page) ActiveSection() string {
	off := p.viewport.YOffset
	active := ""
	for _, r := range p.regions {
		if r.top <= off {
			active = r.key
		}
	}
	if p.viewport.AtBottom() {
		for _, r := range p.regions {
			if r.top < off+p.viewport.Height {
				active = r.key
			}
		}
	}
	return active
}

// View implements View.
func (p *Page) View() string {
	if !p.mounted {
		return ""
	}
	header := p.renderer().header(p.width)

	body := p.viewport.View()
	if top, ok := p.overlays.Peek(); ok {
		body = lipgloss.Place(p.width, p.viewport.Height, lipgloss.Center, lipgloss.Center, top.View.View())
	}

	bottom := p.statusLine()
	if p.keys.LeaderWaiting {
		if leader := RenderKeybindHelp(p.keys, p.width); leader != "" {
			lines := strings.Split(body, "\n")
			if drop := lipgloss.Height(leader) - statusHeight; drop > 0 && drop < len(lines) {
				lines = lines[:len(lines)-drop]
			}
			body = strings.Join(lines, "\n")
			bottom = leader
		}
	}
	return header + "\n" + body + "\n" + bottom
}

func (p *Page) statusLine() string {
	active := p.ActiveSection()
	if active == "" {
		active = nav.SectionHero
	}
	left := Styles.Status.Render(fmt.Sprintf("▸ %s  %3.0f%%", active, p.viewport.ScrollPercent()*100))
	p.help.Width = max(0, p.width-lipgloss.Width(left)-2)
	right := p.help.ShortHelpView(pageKeyMap{tabCount: len(p.Tabs.Keys())}.ShortHelp())
	return textutil.Spread(left, right, p.width)
}

// AsTeaModel wraps the page for tea.NewProgram.
func (p *Page) AsTeaModel() tea.Model {
	return &pageAdapter{Page: p}
}

var _ tea.Model = (*pageAdapter)(nil)

// pageAdapter wraps Page to implement tea.Model.
type pageAdapter struct {
	*Page
}

// Init implements tea.Model.
func (a *pageAdapter) Init() tea.Cmd {
	return a.Page.Init()
}

// Update implements tea.Model.
func (a *pageAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := a.Page.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *pageAdapter) View() string {
	return a.Page.View()
}
