package ui

// Trigger is an interactive element: a header link, a call-to-action button
// or a tab. Action runs synchronously inside Update.
type Trigger struct {
	ID     string
	Label  string
	Action func()
}

// Trigger IDs. Tab triggers are "tab-<panel key>".
const (
	TriggerLogo         = "logo"
	TriggerNavFeatures  = "nav-features"
	TriggerNavDocs      = "nav-docs"
	TriggerNavExamples  = "nav-examples"
	TriggerNavDownload  = "nav-download"
	TriggerGetStarted   = "hero-get-started"
	TriggerHeroGitHub   = "hero-github"
	TriggerDownloadRepo = "download-github"
	TriggerRepoDocs     = "download-docs"
	tabTriggerPrefix    = "tab-"
)

// TabTriggerID returns the trigger ID for a tab panel key.
func TabTriggerID(panelKey string) string {
	return tabTriggerPrefix + panelKey
}

// triggerSet keeps triggers by ID plus their tab order.
type triggerSet struct {
	byID  map[string]Trigger
	order []string
}

func newTriggerSet() *triggerSet {
	return &triggerSet{byID: make(map[string]Trigger)}
}

// add registers t; a repeated ID replaces the action but keeps its position.
func (s *triggerSet) add(t Trigger) {
	if _, ok := s.byID[t.ID]; !ok {
		s.order = append(s.order, t.ID)
	}
	s.byID[t.ID] = t
}

func (s *triggerSet) get(id string) (Trigger, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// activate runs the trigger's action. Unknown IDs are ignored.
func (s *triggerSet) activate(id string) bool {
	t, ok := s.byID[id]
	if !ok || t.Action == nil {
		return false
	}
	t.Action()
	return true
}
