// Package tabs holds the selection state of a strip of mutually exclusive
// panels. Exactly one panel is selected at any time after construction.
package tabs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var (
	ErrNoPanels     = errors.New("tab strip needs at least one panel")
	ErrEmptyKey     = errors.New("empty panel key")
	ErrDuplicateKey = errors.New("duplicate panel key")
	ErrUnknownPanel = errors.New("unknown panel")
)

// Panel is one selectable entry. Content is opaque to the store.
type Panel struct {
	Key     string
	Title   string
	Content string
}

// Store owns the current selection among a fixed set of panels.
type Store struct {
	panels  []Panel
	index   map[string]int
	current int

	// OnChange is called after a selection changes.
	OnChange func(from, to string)

	tracer oteltrace.Tracer
}

// New builds a store selecting the first panel. Panels are fixed for the
// life of the store.
func New(panels ...Panel) (*Store, error) {
	if len(panels) == 0 {
		return nil, ErrNoPanels
	}
	index := make(map[string]int, len(panels))
	for i, p := range panels {
		if p.Key == "" {
			return nil, fmt.Errorf("%w at position %d", ErrEmptyKey, i)
		}
		if _, dup := index[p.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, p.Key)
		}
		index[p.Key] = i
	}
	return &Store{
		panels: slices.Clone(panels),
		index:  index,
		tracer: noop.NewTracerProvider().Tracer(""),
	}, nil
}

// MustNew is New for composition code where a bad panel set is a bug.
func MustNew(panels ...Panel) *Store {
	s, err := New(panels...)
	if err != nil {
		panic(fmt.Sprintf("tabs: %v", err))
	}
	return s
}

// FromKeys builds a store whose panels carry only keys.
func FromKeys(keys ...string) (*Store, error) {
	panels := make([]Panel, len(keys))
	for i, k := range keys {
		panels[i] = Panel{Key: k, Title: k}
	}
	return New(panels...)
}

// SetTracer records a span per Select call.
func (s *Store) SetTracer(t oteltrace.Tracer) {
	if t != nil {
		s.tracer = t
	}
}

// Current returns the selected key.
func (s *Store) Current() string {
	return s.panels[s.current].Key
}

// CurrentPanel returns the selected panel.
func (s *Store) CurrentPanel() Panel {
	return s.panels[s.current]
}

// Index returns the position of the selected panel.
func (s *Store) Index() int {
	return s.current
}

// Panels returns the panels in declaration order.
func (s *Store) Panels() []Panel {
	return slices.Clone(s.panels)
}

// Keys returns the panel keys in declaration order.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.panels))
	for i, p := range s.panels {
		keys[i] = p.Key
	}
	return keys
}

// Has reports whether key names a panel.
func (s *Store) Has(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Select makes key the current panel. An unknown key leaves the selection
// untouched and returns ErrUnknownPanel.
func (s *Store) Select(key string) error {
	_, span := s.tracer.Start(context.Background(), "tabs.select",
		oteltrace.WithAttributes(attribute.String("ligonsite.tab.requested", key)))
	defer span.End()

	i, ok := s.index[key]
	if !ok {
		span.SetAttributes(attribute.Bool("ligonsite.tab.accepted", false))
		return fmt.Errorf("%w: %q", ErrUnknownPanel, key)
	}
	span.SetAttributes(attribute.Bool("ligonsite.tab.accepted", true))
	s.moveTo(i)
	return nil
}

// Next selects the following panel, wrapping at the end.
func (s *Store) Next() string {
	s.moveTo((s.current + 1) % len(s.panels))
	return s.Current()
}

// Prev selects the preceding panel, wrapping at the start.
func (s *Store) Prev() string {
	s.moveTo((s.current - 1 + len(s.panels)) % len(s.panels))
	return s.Current()
}

func (s *Store) moveTo(i int) {
	if i == s.current {
		return
	}
	from := s.panels[s.current].Key
	s.current = i
	if s.OnChange != nil {
		s.OnChange(from, s.panels[i].Key)
	}
}
