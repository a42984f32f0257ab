// Package nav maps logical section names to mounted page regions and asks a
// Scroller to bring them into view.
//
// A Controller is owned by exactly one page instance. All calls are expected
// from the UI goroutine; there is no locking.
package nav

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/agnivade/levenshtein"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Declared section keys, in page order.
const (
	SectionHero     = "hero"
	SectionFeatures = "features"
	SectionExamples = "examples"
	SectionDownload = "download"
)

// DefaultSections is the fixed section set of the landing page.
var DefaultSections = []string{SectionHero, SectionFeatures, SectionExamples, SectionDownload}

var (
	ErrNoSections       = errors.New("no sections declared")
	ErrDuplicateSection = errors.New("duplicate section key")
	ErrUnknownSection   = errors.New("unknown section")
	ErrNilRegion        = errors.New("nil region handle")
	ErrNilScroller      = errors.New("nil scroller")
	ErrInvalidAlias     = errors.New("invalid section alias")
)

// Region is a handle to a mounted page region.
type Region interface {
	// Top is the first line of the region in page coordinates.
	Top() int
}

// Scroller performs the actual scroll. ScrollTo requests an animated scroll
// that leaves line y at the top of the viewport; it must retarget any scroll
// still in flight rather than queue behind it.
type Scroller interface {
	ScrollTo(y int)
}

// ScrollerFunc adapts a function to Scroller.
type ScrollerFunc func(y int)

// ScrollTo implements Scroller.
func (f ScrollerFunc) ScrollTo(y int) { f(y) }

// Outcome describes what Navigate did with a request.
type Outcome string

const (
	OutcomeScrolled  Outcome = "scrolled"
	OutcomeUnknown   Outcome = "unknown"
	OutcomeUnmounted Outcome = "unmounted"
)

// Controller is the section registry and scroll controller.
type Controller struct {
	order    []string
	declared map[string]struct{}
	regions  map[string]Region
	aliases  AliasTable
	scroller Scroller

	logger *slog.Logger
	tracer oteltrace.Tracer
	pageID string
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for debug notes about ignored requests.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer records a span per navigation request.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Controller) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithPageID tags logs and spans with the owning page instance.
func WithPageID(id string) Option {
	return func(c *Controller) { c.pageID = id }
}

// NewController declares the fixed section set. keys must be non-empty and
// distinct; aliases must resolve to declared keys.
func NewController(keys []string, aliases map[string]string, scroller Scroller, opts ...Option) (*Controller, error) {
	if len(keys) == 0 {
		return nil, ErrNoSections
	}
	if scroller == nil {
		return nil, ErrNilScroller
	}
	declared := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k == "" {
			return nil, fmt.Errorf("%w: empty key", ErrUnknownSection)
		}
		if _, dup := declared[k]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSection, k)
		}
		declared[k] = struct{}{}
	}
	table, err := NewAliasTable(keys, aliases)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		order:    append([]string(nil), keys...),
		declared: declared,
		regions:  make(map[string]Region, len(keys)),
		aliases:  table,
		scroller: scroller,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:   noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "nav", "page_id", c.pageID)
	return c, nil
}

// Keys returns the declared section keys in declaration order.
func (c *Controller) Keys() []string {
	return append([]string(nil), c.order...)
}

// Aliases returns the alias table in use.
func (c *Controller) Aliases() AliasTable {
	return c.aliases
}

// Register binds a mounted region to a declared key, replacing any earlier
// binding (remount).
func (c *Controller) Register(key string, r Region) error {
	if _, ok := c.declared[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, key)
	}
	if r == nil {
		return fmt.Errorf("%w: %q", ErrNilRegion, key)
	}
	c.regions[key] = r
	return nil
}

// Unregister clears the binding for key. Unknown keys are ignored.
func (c *Controller) Unregister(key string) {
	delete(c.regions, key)
}

// UnregisterAll clears every binding.
func (c *Controller) UnregisterAll() {
	clear(c.regions)
}

// Registered reports whether key (or the section it aliases) is mounted.
func (c *Controller) Registered(key string) bool {
	target, ok := c.Resolve(key)
	if !ok {
		return false
	}
	_, mounted := c.regions[target]
	return mounted
}

// Region returns the handle bound to a declared key.
func (c *Controller) Region(key string) (Region, bool) {
	r, ok := c.regions[key]
	return r, ok
}

// Resolve maps a requested name to a declared key via the alias table.
func (c *Controller) Resolve(key string) (string, bool) {
	if _, ok := c.declared[key]; ok {
		return key, true
	}
	return c.aliases.Lookup(key)
}

// Navigate requests a smooth scroll to the section named by key. Unknown and
// unmounted sections are ignored. It reports whether a scroll was requested.
func (c *Controller) Navigate(key string) bool {
	_, span := c.tracer.Start(context.Background(), "nav.navigate",
		oteltrace.WithAttributes(attribute.String("ligonsite.section.requested", key)))
	defer span.End()

	target, ok := c.Resolve(key)
	if !ok {
		span.SetAttributes(attribute.String("ligonsite.nav.outcome", string(OutcomeUnknown)))
		c.logger.Debug("navigate ignored: unknown section", "key", key, "closest", c.closest(key))
		return false
	}
	span.SetAttributes(attribute.String("ligonsite.section.resolved", target))

	r, mounted := c.regions[target]
	if !mounted {
		span.SetAttributes(attribute.String("ligonsite.nav.outcome", string(OutcomeUnmounted)))
		c.logger.Debug("navigate ignored: section not mounted", "key", key, "target", target)
		return false
	}

	top := r.Top()
	span.SetAttributes(
		attribute.String("ligonsite.nav.outcome", string(OutcomeScrolled)),
		attribute.Int("ligonsite.scroll.target", top),
	)
	c.logger.Debug("navigate", "key", key, "target", target, "line", top)
	c.scroller.ScrollTo(top)
	return true
}

// closest returns the declared key or alias nearest to key by edit distance.
func (c *Controller) closest(key string) string {
	best, bestDist := "", -1
	candidates := append(c.Keys(), c.aliases.Names()...)
	for _, k := range candidates {
		d := levenshtein.ComputeDistance(key, k)
		if bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
