package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// line is a fixed region handle for tests.
type line int

func (l line) Top() int { return int(l) }

// recordingScroller keeps every requested target and the resulting position.
type recordingScroller struct {
	requests []int
	pos      int
}

func (s *recordingScroller) ScrollTo(y int) {
	s.requests = append(s.requests, y)
	s.pos = y
}

func newTestController(t *testing.T, opts ...Option) (*Controller, *recordingScroller) {
	t.Helper()
	s := &recordingScroller{}
	c, err := NewController(DefaultSections, DefaultAliases, s, opts...)
	require.NoError(t, err)
	return c, s
}

func mountAll(t *testing.T, c *Controller) map[string]line {
	t.Helper()
	regions := map[string]line{
		SectionHero:     0,
		SectionFeatures: 40,
		SectionExamples: 95,
		SectionDownload: 150,
	}
	for k, r := range regions {
		require.NoError(t, c.Register(k, r))
	}
	return regions
}

func TestNewController_RejectsBadDeclarations(t *testing.T) {
	s := &recordingScroller{}

	_, err := NewController(nil, nil, s)
	assert.ErrorIs(t, err, ErrNoSections)

	_, err = NewController([]string{"hero", "hero"}, nil, s)
	assert.ErrorIs(t, err, ErrDuplicateSection)

	_, err = NewController([]string{"hero"}, nil, nil)
	assert.ErrorIs(t, err, ErrNilScroller)

	_, err = NewController([]string{"hero"}, map[string]string{"docs": "features"}, s)
	assert.ErrorIs(t, err, ErrInvalidAlias)

	_, err = NewController([]string{"hero", "features"}, map[string]string{"hero": "features"}, s)
	assert.ErrorIs(t, err, ErrInvalidAlias)
}

func TestNavigate_RegisteredSectionScrollsToItsTop(t *testing.T) {
	c, s := newTestController(t)
	regions := mountAll(t, c)

	for _, k := range DefaultSections {
		assert.True(t, c.Navigate(k), "navigate %q", k)
		assert.Equal(t, regions[k].Top(), s.pos, "position after navigate %q", k)
	}
}

func TestNavigate_BeforeMountIsNoop(t *testing.T) {
	c, s := newTestController(t)

	for _, k := range append(DefaultSections, "docs") {
		assert.False(t, c.Navigate(k))
	}
	assert.Empty(t, s.requests)
	assert.Equal(t, 0, s.pos)
}

func TestNavigate_UnknownKeyIsNoop(t *testing.T) {
	c, s := newTestController(t)
	mountAll(t, c)
	require.True(t, c.Navigate(SectionExamples))
	before := s.pos

	for _, k := range []string{"", "pricing", "Features", "DOCS"} {
		assert.False(t, c.Navigate(k), "navigate %q", k)
	}
	assert.Equal(t, before, s.pos)
	assert.Len(t, s.requests, 1)
}

func TestNavigate_AliasResolvesToSameTarget(t *testing.T) {
	c, s := newTestController(t)
	mountAll(t, c)

	require.True(t, c.Navigate(SectionFeatures))
	features := s.pos
	require.True(t, c.Navigate(SectionHero))
	require.True(t, c.Navigate("docs"))
	assert.Equal(t, features, s.pos)

	target, ok := c.Resolve("docs")
	assert.True(t, ok)
	assert.Equal(t, SectionFeatures, target)
}

func TestNavigate_RepeatedIsIdempotent(t *testing.T) {
	c, s := newTestController(t)
	mountAll(t, c)

	require.True(t, c.Navigate(SectionDownload))
	once := s.pos
	require.True(t, c.Navigate(SectionDownload))
	assert.Equal(t, once, s.pos)
	assert.Equal(t, []int{150, 150}, s.requests)
}

func TestNavigate_LatestRequestWins(t *testing.T) {
	c, s := newTestController(t)
	mountAll(t, c)

	c.Navigate(SectionDownload)
	c.Navigate(SectionFeatures)
	assert.Equal(t, 40, s.pos)
}

func TestRegister_ReplacesOnRemount(t *testing.T) {
	c, s := newTestController(t)
	require.NoError(t, c.Register(SectionExamples, line(10)))
	require.NoError(t, c.Register(SectionExamples, line(70)))

	c.Navigate(SectionExamples)
	assert.Equal(t, 70, s.pos)
}

func TestRegister_RejectsUndeclaredAndNil(t *testing.T) {
	c, _ := newTestController(t)

	assert.ErrorIs(t, c.Register("docs", line(1)), ErrUnknownSection)
	assert.ErrorIs(t, c.Register("blog", line(1)), ErrUnknownSection)
	assert.ErrorIs(t, c.Register(SectionHero, nil), ErrNilRegion)
	assert.False(t, c.Registered(SectionHero))
}

func TestUnregister_MakesNavigateNoop(t *testing.T) {
	c, s := newTestController(t)
	mountAll(t, c)

	c.Unregister(SectionDownload)
	assert.False(t, c.Navigate(SectionDownload))
	assert.Empty(t, s.requests)
	assert.True(t, c.Registered("docs"))

	c.UnregisterAll()
	assert.False(t, c.Registered("docs"))
	assert.False(t, c.Navigate("docs"))
}

func TestNavigate_RecordsSpanOutcome(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	c, _ := newTestController(t, WithTracer(tp.Tracer("test")), WithPageID("page-1"))
	require.NoError(t, c.Register(SectionFeatures, line(12)))

	c.Navigate("docs")
	c.Navigate("pricing")
	c.Navigate(SectionDownload)

	spans := sr.Ended()
	require.Len(t, spans, 3)
	want := []string{"scrolled", "unknown", "unmounted"}
	for i, span := range spans {
		assert.Equal(t, "nav.navigate", span.Name())
		assert.Contains(t, span.Attributes(), attribute.String("ligonsite.nav.outcome", want[i]))
	}
	assert.Contains(t, spans[0].Attributes(), attribute.String("ligonsite.section.resolved", SectionFeatures))
}

func TestClosest_SuggestsNearestKey(t *testing.T) {
	c, _ := newTestController(t)

	assert.Equal(t, SectionFeatures, c.closest("featurs"))
	assert.Equal(t, "docs", c.closest("doc"))
}

func TestAliasTable_Names(t *testing.T) {
	table, err := NewAliasTable(DefaultSections, map[string]string{
		"docs":    SectionFeatures,
		"install": SectionDownload,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"docs", "install"}, table.Names())
	assert.Equal(t, 2, table.Len())

	_, ok := table.Lookup("features")
	assert.False(t, ok, "declared keys are not aliases")
}
