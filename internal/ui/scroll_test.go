package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViewport(lines, height int) *viewport.Model {
	vp := viewport.New(20, height)
	vp.SetContent(strings.Repeat("x\n", lines-1) + "x")
	return &vp
}

// settleScroller runs frames until the animation stops.
func settleScroller(t *testing.T, s *smoothScroller) {
	t.Helper()
	for i := 0; i < 100; i++ {
		if s.Step(scrollFrameMsg{gen: s.gen}) == nil {
			return
		}
	}
	t.Fatal("animation did not settle")
}

func TestSmoothScroller_JumpsWhenNotSmooth(t *testing.T) {
	vp := newTestViewport(100, 10)
	s := newSmoothScroller(vp, false, 0, 0)

	s.ScrollTo(30)
	assert.Equal(t, 30, vp.YOffset)
	assert.False(t, s.Animating())
	assert.Nil(t, s.Start())
}

func TestSmoothScroller_AnimatesMonotonically(t *testing.T) {
	vp := newTestViewport(100, 10)
	s := newSmoothScroller(vp, true, 0, 0)

	s.ScrollTo(40)
	assert.Equal(t, 0, vp.YOffset, "ScrollTo only records the target")
	require.NotNil(t, s.Start())
	assert.Nil(t, s.Start(), "first frame is handed out once")

	prev := vp.YOffset
	for i := 0; i < 100 && s.Animating(); i++ {
		s.Step(scrollFrameMsg{gen: s.gen})
		assert.GreaterOrEqual(t, vp.YOffset, prev)
		prev = vp.YOffset
	}
	assert.Equal(t, 40, vp.YOffset)
	assert.False(t, s.Animating())
}

func TestSmoothScroller_ClampsToLastPage(t *testing.T) {
	vp := newTestViewport(50, 10)
	s := newSmoothScroller(vp, true, 0, 0)

	s.ScrollTo(100)
	assert.Equal(t, 40, s.Target())
	settleScroller(t, s)
	assert.Equal(t, 40, vp.YOffset)
}

func TestSmoothScroller_NewTargetSupersedesOld(t *testing.T) {
	vp := newTestViewport(100, 10)
	s := newSmoothScroller(vp, true, 0, 0)

	s.ScrollTo(60)
	oldGen := s.gen
	s.Step(scrollFrameMsg{gen: oldGen})
	mid := vp.YOffset
	require.Greater(t, mid, 0)

	s.ScrollTo(10)
	assert.Nil(t, s.Step(scrollFrameMsg{gen: oldGen}), "stale frame is dropped")
	assert.Equal(t, mid, vp.YOffset)

	settleScroller(t, s)
	assert.Equal(t, 10, vp.YOffset)
}

func TestSmoothScroller_CancelStopsAnimation(t *testing.T) {
	vp := newTestViewport(100, 10)
	s := newSmoothScroller(vp, true, 0, 0)

	s.ScrollTo(60)
	gen := s.gen
	s.Step(scrollFrameMsg{gen: gen})
	at := vp.YOffset

	s.Cancel()
	assert.False(t, s.Animating())
	assert.Nil(t, s.Step(scrollFrameMsg{gen: gen}))
	assert.Equal(t, at, vp.YOffset)
}

func TestSmoothScroller_SameTargetIsIdempotent(t *testing.T) {
	vp := newTestViewport(100, 10)
	s := newSmoothScroller(vp, true, 0, 0)

	s.ScrollTo(25)
	settleScroller(t, s)
	s.ScrollTo(25)
	settleScroller(t, s)
	assert.Equal(t, 25, vp.YOffset)
}

func TestSmoothScroller_RetargetKeepsAnimation(t *testing.T) {
	vp := newTestViewport(100, 10)
	s := newSmoothScroller(vp, true, 0, 0)

	s.ScrollTo(60)
	gen := s.gen
	s.Step(scrollFrameMsg{gen: gen})

	s.Retarget(40)
	assert.Equal(t, gen, s.gen, "frames already scheduled stay valid")
	settleScroller(t, s)
	assert.Equal(t, 40, vp.YOffset)

	s.Retarget(10)
	assert.Equal(t, 40, s.Target(), "a settled scroll is not restarted")
	assert.Equal(t, 40, vp.YOffset)
}
