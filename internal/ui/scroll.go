package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// smoothScroller animates a viewport toward a target offset. It implements
// nav.Scroller: ScrollTo only records the target, and the page starts the
// frame ticks after Update returns. A new target bumps the generation, so
// frames already scheduled for the old one are ignored.
type smoothScroller struct {
	vp       *viewport.Model
	smooth   bool
	interval time.Duration
	easing   float64

	target    int
	gen       int
	animating bool
	pending   bool
}

func newSmoothScroller(vp *viewport.Model, smooth bool, interval time.Duration, easing float64) *smoothScroller {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	if easing <= 0 || easing > 1 {
		easing = 0.35
	}
	return &smoothScroller{vp: vp, smooth: smooth, interval: interval, easing: easing}
}

// ScrollTo implements nav.Scroller.
func (s *smoothScroller) ScrollTo(y int) {
	s.gen++
	s.target = y
	if !s.smooth {
		s.vp.SetYOffset(y)
		s.animating = false
		s.pending = false
		return
	}
	s.animating = true
	s.pending = true
}

// Retarget moves the target of the animation in flight without restarting
// it. It does nothing once the animation has settled or been cancelled.
func (s *smoothScroller) Retarget(y int) {
	if !s.animating {
		return
	}
	s.target = y
}

// Cancel abandons the current animation, e.g. when the user scrolls by hand.
func (s *smoothScroller) Cancel() {
	if !s.animating {
		return
	}
	s.gen++
	s.animating = false
	s.pending = false
}

// Start returns the first frame tick for a freshly requested animation.
func (s *smoothScroller) Start() tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false
	return s.frame(s.gen)
}

// Animating reports whether an animation is in flight.
func (s *smoothScroller) Animating() bool {
	return s.animating
}

// Target is the offset the viewport will settle on.
func (s *smoothScroller) Target() int {
	return s.clamp(s.target)
}

func (s *smoothScroller) frame(gen int) tea.Cmd {
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return scrollFrameMsg{gen: gen}
	})
}

// Step moves one frame closer to the target and schedules the next frame.
func (s *smoothScroller) Step(msg scrollFrameMsg) tea.Cmd {
	if msg.gen != s.gen || !s.animating {
		return nil
	}
	target := s.clamp(s.target)
	cur := s.vp.YOffset
	if cur == target {
		s.animating = false
		return nil
	}

	dist := target - cur
	step := int(math.Ceil(math.Abs(float64(dist)) * s.easing))
	if dist < 0 {
		step = -step
	}
	s.vp.SetYOffset(cur + step)

	if s.vp.YOffset == target || s.vp.YOffset == cur {
		s.animating = false
		return nil
	}
	return s.frame(msg.gen)
}

// clamp limits y to the offsets the viewport can actually show.
func (s *smoothScroller) clamp(y int) int {
	maxOffset := max(0, s.vp.TotalLineCount()-s.vp.Height)
	return min(max(0, y), maxOffset)
}
