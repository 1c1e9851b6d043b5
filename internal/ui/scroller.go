package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	animFPS       = 60
	springFreq    = 7.0
	springDamping = 1.0
)

// smoothScroller animates the viewport toward a target line with a
// critically damped spring. It implements scroll.Scroller; offsets it
// receives are in scroll units and are converted to lines.
type smoothScroller struct {
	spring       harmonica.Spring
	unitsPerLine int

	pos    float64
	vel    float64
	target float64
	active bool
}

func newSmoothScroller(unitsPerLine int) *smoothScroller {
	if unitsPerLine <= 0 {
		unitsPerLine = 1
	}
	return &smoothScroller{
		spring:       harmonica.NewSpring(harmonica.FPS(animFPS), springFreq, springDamping),
		unitsPerLine: unitsPerLine,
	}
}

// ScrollTo starts (or retargets) an animation to offset units.
func (s *smoothScroller) ScrollTo(offset int) {
	if offset < 0 {
		offset = 0
	}
	// Round up so the landing line never sits above the requested offset.
	s.target = float64((offset + s.unitsPerLine - 1) / s.unitsPerLine)
	s.active = true
}

// Sync records where the viewport is after a manual scroll, cancelling any
// running animation.
func (s *smoothScroller) Sync(line int) {
	s.pos = float64(line)
	s.vel = 0
	s.active = false
}

// Active reports whether frames are still needed.
func (s *smoothScroller) Active() bool {
	return s.active
}

// Step advances one frame and returns the line the viewport should show.
// maxLine clamps the target to the scrollable range.
func (s *smoothScroller) Step(maxLine int) int {
	if maxLine < 0 {
		maxLine = 0
	}
	if s.target > float64(maxLine) {
		s.target = float64(maxLine)
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.target-s.pos) < 0.5 && math.Abs(s.vel) < 0.5 {
		s.pos, s.vel = s.target, 0
		s.active = false
	}
	return int(math.Round(s.pos))
}

func animFrameInterval() time.Duration {
	return time.Second / animFPS
}
