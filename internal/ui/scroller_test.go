package ui

import "testing"

func TestSmoothScrollerConvertsUnitsToLines(t *testing.T) {
	s := newSmoothScroller(20)
	s.ScrollTo(420)
	if !s.Active() {
		t.Fatalf("expected active animation")
	}
	if s.target != 21 {
		t.Fatalf("expected target line 21, got %v", s.target)
	}
	s.ScrollTo(430)
	if s.target != 22 {
		t.Fatalf("partial lines round up: expected 22, got %v", s.target)
	}
}

func TestSmoothScrollerSettlesOnTarget(t *testing.T) {
	s := newSmoothScroller(20)
	s.ScrollTo(600)
	line := 0
	for i := 0; s.Active(); i++ {
		if i > 2000 {
			t.Fatalf("animation did not settle")
		}
		next := s.Step(100)
		if next < line-1 {
			t.Fatalf("critically damped spring must not swing back: %d after %d", next, line)
		}
		line = next
	}
	if line != 30 {
		t.Fatalf("expected to settle on line 30, got %d", line)
	}
}

func TestSmoothScrollerClampsToMaxLine(t *testing.T) {
	s := newSmoothScroller(20)
	s.ScrollTo(10000)
	line := 0
	for i := 0; s.Active() && i < 2000; i++ {
		line = s.Step(12)
	}
	if line != 12 {
		t.Fatalf("expected clamp to 12, got %d", line)
	}
}

func TestSmoothScrollerSyncCancels(t *testing.T) {
	s := newSmoothScroller(20)
	s.ScrollTo(200)
	s.Sync(4)
	if s.Active() {
		t.Fatalf("sync must cancel the animation")
	}
	if s.pos != 4 {
		t.Fatalf("expected position 4, got %v", s.pos)
	}
}

func TestSmoothScrollerNegativeOffset(t *testing.T) {
	s := newSmoothScroller(0)
	s.ScrollTo(-50)
	if s.target != 0 {
		t.Fatalf("negative offsets clamp to 0, got %v", s.target)
	}
}
