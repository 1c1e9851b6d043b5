package scroll

import (
	"reflect"
	"testing"
)

type recordingScroller struct {
	targets []int
}

func (r *recordingScroller) ScrollTo(offset int) {
	r.targets = append(r.targets, offset)
}

func newTestCoordinator() (*Coordinator, *recordingScroller) {
	rec := &recordingScroller{}
	anchors := NewAnchors()
	anchors.Set("home", 0)
	anchors.Set("experience", 900)
	anchors.Set("projects", 1600)
	anchors.Set("contact", 40)
	return NewCoordinator(anchors, rec, DefaultOptions()), rec
}

func TestVisibilitySequence(t *testing.T) {
	tracker := NewTracker(DefaultVisibilityThreshold)
	if tracker.State() != Hidden {
		t.Fatalf("initial state = %s, want hidden", tracker.State())
	}

	offsets := []int{0, 399, 400, 401, 399}
	want := []Visibility{Hidden, Hidden, Hidden, Visible, Hidden}
	var got []Visibility
	for _, off := range offsets {
		tracker.Observe(off)
		got = append(got, tracker.State())
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("visibility for %v = %v, want %v", offsets, got, want)
	}
}

func TestTrackerNotifiesOnlyOnTransitions(t *testing.T) {
	tracker := NewTracker(400)
	var events []Visibility
	tracker.OnChange(func(v Visibility) { events = append(events, v) })

	for _, off := range []int{10, 500, 600, 700, 400, 0, 401} {
		tracker.Observe(off)
	}
	want := []Visibility{Visible, Hidden, Visible}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
}

func TestScrollToSectionSubtractsNavOffset(t *testing.T) {
	c, rec := newTestCoordinator()

	if !c.ScrollToSection("experience") {
		t.Fatalf("expected scroll for known section")
	}
	if !c.ScrollToSection("home") {
		t.Fatalf("expected scroll for home")
	}
	if !c.ScrollToSection("contact") {
		t.Fatalf("expected scroll for contact")
	}
	want := []int{900 - 70, 0, 0}
	if !reflect.DeepEqual(rec.targets, want) {
		t.Fatalf("targets = %v, want %v", rec.targets, want)
	}
}

func TestScrollToUnknownSectionIsSilentNoop(t *testing.T) {
	c, rec := newTestCoordinator()

	if c.ScrollToSection("nonexistent-id") {
		t.Fatalf("unknown section should not start a scroll")
	}
	if len(rec.targets) != 0 {
		t.Fatalf("unknown section scrolled to %v", rec.targets)
	}
}

func TestScrollToTop(t *testing.T) {
	c, rec := newTestCoordinator()
	c.ScrollToTop()
	if !reflect.DeepEqual(rec.targets, []int{0}) {
		t.Fatalf("targets = %v, want [0]", rec.targets)
	}
}

func TestNilScrollerDoesNotPanic(t *testing.T) {
	c := NewCoordinator(nil, nil, Options{NavOffset: -1, VisibilityThreshold: -1})
	c.Anchors().Set("home", 10)
	c.ScrollToSection("home")
	c.ScrollToTop()
	if c.Tracker().Threshold() != DefaultVisibilityThreshold {
		t.Fatalf("negative threshold should fall back to default")
	}
}

func TestMountAttachesAndScopeDetaches(t *testing.T) {
	c, _ := newTestCoordinator()
	feed := &Feed{}

	scope := c.Mount(feed)
	if feed.Listeners() != 1 {
		t.Fatalf("expected one listener after mount, got %d", feed.Listeners())
	}

	feed.Publish(800)
	if !c.Tracker().Visible() {
		t.Fatalf("tracker should be visible at 800")
	}

	scope.Close()
	if feed.Listeners() != 0 {
		t.Fatalf("listener leaked after unmount: %d", feed.Listeners())
	}
	feed.Publish(0)
	if !c.Tracker().Visible() {
		t.Fatalf("detached tracker should ignore later offsets")
	}
	if feed.Last() != 0 {
		t.Fatalf("feed should still record its last offset")
	}
}

func TestMountReleasedOnEarlyReturn(t *testing.T) {
	c, _ := newTestCoordinator()
	feed := &Feed{}

	render := func(fail bool) bool {
		scope := c.Mount(feed)
		defer scope.Close()
		return !fail
	}
	render(true)
	render(false)
	if feed.Listeners() != 0 {
		t.Fatalf("listeners leaked: %d", feed.Listeners())
	}
}

func TestAnchorsPreserveFirstSeenOrder(t *testing.T) {
	a := NewAnchors()
	a.Set("home", 0)
	a.Set("projects", 10)
	a.Set("home", 5)

	if got := a.IDs(); !reflect.DeepEqual(got, []string{"home", "projects"}) {
		t.Fatalf("IDs() = %v", got)
	}
	if top, _ := a.Lookup("home"); top != 5 {
		t.Fatalf("moved anchor top = %d, want 5", top)
	}
	a.Reset()
	if _, ok := a.Lookup("home"); ok || len(a.IDs()) != 0 {
		t.Fatalf("Reset should clear anchors")
	}
}
