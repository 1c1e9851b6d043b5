// Package scroll coordinates section navigation and the back-to-top
// affordance. Offsets are abstract scroll units; the view decides how many
// units one rendered line is worth.
package scroll

import (
	"sync"

	"github.com/sadsen/saad/internal/debug"
	"github.com/sadsen/saad/internal/observer"
)

const (
	// DefaultNavOffset is subtracted from a section's top so the heading
	// lands below the fixed navigation bar.
	DefaultNavOffset = 70
	// DefaultVisibilityThreshold is the offset the viewport must exceed for
	// the back-to-top control to show.
	DefaultVisibilityThreshold = 400
)

const logTag = debug.Component("scroll")

// Scroller performs an animated scroll to an absolute offset.
type Scroller interface {
	ScrollTo(offset int)
}

// ScrollerFunc adapts a function to Scroller.
type ScrollerFunc func(offset int)

// ScrollTo calls f.
func (f ScrollerFunc) ScrollTo(offset int) { f(offset) }

// Anchors maps section identifiers to their document-relative top offset.
type Anchors struct {
	mu    sync.RWMutex
	order []string
	tops  map[string]int
}

// NewAnchors returns an empty anchor set.
func NewAnchors() *Anchors {
	return &Anchors{tops: make(map[string]int)}
}

// Set records or moves the anchor id.
func (a *Anchors) Set(id string, top int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.tops[id]; !ok {
		a.order = append(a.order, id)
	}
	a.tops[id] = top
}

// Lookup returns the top offset of id.
func (a *Anchors) Lookup(id string) (int, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	top, ok := a.tops[id]
	return top, ok
}

// IDs returns the anchors in the order they were first set.
func (a *Anchors) IDs() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Reset forgets every anchor, e.g. before re-measuring after a relayout.
func (a *Anchors) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.order = nil
	a.tops = make(map[string]int)
}

// Options configures a Coordinator.
type Options struct {
	NavOffset           int
	VisibilityThreshold int
}

// DefaultOptions returns the stock offsets.
func DefaultOptions() Options {
	return Options{NavOffset: DefaultNavOffset, VisibilityThreshold: DefaultVisibilityThreshold}
}

// Coordinator turns section ids into scroll targets and owns the
// back-to-top visibility tracker.
type Coordinator struct {
	anchors   *Anchors
	scroller  Scroller
	navOffset int
	tracker   *Tracker
}

// NewCoordinator wires anchors to scroller. Negative options fall back to
// the defaults.
func NewCoordinator(anchors *Anchors, scroller Scroller, opts Options) *Coordinator {
	if anchors == nil {
		anchors = NewAnchors()
	}
	if opts.NavOffset < 0 {
		opts.NavOffset = DefaultNavOffset
	}
	if opts.VisibilityThreshold < 0 {
		opts.VisibilityThreshold = DefaultVisibilityThreshold
	}
	return &Coordinator{
		anchors:   anchors,
		scroller:  scroller,
		navOffset: opts.NavOffset,
		tracker:   NewTracker(opts.VisibilityThreshold),
	}
}

// Anchors exposes the anchor set for the view to (re)measure.
func (c *Coordinator) Anchors() *Anchors {
	return c.anchors
}

// Tracker exposes the back-to-top visibility tracker.
func (c *Coordinator) Tracker() *Tracker {
	return c.tracker
}

// Target returns the offset ScrollToSection would scroll to.
func (c *Coordinator) Target(id string) (int, bool) {
	top, ok := c.anchors.Lookup(id)
	if !ok {
		return 0, false
	}
	target := top - c.navOffset
	if target < 0 {
		target = 0
	}
	return target, true
}

// ScrollToSection scrolls so section id sits just under the navigation bar.
// An unknown id is a silent no-op; the return value only tells callers
// whether a scroll was started.
func (c *Coordinator) ScrollToSection(id string) bool {
	target, ok := c.Target(id)
	if !ok {
		logTag.Logf("no anchor %q", id)
		return false
	}
	c.scrollTo(target)
	return true
}

// ScrollToTop scrolls back to offset 0.
func (c *Coordinator) ScrollToTop() {
	c.scrollTo(0)
}

func (c *Coordinator) scrollTo(offset int) {
	if c.scroller != nil {
		c.scroller.ScrollTo(offset)
	}
}

// Source publishes scroll offsets.
type Source interface {
	OnScroll(fn func(offset int)) *observer.Subscription
}

// Mount attaches the visibility tracker to src and returns the scope that
// owns the listener. Closing the scope detaches it; callers should defer
// the close on every unmount path.
func (c *Coordinator) Mount(src Source) *observer.Scope {
	scope := observer.NewScope()
	if src == nil {
		return scope
	}
	scope.Add(src.OnScroll(c.tracker.Observe))
	return scope
}

// Feed is a Source the view pushes offsets into.
type Feed struct {
	registry observer.Registry[int]
	last     int
}

// OnScroll registers fn for every published offset.
func (f *Feed) OnScroll(fn func(int)) *observer.Subscription {
	return f.registry.Subscribe(fn)
}

// Publish broadcasts offset to the current listeners.
func (f *Feed) Publish(offset int) {
	f.last = offset
	f.registry.Notify(offset)
}

// Last returns the most recently published offset.
func (f *Feed) Last() int {
	return f.last
}

// Listeners returns the number of attached listeners.
func (f *Feed) Listeners() int {
	return f.registry.Len()
}
