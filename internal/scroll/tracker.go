package scroll

import "github.com/sadsen/saad/internal/observer"

// Visibility is the back-to-top state.
type Visibility int

const (
	Hidden Visibility = iota
	Visible
)

func (v Visibility) String() string {
	if v == Visible {
		return "visible"
	}
	return "hidden"
}

// Tracker is the Hidden/Visible state machine. It starts Hidden and is
// Visible exactly while the last observed offset exceeds the threshold.
type Tracker struct {
	threshold int
	state     Visibility
	changes   observer.Registry[Visibility]
}

// NewTracker returns a Hidden tracker.
func NewTracker(threshold int) *Tracker {
	return &Tracker{threshold: threshold}
}

// Threshold returns the offset the viewport must exceed.
func (t *Tracker) Threshold() int {
	return t.threshold
}

// Observe feeds a new offset and notifies on transitions.
func (t *Tracker) Observe(offset int) {
	next := Hidden
	if offset > t.threshold {
		next = Visible
	}
	if next == t.state {
		return
	}
	t.state = next
	logTag.Logf("back-to-top %s at offset %d", next, offset)
	t.changes.Notify(next)
}

// State returns the current visibility.
func (t *Tracker) State() Visibility {
	return t.state
}

// Visible reports whether the control should render.
func (t *Tracker) Visible() bool {
	return t.state == Visible
}

// OnChange registers fn for transitions.
func (t *Tracker) OnChange(fn func(Visibility)) *observer.Subscription {
	return t.changes.Subscribe(fn)
}
