package theme

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/sadsen/saad/internal/observer"

	"github.com/muesli/termenv"
)

// Detector reports the current system appearance. ok is false when the
// source could not answer; callers must not treat that as Dark.
type Detector func() (a Appearance, ok bool)

// TerminalDetector queries the terminal background colour through termenv.
// It writes a query to the TTY and reads the reply, so it may only run
// before the program starts reading input.
func TerminalDetector() Detector {
	out := termenv.NewOutput(os.Stdout)
	return func() (Appearance, bool) {
		return AppearanceOf(out.HasDarkBackground()), true
	}
}

// EnvDetector reads COLORFGBG ("fg;bg" or "fg;default;bg") through getenv.
// It never touches the TTY. Background indexes 7 and 9-15 are light, the
// rest dark. An unset or malformed value reports ok=false.
func EnvDetector(getenv func(string) string) Detector {
	if getenv == nil {
		getenv = os.Getenv
	}
	return func() (Appearance, bool) {
		raw := strings.TrimSpace(getenv("COLORFGBG"))
		if raw == "" {
			return Dark, false
		}
		fields := strings.Split(raw, ";")
		bg, err := strconv.Atoi(strings.TrimSpace(fields[len(fields)-1]))
		if err != nil || bg < 0 || bg > 15 {
			return Dark, false
		}
		if bg == 7 || bg >= 9 {
			return Light, true
		}
		return Dark, true
	}
}

// FixedDetector always reports a.
func FixedDetector(a Appearance) Detector {
	return func() (Appearance, bool) { return a, true }
}

// SystemObserver tracks the operating environment's light/dark preference
// and emits an event each time it changes.
type SystemObserver struct {
	mu       sync.Mutex
	detect   Detector
	current  Appearance
	registry observer.Registry[Appearance]
}

// NewSystemObserver queries detect once for the initial value. A nil
// detector, or one that cannot answer, starts at Dark.
func NewSystemObserver(detect Detector) *SystemObserver {
	if detect == nil {
		detect = FixedDetector(Dark)
	}
	current := Dark
	if a, ok := detect(); ok {
		current = normalize(a)
	}
	return &SystemObserver{detect: detect, current: current}
}

// PollWith swaps the detector used by Detect and Poll. The current value
// is kept. Use it to hand the startup TTY query over to a source that is
// safe while the program owns stdin.
func (o *SystemObserver) PollWith(detect Detector) {
	if detect == nil {
		return
	}
	o.mu.Lock()
	o.detect = detect
	o.mu.Unlock()
}

// Current returns the last known system appearance.
func (o *SystemObserver) Current() Appearance {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Subscribe registers fn for change events.
func (o *SystemObserver) Subscribe(fn func(Appearance)) *observer.Subscription {
	return o.registry.Subscribe(fn)
}

// Detect runs the detector without recording the result. It is safe to
// call off the event loop; feed a successful result back through Set.
func (o *SystemObserver) Detect() (Appearance, bool) {
	o.mu.Lock()
	detect := o.detect
	o.mu.Unlock()
	a, ok := detect()
	return normalize(a), ok
}

// Poll re-runs the detector and emits when the value changed. A failed
// detection leaves the current value alone.
func (o *SystemObserver) Poll() bool {
	a, ok := o.Detect()
	if !ok {
		return false
	}
	return o.Set(a)
}

// Set records a, emitting a change event when it differs from the current
// value. It reports whether an event was emitted.
func (o *SystemObserver) Set(a Appearance) bool {
	a = normalize(a)
	o.mu.Lock()
	if a == o.current {
		o.mu.Unlock()
		return false
	}
	o.current = a
	o.mu.Unlock()

	o.registry.Notify(a)
	return true
}

func normalize(a Appearance) Appearance {
	if a == Light {
		return Light
	}
	return Dark
}
