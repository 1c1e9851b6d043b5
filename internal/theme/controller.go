package theme

import (
	"fmt"

	"github.com/sadsen/saad/internal/debug"
	"github.com/sadsen/saad/internal/observer"
	"github.com/sadsen/saad/internal/prefs"
)

const logTag = debug.Component("theme")

// DarkApplier receives the resolved appearance as the document-level dark
// flag.
type DarkApplier interface {
	SetDark(bool)
}

// State is what subscribers receive after every committed change.
type State struct {
	Mode     Mode
	Resolved Appearance
}

// Controller owns the theme mode and the resolved appearance. It is the
// only writer of the document dark flag.
type Controller struct {
	store  prefs.Store
	system *SystemObserver
	doc    DarkApplier

	mode       Mode
	resolved   Appearance
	applied    bool
	lastSystem Appearance

	systemSub *observer.Subscription
	subs      observer.Registry[State]
}

// NewController restores the persisted mode (system when absent or
// invalid), queries the system appearance once and applies the resolved
// value before returning, so the first render already uses it.
func NewController(store prefs.Store, system *SystemObserver, doc DarkApplier) *Controller {
	if system == nil {
		system = NewSystemObserver(nil)
	}
	c := &Controller{
		store:  store,
		system: system,
		doc:    doc,
		mode:   DefaultMode,
	}
	if store != nil {
		raw, ok, err := store.Get(prefs.KeyThemeMode)
		switch {
		case err != nil:
			logTag.Logf("read persisted mode: %v (using %s)", err, DefaultMode)
		case ok:
			if m, err := ParseMode(raw); err == nil {
				c.mode = m
			} else {
				logTag.Logf("ignoring persisted mode %q", raw)
			}
		}
	}
	c.lastSystem = system.Current()
	c.reconcile()
	c.systemSub = system.Subscribe(c.onSystemChange)
	return c
}

// Mode returns the user's selection.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Resolved returns the appearance currently applied.
func (c *Controller) Resolved() Appearance {
	return c.resolved
}

// LastSystem returns the most recent system appearance seen, whether or not
// it affected the resolved value.
func (c *Controller) LastSystem() Appearance {
	return c.lastSystem
}

// State returns mode and resolved appearance together.
func (c *Controller) State() State {
	return State{Mode: c.mode, Resolved: c.resolved}
}

// SetMode validates, commits, applies and broadcasts m, then persists it.
// Out-of-domain values fail with CodeInvalidArgument and leave the state
// untouched. A persist failure is returned after the change is committed.
func (c *Controller) SetMode(m Mode) error {
	if err := m.Validate(); err != nil {
		return err
	}
	c.mode = m
	c.reconcile()
	logTag.Logf("mode=%s resolved=%s", c.mode, c.resolved)

	var persistErr error
	if c.store != nil {
		if err := c.store.Set(prefs.KeyThemeMode, string(m)); err != nil {
			persistErr = fmt.Errorf("persist theme mode: %w", err)
			logTag.Logf("%v", persistErr)
		}
	}
	c.subs.Notify(c.State())
	return persistErr
}

// Cycle advances light → dark → system → light.
func (c *Controller) Cycle() error {
	return c.SetMode(c.mode.Next())
}

// Subscribe registers fn to run after every committed change.
func (c *Controller) Subscribe(fn func(State)) *observer.Subscription {
	return c.subs.Subscribe(fn)
}

// Close detaches from the system observer.
func (c *Controller) Close() {
	c.systemSub.Release()
}

func (c *Controller) onSystemChange(a Appearance) {
	c.lastSystem = a
	if c.mode != ModeSystem {
		logTag.Logf("system=%s ignored (mode=%s)", a, c.mode)
		return
	}
	if c.reconcile() {
		logTag.Logf("system=%s resolved=%s", a, c.resolved)
		c.subs.Notify(c.State())
	}
}

// reconcile recomputes the resolved appearance and writes the document
// flag only when it changed. It reports whether it wrote.
func (c *Controller) reconcile() bool {
	next := Resolve(c.mode, c.lastSystem)
	if c.applied && next == c.resolved {
		return false
	}
	c.resolved = next
	c.applied = true
	if c.doc != nil {
		c.doc.SetDark(next.IsDark())
	}
	return true
}
