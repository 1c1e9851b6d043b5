package i18n

import (
	"fmt"

	"github.com/sadsen/saad/internal/debug"
	appErrors "github.com/sadsen/saad/internal/errors"
	"github.com/sadsen/saad/internal/observer"
	"github.com/sadsen/saad/internal/prefs"
)

const logTag = debug.Component("locale")

// DirectionApplier receives the text direction of the active locale. The
// document root is the only implementation outside tests.
type DirectionApplier interface {
	SetDirection(Direction)
}

// Controller owns the active locale. It is the only writer of the document
// direction; views read through Locale, Table, Translate and T.
type Controller struct {
	catalog *Catalog
	store   prefs.Store
	doc     DirectionApplier

	locale Locale
	subs   observer.Registry[Locale]
}

// NewController restores the persisted locale (Arabic when absent or
// invalid) and applies its direction before returning.
func NewController(catalog *Catalog, store prefs.Store, doc DirectionApplier) (*Controller, error) {
	if catalog == nil {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "locale controller needs a catalog", nil)
	}
	for _, l := range Locales {
		if catalog.Table(l) == nil {
			return nil, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("no translation table for %s", l), nil)
		}
	}
	c := &Controller{
		catalog: catalog,
		store:   store,
		doc:     doc,
		locale:  DefaultLocale,
	}
	if store != nil {
		raw, ok, err := store.Get(prefs.KeyLocale)
		switch {
		case err != nil:
			logTag.Logf("read persisted locale: %v (using %s)", err, DefaultLocale)
		case ok:
			if l, err := ParseLocale(raw); err == nil {
				c.locale = l
			} else {
				logTag.Logf("ignoring persisted locale %q", raw)
			}
		}
	}
	c.apply()
	return c, nil
}

// Locale returns the active locale.
func (c *Controller) Locale() Locale {
	return c.locale
}

// Direction returns the active text direction.
func (c *Controller) Direction() Direction {
	return c.locale.Direction()
}

// Table returns the active translation table.
func (c *Controller) Table() *Table {
	return c.catalog.Table(c.locale)
}

// Toggle flips between Arabic and English.
func (c *Controller) Toggle() error {
	return c.SetLocale(c.locale.Other())
}

// SetLocale switches to l, persists it, applies the direction and notifies
// subscribers. Out-of-domain values fail with CodeInvalidArgument and leave
// the state untouched. A persist failure is returned after the switch has
// been committed.
func (c *Controller) SetLocale(l Locale) error {
	if err := l.Validate(); err != nil {
		return err
	}
	c.locale = l
	c.apply()
	logTag.Logf("locale=%s dir=%s", l, l.Direction())

	var persistErr error
	if c.store != nil {
		if err := c.store.Set(prefs.KeyLocale, string(l)); err != nil {
			persistErr = fmt.Errorf("persist locale: %w", err)
			logTag.Logf("%v", persistErr)
		}
	}
	c.subs.Notify(l)
	return persistErr
}

// Translate looks path up in the active table.
func (c *Controller) Translate(path string) (string, error) {
	if v, ok := c.Table().Lookup(path); ok {
		return v, nil
	}
	return "", missingKeyError(c.locale, path)
}

// T is Translate for view code. A missing key is a configuration defect
// that the parity tests exist to catch, so it panics rather than rendering
// a blank.
func (c *Controller) T(path string) string {
	v, err := c.Translate(path)
	if err != nil {
		panic(err)
	}
	return v
}

// Subscribe registers fn to run after every committed locale change.
func (c *Controller) Subscribe(fn func(Locale)) *observer.Subscription {
	return c.subs.Subscribe(fn)
}

func (c *Controller) apply() {
	if c.doc != nil {
		c.doc.SetDirection(c.locale.Direction())
	}
}

func missingKeyError(l Locale, path string) error {
	return appErrors.New(appErrors.CodeMissingTranslationKey, fmt.Sprintf("missing translation key %q for locale %s", path, l), nil)
}
