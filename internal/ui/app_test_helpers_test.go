package ui

import (
	"io"
	"testing"
	"time"

	"github.com/sadsen/saad/internal/document"
	"github.com/sadsen/saad/internal/i18n"
	"github.com/sadsen/saad/internal/prefs"
	"github.com/sadsen/saad/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
)

type testFixture struct {
	app      *App
	store    *prefs.MemoryStore
	system   *theme.SystemObserver
	theme    *theme.Controller
	locale   *i18n.Controller
	doc      *document.Document
	clock    time.Time
	copied   []string
	copyErr  error
	palettes []string
}

type fixtureOption func(*testFixture, *Config)

func withLocale(l i18n.Locale) fixtureOption {
	return func(f *testFixture, _ *Config) {
		_ = f.store.Set(prefs.KeyLocale, string(l))
	}
}

func withMode(m theme.Mode) fixtureOption {
	return func(f *testFixture, _ *Config) {
		_ = f.store.Set(prefs.KeyThemeMode, string(m))
	}
}

func withPoll(d time.Duration) fixtureOption {
	return func(_ *testFixture, cfg *Config) {
		cfg.SystemPoll = d
	}
}

// newFixture builds a mounted, sized app rendering plain output so layout
// does not depend on glamour's styles.
func newFixture(t *testing.T, opts ...fixtureOption) *testFixture {
	t.Helper()
	f := &testFixture{
		store: prefs.NewMemoryStore(),
		clock: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	cfg := Config{
		OutputFormat: formatPlain,
		Clipboard: func(text string) error {
			f.copied = append(f.copied, text)
			return f.copyErr
		},
		SavePalette: func(name string) error {
			f.palettes = append(f.palettes, name)
			return nil
		},
		Now:     func() time.Time { return f.clock },
		Version: "test",
	}
	opts = append([]fixtureOption{withLocale(i18n.English)}, opts...)
	for _, opt := range opts {
		opt(f, &cfg)
	}

	f.doc = document.New(io.Discard)
	f.system = theme.NewSystemObserver(theme.FixedDetector(theme.Dark))
	f.theme = theme.NewController(f.store, f.system, f.doc)
	catalog, err := i18n.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	f.locale, err = i18n.NewController(catalog, f.store, f.doc)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	cfg.Theme = f.theme
	cfg.System = f.system
	cfg.Locale = f.locale
	cfg.Document = f.doc
	f.app, err = NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	f.app.Init()
	t.Cleanup(f.app.Close)
	f.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	return f
}

func (f *testFixture) send(msg tea.Msg) tea.Cmd {
	_, cmd := f.app.Update(msg)
	return cmd
}

func (f *testFixture) press(keys ...string) {
	for _, k := range keys {
		f.send(keyMsg(k))
	}
}

// settle runs animation frames until the smooth scroll finishes.
func (f *testFixture) settle(t *testing.T) {
	t.Helper()
	for i := 0; f.app.scroller.Active(); i++ {
		if i > 2000 {
			t.Fatalf("scroll animation did not settle")
		}
		f.send(animFrameMsg{})
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func windowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
