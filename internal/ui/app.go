package ui

import (
	"time"

	"github.com/sadsen/saad/internal/debug"
	"github.com/sadsen/saad/internal/document"
	appErrors "github.com/sadsen/saad/internal/errors"
	"github.com/sadsen/saad/internal/i18n"
	"github.com/sadsen/saad/internal/observer"
	"github.com/sadsen/saad/internal/scroll"
	"github.com/sadsen/saad/internal/theme"
	"github.com/sadsen/saad/internal/ui/palette"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const logTag = debug.Component("ui")

const (
	minViewportWidth    = 20
	minViewportHeight   = 3
	defaultUnitsPerLine = 20
)

// Config configures the portfolio shell. Theme, Locale and Document are
// required; everything else has a default.
type Config struct {
	Theme    *theme.Controller
	System   *theme.SystemObserver
	Locale   *i18n.Controller
	Document *document.Document

	Palettes    *palette.Registry
	Palette     string
	SavePalette func(name string) error

	Scroll       scroll.Options
	UnitsPerLine int
	SystemPoll   time.Duration
	OutputFormat string

	Chat      ChatWidget
	Clipboard func(text string) error
	Profile   Profile
	Version   string
	Now       func() time.Time
}

// App implements the Bubble Tea model for the portfolio page.
type App struct {
	theme  *theme.Controller
	system *theme.SystemObserver
	locale *i18n.Controller
	doc    *document.Document

	palettes    *palette.Registry
	savePalette func(string) error
	styles      styles
	keys        KeyMap

	coordinator  *scroll.Coordinator
	scroller     *smoothScroller
	feed         scroll.Feed
	scope        *observer.Scope
	unitsPerLine int

	viewport     viewport.Model
	ready        bool
	width        int
	height       int
	contentDirty bool
	renderedAt   int

	pollInterval time.Duration
	outputFormat string
	profile      Profile
	chat         ChatWidget
	clipboard    func(string) error
	now          func() time.Time
	version      string

	lastMode     theme.Mode
	animating    bool
	toasts       toastQueue
	toastTicking bool
	showHelp     bool
}

// NewApp wires the shell to the presentation-state controllers. It does not
// subscribe to anything yet; that happens in Init.
func NewApp(cfg Config) (*App, error) {
	if cfg.Theme == nil || cfg.Locale == nil || cfg.Document == nil {
		return nil, appErrors.New(appErrors.CodeInvalidArgument, "ui: theme, locale and document are required", nil)
	}
	if cfg.Scroll == (scroll.Options{}) {
		cfg.Scroll = scroll.DefaultOptions()
	}
	if cfg.UnitsPerLine <= 0 {
		cfg.UnitsPerLine = defaultUnitsPerLine
	}
	if cfg.Palettes == nil {
		cfg.Palettes = palette.Builtin()
	}
	if cfg.Chat == nil {
		cfg.Chat = NewLauncher()
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.WriteAll
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Profile == (Profile{}) {
		cfg.Profile = DefaultProfile()
	}

	app := &App{
		theme:        cfg.Theme,
		system:       cfg.System,
		locale:       cfg.Locale,
		doc:          cfg.Document,
		palettes:     cfg.Palettes,
		savePalette:  cfg.SavePalette,
		keys:         DefaultKeyMap(),
		unitsPerLine: cfg.UnitsPerLine,
		pollInterval: cfg.SystemPoll,
		outputFormat: normalizeFormat(cfg.OutputFormat),
		profile:      cfg.Profile,
		chat:         cfg.Chat,
		clipboard:    cfg.Clipboard,
		now:          cfg.Now,
		version:      cfg.Version,
		contentDirty: true,
		lastMode:     cfg.Theme.Mode(),
	}
	app.styles = newStyles(cfg.Document.Renderer(), cfg.Palettes.Lookup(cfg.Palette))
	app.scroller = newSmoothScroller(cfg.UnitsPerLine)
	app.coordinator = scroll.NewCoordinator(scroll.NewAnchors(), app.scroller, cfg.Scroll)
	return app, nil
}

// Init mounts the shell: the back-to-top tracker listens to the viewport
// feed and the controllers' change events mark the page for re-render. All
// of it lives in one scope that Close releases.
func (m *App) Init() tea.Cmd {
	m.mount()
	return scheduleSystemPoll(m.system, m.pollInterval)
}

func (m *App) mount() {
	if m.scope != nil && !m.scope.Closed() {
		return
	}
	scope := m.coordinator.Mount(&m.feed)
	scope.Add(m.theme.Subscribe(m.onThemeChange))
	scope.Add(m.locale.Subscribe(m.onLocaleChange))
	m.scope = scope
	logTag.Logf("mounted with %d scroll listener(s)", m.feed.Listeners())
}

// Close unmounts the shell. It is safe to call more than once and before
// Init.
func (m *App) Close() {
	if m.scope == nil {
		return
	}
	m.scope.Close()
	logTag.Logf("unmounted")
}

// Coordinator exposes the scroll coordinator, e.g. for tests and deep links.
func (m *App) Coordinator() *scroll.Coordinator {
	return m.coordinator
}

// onThemeChange re-renders for every resolved change; only a user-chosen
// mode change is announced.
func (m *App) onThemeChange(s theme.State) {
	m.contentDirty = true
	if s.Mode == m.lastMode {
		return
	}
	m.lastMode = s.Mode
	m.pushToast(toastTheme, m.locale.T("toast.theme")+": "+s.Mode.Icon()+" "+m.locale.T("theme."+string(s.Mode)))
}

func (m *App) onLocaleChange(l i18n.Locale) {
	m.contentDirty = true
	m.pushToast(toastLocale, m.locale.T("toast.language")+": "+l.NativeName())
}

func (m *App) pushToast(kind toastKind, text string) {
	m.toasts.push(kind, text, m.now())
}

// offsetUnits converts the viewport position to scroll units.
func (m *App) offsetUnits() int {
	return m.viewport.YOffset * m.unitsPerLine
}

// publishOffset feeds the current offset to scroll listeners.
func (m *App) publishOffset() {
	m.feed.Publish(m.offsetUnits())
}
