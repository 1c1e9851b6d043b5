package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sadsen/saad/internal/config"
	"github.com/sadsen/saad/internal/debug"
	"github.com/sadsen/saad/internal/document"
	"github.com/sadsen/saad/internal/i18n"
	"github.com/sadsen/saad/internal/prefs"
	"github.com/sadsen/saad/internal/scroll"
	"github.com/sadsen/saad/internal/theme"
	"github.com/sadsen/saad/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	debugFlag := flag.Bool("debug", config.GetBool(config.KeyDebug), "Write a debug log to ~/.portfolio/debug.log")
	backendFlag := flag.String("prefs-backend", config.GetString(config.KeyPreferencesBackend), "Preference store backend (sqlite, file, memory)")
	prefsPathFlag := flag.String("prefs-path", config.GetString(config.KeyPreferencesPath), "Path to the preference store")
	outputFormatFlag := flag.String("output-format", config.GetString(config.KeyOutputFormat), "Section markdown style (rich, plain)")
	noSystemPollFlag := flag.Bool("no-system-poll", false, "Disable COLORFGBG polling even when theme.system-poll-seconds is set")
	flag.Parse()

	if *versionFlag {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	runtime := computeRuntimeOptions(runtimeFlags{
		debug:        debugFlag,
		backend:      backendFlag,
		prefsPath:    prefsPathFlag,
		outputFormat: outputFormatFlag,
		noSystemPoll: noSystemPollFlag,
	}, visited)

	if err := debug.Init(runtime.debug); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
	}

	err := runProgram(runtime, theme.TerminalDetector(), func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	})
	debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

// runProgram builds the presentation-state core, runs the shell and tears
// everything down in reverse order on every exit path.
func runProgram(opts runtimeOptions, detect theme.Detector, factory programFactory) error {
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}

	backend, err := prefs.ParseBackend(opts.backend)
	if err != nil {
		return err
	}
	path, err := resolvePrefsPath(backend, opts.prefsPath)
	if err != nil {
		return fmt.Errorf("resolve preferences path: %w", err)
	}
	store, closeStore, err := prefs.Open(backend, path)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			debug.Logf("close preferences: %v", err)
		}
	}()
	debug.Logf("preferences: backend=%s path=%s", backend, path)

	catalog, err := i18n.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	if err := catalog.CheckParity(); err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	doc := document.New(os.Stdout)
	// The terminal is queried once here, before the program owns stdin.
	// In-program polls read COLORFGBG only.
	system := theme.NewSystemObserver(detect)
	system.PollWith(theme.EnvDetector(os.Getenv))
	themeCtl := theme.NewController(store, system, doc)
	defer themeCtl.Close()

	localeCtl, err := i18n.NewController(catalog, store, doc)
	if err != nil {
		return fmt.Errorf("initialize locale: %w", err)
	}

	app, err := ui.NewApp(ui.Config{
		Theme:        themeCtl,
		System:       system,
		Locale:       localeCtl,
		Document:     doc,
		Palette:      opts.palette,
		SavePalette:  config.SavePalette,
		Scroll:       opts.scroll,
		UnitsPerLine: opts.unitsPerLine,
		SystemPoll:   opts.systemPoll,
		OutputFormat: opts.outputFormat,
		Version:      Version,
	})
	if err != nil {
		return fmt.Errorf("initialize UI: %w", err)
	}
	defer app.Close()

	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

// resolvePrefsPath fills in the default location for backend when no path
// was configured.
func resolvePrefsPath(backend prefs.Backend, configured string) (string, error) {
	if path := strings.TrimSpace(configured); path != "" {
		return path, nil
	}
	switch backend {
	case prefs.BackendMemory:
		return "", nil
	case prefs.BackendFile:
		return config.UserConfigPath()
	}
	return config.PreferencesPath()
}

type runtimeFlags struct {
	debug        *bool
	backend      *string
	prefsPath    *string
	outputFormat *string
	noSystemPoll *bool
}

type runtimeOptions struct {
	debug        bool
	backend      string
	prefsPath    string
	outputFormat string
	palette      string
	systemPoll   time.Duration
	scroll       scroll.Options
	unitsPerLine int
}

func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	debugOn := config.GetBool(config.KeyDebug)
	if flagWasExplicitlySet("debug", visited) {
		debugOn = *flags.debug
	}

	backend := strings.TrimSpace(config.GetString(config.KeyPreferencesBackend))
	if flagWasExplicitlySet("prefs-backend", visited) {
		backend = strings.TrimSpace(*flags.backend)
	}

	prefsPath := strings.TrimSpace(config.GetString(config.KeyPreferencesPath))
	if flagWasExplicitlySet("prefs-path", visited) {
		prefsPath = strings.TrimSpace(*flags.prefsPath)
	}

	outputFormat := strings.TrimSpace(config.GetString(config.KeyOutputFormat))
	if flagWasExplicitlySet("output-format", visited) {
		outputFormat = strings.TrimSpace(*flags.outputFormat)
	}

	pollSeconds := sanitizeNonNegative(config.GetInt(config.KeySystemPollSeconds))
	if flagWasExplicitlySet("no-system-poll", visited) && *flags.noSystemPoll {
		pollSeconds = 0
	}

	return runtimeOptions{
		debug:        debugOn,
		backend:      backend,
		prefsPath:    prefsPath,
		outputFormat: outputFormat,
		palette:      strings.TrimSpace(config.GetString(config.KeyPalette)),
		systemPoll:   time.Duration(pollSeconds) * time.Second,
		scroll: scroll.Options{
			NavOffset:           config.GetInt(config.KeyScrollNavOffset),
			VisibilityThreshold: config.GetInt(config.KeyScrollVisibilityThreshold),
		},
		unitsPerLine: config.GetInt(config.KeyScrollUnitsPerLine),
	}
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}

func sanitizeNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
