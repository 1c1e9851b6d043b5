package main

import (
	"errors"
	"flag"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sadsen/saad/internal/config"
	appErrors "github.com/sadsen/saad/internal/errors"
	"github.com/sadsen/saad/internal/prefs"
	"github.com/sadsen/saad/internal/theme"
	"github.com/sadsen/saad/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func buildRuntimeOptionsForArgs(t *testing.T, args []string, overrides map[string]any) runtimeOptions {
	t.Helper()
	t.Cleanup(config.ResetForTesting(t))
	if len(overrides) > 0 {
		if err := config.ApplyOverrides(overrides); err != nil {
			t.Fatalf("apply overrides: %v", err)
		}
	}

	fs := flag.NewFlagSet("portfolio-test", flag.ContinueOnError)
	flags := runtimeFlags{
		debug:        fs.Bool("debug", config.GetBool(config.KeyDebug), "debug"),
		backend:      fs.String("prefs-backend", config.GetString(config.KeyPreferencesBackend), "backend"),
		prefsPath:    fs.String("prefs-path", config.GetString(config.KeyPreferencesPath), "path"),
		outputFormat: fs.String("output-format", config.GetString(config.KeyOutputFormat), "format"),
		noSystemPoll: fs.Bool("no-system-poll", false, "no poll"),
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse args: %v", err)
	}
	visited := map[string]struct{}{}
	fs.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})
	return computeRuntimeOptions(flags, visited)
}

func TestComputeRuntimeOptions_Defaults(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, nil, nil)
	if opts.backend != "sqlite" {
		t.Fatalf("expected sqlite backend, got %q", opts.backend)
	}
	if opts.systemPoll != 0 {
		t.Fatalf("expected polling off by default, got %v", opts.systemPoll)
	}
	if opts.scroll.NavOffset != 70 || opts.scroll.VisibilityThreshold != 400 {
		t.Fatalf("unexpected scroll options %+v", opts.scroll)
	}
	if opts.unitsPerLine != 20 {
		t.Fatalf("expected 20 units per line, got %d", opts.unitsPerLine)
	}
	if opts.outputFormat != "rich" || opts.palette != "emerald" {
		t.Fatalf("unexpected format/palette %q/%q", opts.outputFormat, opts.palette)
	}
}

func TestComputeRuntimeOptions_FlagsOverrideConfig(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t,
		[]string{"--prefs-backend=memory", "--output-format=plain", "--prefs-path= /tmp/p.db "},
		map[string]any{
			config.KeyPreferencesBackend: "file",
			config.KeyOutputFormat:       "rich",
		})
	if opts.backend != "memory" {
		t.Fatalf("expected flag backend, got %q", opts.backend)
	}
	if opts.outputFormat != "plain" {
		t.Fatalf("expected flag format, got %q", opts.outputFormat)
	}
	if opts.prefsPath != "/tmp/p.db" {
		t.Fatalf("expected trimmed path, got %q", opts.prefsPath)
	}
}

func TestComputeRuntimeOptions_ConfigUsedWithoutFlags(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, nil, map[string]any{
		config.KeyPreferencesBackend:        "file",
		config.KeyScrollNavOffset:           90,
		config.KeyScrollVisibilityThreshold: 600,
		config.KeyDebug:                     true,
	})
	if opts.backend != "file" || !opts.debug {
		t.Fatalf("expected config values, got %+v", opts)
	}
	if opts.scroll.NavOffset != 90 || opts.scroll.VisibilityThreshold != 600 {
		t.Fatalf("expected config scroll options, got %+v", opts.scroll)
	}
}

func TestComputeRuntimeOptions_PollIsOptIn(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, nil, map[string]any{config.KeySystemPollSeconds: 5})
	if opts.systemPoll != 5*time.Second {
		t.Fatalf("expected 5s poll, got %v", opts.systemPoll)
	}
}

func TestComputeRuntimeOptions_NoSystemPoll(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, []string{"--no-system-poll"}, map[string]any{config.KeySystemPollSeconds: 5})
	if opts.systemPoll != 0 {
		t.Fatalf("expected polling disabled, got %v", opts.systemPoll)
	}
}

func TestComputeRuntimeOptions_NegativePollDisables(t *testing.T) {
	opts := buildRuntimeOptionsForArgs(t, nil, map[string]any{config.KeySystemPollSeconds: -3})
	if opts.systemPoll != 0 {
		t.Fatalf("expected negative seconds to disable polling, got %v", opts.systemPoll)
	}
}

type fakeRunner struct {
	run func() error
}

func (f fakeRunner) Run() (tea.Model, error) {
	return nil, f.run()
}

func TestRunProgramPersistsAndClosesStore(t *testing.T) {
	t.Cleanup(config.ResetForTesting(t))
	path := filepath.Join(t.TempDir(), "prefs.db")
	opts := runtimeOptions{backend: "sqlite", prefsPath: path, outputFormat: "plain"}

	var got *ui.App
	err := runProgram(opts, theme.FixedDetector(theme.Dark), func(app *ui.App) programRunner {
		got = app
		return fakeRunner{run: func() error {
			_, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
			return nil
		}}
	})
	if err != nil {
		t.Fatalf("runProgram: %v", err)
	}
	if got == nil {
		t.Fatalf("factory was not called")
	}

	store, err := prefs.OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer store.Close()
	mode, ok, err := store.Get(prefs.KeyThemeMode)
	if err != nil || !ok || mode != string(theme.ModeLight) {
		t.Fatalf("expected light persisted, got %q ok=%v err=%v", mode, ok, err)
	}
}

func TestRunProgramRejectsUnknownBackend(t *testing.T) {
	err := runProgram(runtimeOptions{backend: "redis"}, nil, func(*ui.App) programRunner {
		t.Fatalf("factory must not run")
		return nil
	})
	if !appErrors.IsCode(err, appErrors.CodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestRunProgramWrapsRunError(t *testing.T) {
	boom := errors.New("boom")
	err := runProgram(runtimeOptions{backend: "memory"}, nil, func(*ui.App) programRunner {
		return fakeRunner{run: func() error { return boom }}
	})
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), "run UI") {
		t.Fatalf("expected wrapped run error, got %v", err)
	}
}

func TestRunProgramNilFactoryAndProgram(t *testing.T) {
	if err := runProgram(runtimeOptions{backend: "memory"}, nil, nil); err == nil {
		t.Fatalf("expected error for nil factory")
	}
	err := runProgram(runtimeOptions{backend: "memory"}, nil, func(*ui.App) programRunner { return nil })
	if err == nil || !strings.Contains(err.Error(), "program is nil") {
		t.Fatalf("expected nil program error, got %v", err)
	}
}

func TestResolvePrefsPath(t *testing.T) {
	t.Cleanup(config.ResetForTesting(t))
	if got, err := resolvePrefsPath(prefs.BackendMemory, ""); err != nil || got != "" {
		t.Fatalf("memory needs no path, got %q err=%v", got, err)
	}
	if got, _ := resolvePrefsPath(prefs.BackendSQLite, "  custom.db "); got != "custom.db" {
		t.Fatalf("expected configured path, got %q", got)
	}
	got, err := resolvePrefsPath(prefs.BackendSQLite, "")
	if err != nil || !strings.HasSuffix(got, "preferences.db") {
		t.Fatalf("expected default sqlite path, got %q err=%v", got, err)
	}
}
