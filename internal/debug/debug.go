// Package debug writes the opt-in diagnostic log (--debug or PF_DEBUG=true)
// to ~/.portfolio/debug.log. Each launch starts a fresh file. While logging
// is off every call returns straight away.
package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// LogFileName is the log file inside LogDirName.
	LogFileName = "debug.log"
	// LogDirName is the per-user directory under $HOME.
	LogDirName = ".portfolio"
)

// sink owns the open log. A nil logger means logging is off.
type sink struct {
	mu     sync.RWMutex
	logger *log.Logger
	file   *os.File
}

var (
	active sink

	// getLogPath is swapped out in tests.
	getLogPath = defaultGetLogPath
)

// Init turns logging on or off for the rest of the process. Turning it on
// truncates the log file and stamps a start line.
func Init(enable bool) error {
	if !enable {
		active.replace(nil, nil)
		return nil
	}

	path, err := getLogPath()
	if err != nil {
		return fmt.Errorf("determine log path: %w", err)
	}
	f, err := openFresh(path)
	if err != nil {
		return err
	}
	l := log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds)
	l.Printf("=== portfolio debug log started at %s ===", time.Now().Format(time.RFC3339))
	active.replace(l, f)
	return nil
}

func openFresh(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// replace installs l and f, closing whatever file was open before.
func (s *sink) replace(l *log.Logger, f *os.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file != nil && s.file != f {
		_ = s.file.Close()
	}
	s.logger, s.file = l, f
}

func (s *sink) with(fn func(*log.Logger)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger != nil {
		fn(s.logger)
	}
}

// Close closes the log file. Anything logged afterwards is dropped.
func Close() {
	active.replace(nil, nil)
}

// Log appends one line built like fmt.Print.
func Log(v ...any) {
	active.with(func(l *log.Logger) { l.Print(v...) })
}

// Logf appends one line built like fmt.Printf.
func Logf(format string, v ...any) {
	active.with(func(l *log.Logger) { l.Printf(format, v...) })
}

// Enabled reports whether lines are currently being written.
func Enabled() bool {
	active.mu.RLock()
	defer active.mu.RUnlock()
	return active.logger != nil
}

// Component tags every line with a component name, e.g. "[theme] mode=dark".
type Component string

// Logf writes a formatted message prefixed with the component name.
func (c Component) Logf(format string, v ...any) {
	Logf("[%s] "+format, append([]any{string(c)}, v...)...)
}

func defaultGetLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, LogDirName, LogFileName), nil
}

// GetLogPath returns where Init(true) writes the log.
func GetLogPath() (string, error) {
	return getLogPath()
}
