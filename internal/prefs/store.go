// Package prefs persists the two user preferences (theme mode and locale)
// across sessions. Stores are plain get/set: no validation of values, no
// schema versioning, last write wins.
package prefs

import (
	"fmt"
	"strings"

	appErrors "github.com/sadsen/saad/internal/errors"
)

// Key names a persisted preference.
type Key string

const (
	KeyThemeMode Key = "theme-mode"
	KeyLocale    Key = "locale"
)

// Keys lists every key a store accepts.
var Keys = []Key{KeyThemeMode, KeyLocale}

// Validate rejects keys outside the known set.
func (k Key) Validate() error {
	for _, known := range Keys {
		if k == known {
			return nil
		}
	}
	return appErrors.New(appErrors.CodeInvalidArgument, fmt.Sprintf("unknown preference key: %q", string(k)), nil)
}

// Store reads and writes scalar preferences. Get reports ok=false when the
// key was never set.
type Store interface {
	Get(key Key) (value string, ok bool, err error)
	Set(key Key, value string) error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendFile   Backend = "file"
	BackendMemory Backend = "memory"
)

// ParseBackend normalises a backend name.
func ParseBackend(raw string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(raw)))
	switch b {
	case BackendSQLite, BackendFile, BackendMemory:
		return b, nil
	case "":
		return BackendSQLite, nil
	}
	return "", appErrors.New(appErrors.CodeInvalidArgument, fmt.Sprintf("unknown preference backend: %q", raw), nil)
}

// Open constructs the store for backend at path. The returned close func
// is never nil.
func Open(backend Backend, path string) (Store, func() error, error) {
	noop := func() error { return nil }
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), noop, nil
	case BackendFile:
		s, err := NewFileStore(path)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case BackendSQLite, "":
		s, err := OpenSQLiteStore(path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	}
	return nil, noop, appErrors.New(appErrors.CodeInvalidArgument, fmt.Sprintf("unknown preference backend: %q", string(backend)), nil)
}

func storageError(op string, err error) error {
	return appErrors.New(appErrors.CodeStorage, fmt.Sprintf("%s: %v", op, err), err)
}
