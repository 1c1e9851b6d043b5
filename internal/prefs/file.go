package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/sadsen/saad/internal/config"

	"github.com/spf13/viper"
)

// filePrefix nests the preferences under their own section so they can live
// in the regular YAML config file next to other settings.
const filePrefix = "preferences."

// FileStore keeps preferences in a YAML file, typically the user config.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store writing to path. The file is created on the
// first Set.
func NewFileStore(path string) (*FileStore, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, storageError("open preferences file", fmt.Errorf("empty path"))
	}
	return &FileStore{path: trimmed}, nil
}

func (s *FileStore) load() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(s.path)
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return v, nil
		}
		if _, statErr := os.Stat(s.path); errors.Is(statErr, fs.ErrNotExist) {
			return v, nil
		}
		return nil, err
	}
	return v, nil
}

// Get re-reads the preferences section of the YAML file and returns key's value.
func (s *FileStore) Get(key Key) (string, bool, error) {
	if err := key.Validate(); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.load()
	if err != nil {
		return "", false, storageError(fmt.Sprintf("read %s", key), err)
	}
	name := filePrefix + string(key)
	if !v.IsSet(name) {
		return "", false, nil
	}
	return v.GetString(name), true, nil
}

// Set writes key into the YAML file, keeping the rest of the file intact.
func (s *FileStore) Set(key Key, value string) error {
	if err := key.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := config.WriteKey(s.path, filePrefix+string(key), value); err != nil {
		return storageError(fmt.Sprintf("write %s", key), err)
	}
	return nil
}
