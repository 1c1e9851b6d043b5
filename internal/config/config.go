package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const (
	KeyDebug = "debug"

	KeyPreferencesBackend = "preferences.backend"
	KeyPreferencesPath    = "preferences.path"

	KeyScrollNavOffset           = "scroll.nav-offset"
	KeyScrollVisibilityThreshold = "scroll.visibility-threshold"
	KeyScrollUnitsPerLine        = "scroll.units-per-line"

	KeySystemPollSeconds = "theme.system-poll-seconds"

	KeyOutputFormat = "output.format"
	KeyPalette      = "palette"
)

const (
	// DefaultNavOffset is the height of the navigation bar in scroll units.
	DefaultNavOffset = 70
	// DefaultVisibilityThreshold is the scroll offset, in units, past which
	// the back-to-top control appears.
	DefaultVisibilityThreshold = 400
	// DefaultUnitsPerLine maps one rendered content line to scroll units.
	DefaultUnitsPerLine = 20
	// DefaultSystemPollSeconds is how often COLORFGBG is re-read while the
	// program runs. Zero disables polling.
	DefaultSystemPollSeconds = 0

	DefaultPreferencesBackend = "sqlite"
	DefaultPalette            = "emerald"

	// DirName is the per-user and per-project config directory name.
	DirName   = ".portfolio"
	fileName  = "config.yaml"
	envPrefix = "PF"
	prefsDB   = "preferences.db"
)

type initSettings struct {
	workingDir        string
	projectConfigPath string
	userConfigPath    string
}

// Option configures Initialize behaviour. Useful for tests to override paths.
type Option func(*initSettings)

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(cfg *initSettings) {
		cfg.workingDir = dir
	}
}

// WithProjectConfig explicitly sets the project config path instead of discovery.
func WithProjectConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.projectConfigPath = path
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.userConfigPath = path
	}
}

var (
	configOnce sync.Once
	configMu   sync.RWMutex
	configInst *viper.Viper
	initErr    error

	// resolved paths of the last successful Initialize, used by SavePalette.
	activeUserConfig    string
	activeProjectConfig string
)

// Initialize loads configuration using the precedence:
// defaults < user config < project config < environment variables < overrides.
func Initialize(opts ...Option) error {
	configOnce.Do(func() {
		settings := initSettings{}
		for _, opt := range opts {
			opt(&settings)
		}
		initErr = configure(&settings)
	})
	return initErr
}

// ApplyOverrides injects values typically coming from CLI flags.
func ApplyOverrides(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return fmt.Errorf("configuration not initialized")
	}
	for k, v := range overrides {
		configInst.Set(k, v)
	}
	return nil
}

// GetString fetches a string configuration value, initializing on demand.
func GetString(key string) string {
	v, err := getViper()
	if err != nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool fetches a bool configuration value, initializing on demand.
func GetBool(key string) bool {
	v, err := getViper()
	if err != nil {
		return false
	}
	return v.GetBool(key)
}

// GetInt fetches an integer configuration value, initializing on demand.
func GetInt(key string) int {
	v, err := getViper()
	if err != nil {
		return 0
	}
	return v.GetInt(key)
}

// GetDuration fetches a duration configuration value, initializing on demand.
func GetDuration(key string) time.Duration {
	v, err := getViper()
	if err != nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set updates a configuration key at runtime, initializing on demand.
func Set(key string, value any) error {
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return fmt.Errorf("configuration not initialized")
	}
	configInst.Set(key, value)
	return nil
}

// PreferencesPath returns the configured preference store location, falling
// back to ~/.portfolio/preferences.db.
func PreferencesPath() (string, error) {
	if p := strings.TrimSpace(GetString(KeyPreferencesPath)); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, DirName, prefsDB), nil
}

// UserConfigPath returns the user config file in effect.
func UserConfigPath() (string, error) {
	configMu.RLock()
	path := activeUserConfig
	configMu.RUnlock()
	if path != "" {
		return path, nil
	}
	return defaultUserConfigPath()
}

func configure(settings *initSettings) error {
	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return err
		}
		userConfigPath = path
	}

	projectConfigPath := strings.TrimSpace(settings.projectConfigPath)
	if projectConfigPath == "" {
		path, err := findProjectConfig(workingDir)
		if err != nil {
			return err
		}
		projectConfigPath = path
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return fmt.Errorf("load user config: %w", err)
	}
	if err := mergeConfigFile(v, projectConfigPath); err != nil {
		return fmt.Errorf("load project config: %w", err)
	}

	configMu.Lock()
	defer configMu.Unlock()
	configInst = v
	activeUserConfig = userConfigPath
	activeProjectConfig = projectConfigPath
	return nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	//nolint:gosec // G304: Config loader intentionally reads user and project config files
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, DirName, fileName), nil
}

func findProjectConfig(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", nil
	}
	dir := startDir
	for {
		candidate := filepath.Join(dir, DirName, fileName)
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %s is a directory", candidate)
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyPreferencesBackend, DefaultPreferencesBackend)
	v.SetDefault(KeyPreferencesPath, "")
	v.SetDefault(KeyScrollNavOffset, DefaultNavOffset)
	v.SetDefault(KeyScrollVisibilityThreshold, DefaultVisibilityThreshold)
	v.SetDefault(KeyScrollUnitsPerLine, DefaultUnitsPerLine)
	v.SetDefault(KeySystemPollSeconds, DefaultSystemPollSeconds)
	v.SetDefault(KeyOutputFormat, "rich")
	v.SetDefault(KeyPalette, DefaultPalette)
}

func getViper() (*viper.Viper, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	configMu.RLock()
	defer configMu.RUnlock()
	if configInst == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return configInst, nil
}

// reset clears package state for tests.
func reset() {
	configMu.Lock()
	defer configMu.Unlock()
	configInst = nil
	initErr = nil
	configOnce = sync.Once{}
	activeUserConfig = ""
	activeProjectConfig = ""
}

// ResetForTesting clears package state for tests in other packages and
// initializes against an empty temp directory. Returns a cleanup function.
func ResetForTesting(t interface{ TempDir() string }) func() {
	reset()
	tmp := t.TempDir()
	_ = Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, fileName)))
	return reset
}

// SavePalette persists the palette name to the appropriate config file.
// If a project config exists, it updates that file; otherwise the user
// config. The user config directory is auto-created if needed, but project
// config directories are never auto-created.
func SavePalette(name string) error {
	targetPath, err := findWritableConfigPath()
	if err != nil {
		return fmt.Errorf("find config path: %w", err)
	}
	if err := WriteKey(targetPath, KeyPalette, name); err != nil {
		return err
	}
	return Set(KeyPalette, name)
}

// WriteKey sets a single key in the YAML file at path, preserving the
// other settings already stored there.
func WriteKey(path, key string, value any) error {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	// missing file is fine, it is created below
	_ = v.ReadInConfig()

	v.Set(key, value)

	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// findWritableConfigPath returns the project config path if one was found,
// otherwise the user config path.
func findWritableConfigPath() (string, error) {
	configMu.RLock()
	project := activeProjectConfig
	configMu.RUnlock()
	if project != "" {
		return project, nil
	}
	return UserConfigPath()
}
