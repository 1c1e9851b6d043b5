// Package theme reconciles the user's theme mode with the terminal's
// light/dark preference and applies the result to the document.
package theme

import (
	"fmt"
	"strings"

	appErrors "github.com/sadsen/saad/internal/errors"
)

// Mode is the user's selection.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"

	DefaultMode = ModeSystem
)

// Modes lists the modes in cycle order.
var Modes = []Mode{ModeLight, ModeDark, ModeSystem}

// ParseMode normalises and validates a mode name.
func ParseMode(raw string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(raw)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate reports whether m is one of the three modes.
func (m Mode) Validate() error {
	switch m {
	case ModeLight, ModeDark, ModeSystem:
		return nil
	}
	return appErrors.New(appErrors.CodeInvalidArgument, fmt.Sprintf("invalid theme mode: %q", string(m)), nil)
}

// Next returns the mode after m in the cycle light → dark → system → light.
// Unknown modes restart the cycle at light.
func (m Mode) Next() Mode {
	switch m {
	case ModeLight:
		return ModeDark
	case ModeDark:
		return ModeSystem
	}
	return ModeLight
}

// Icon is the glyph shown on the theme toggle.
func (m Mode) Icon() string {
	switch m {
	case ModeLight:
		return "☀"
	case ModeDark:
		return "☾"
	}
	return "🖥"
}

// Appearance is a concrete light or dark rendering.
type Appearance string

const (
	Light Appearance = "light"
	Dark  Appearance = "dark"
)

// IsDark reports whether a is the dark appearance.
func (a Appearance) IsDark() bool {
	return a == Dark
}

// AppearanceOf maps a dark-background flag to an Appearance.
func AppearanceOf(dark bool) Appearance {
	if dark {
		return Dark
	}
	return Light
}

// Resolve returns the appearance mode m produces when the system prefers
// system. Fixed modes ignore the system signal.
func Resolve(m Mode, system Appearance) Appearance {
	switch m {
	case ModeLight:
		return Light
	case ModeDark:
		return Dark
	}
	if system == Dark {
		return Dark
	}
	return Light
}
