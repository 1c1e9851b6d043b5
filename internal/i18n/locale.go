// Package i18n owns the active display language: the two locales, their
// flat translation tables and the text direction each one implies.
package i18n

import (
	"fmt"
	"strings"

	appErrors "github.com/sadsen/saad/internal/errors"
)

// Locale is the active display language.
type Locale string

const (
	Arabic  Locale = "ar"
	English Locale = "en"

	DefaultLocale = Arabic
)

// Locales lists every supported locale in display order.
var Locales = []Locale{Arabic, English}

// Direction is the text direction applied to the document root.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// ParseLocale normalises and validates a locale code.
func ParseLocale(raw string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(raw)))
	if err := l.Validate(); err != nil {
		return "", err
	}
	return l, nil
}

// Validate reports whether l is one of the supported locales.
func (l Locale) Validate() error {
	switch l {
	case Arabic, English:
		return nil
	}
	return appErrors.New(appErrors.CodeInvalidArgument, fmt.Sprintf("invalid locale: %q", string(l)), nil)
}

// Direction returns rtl for Arabic and ltr for English.
func (l Locale) Direction() Direction {
	if l == Arabic {
		return RTL
	}
	return LTR
}

// Other returns the locale a toggle switches to.
func (l Locale) Other() Locale {
	if l == Arabic {
		return English
	}
	return Arabic
}

// NativeName is the language's name written in itself.
func (l Locale) NativeName() string {
	switch l {
	case Arabic:
		return "العربية"
	case English:
		return "English"
	}
	return string(l)
}
