// Package palette provides the semantic colour sets the portfolio can be
// drawn with. Every colour is adaptive: the document dark flag picks the
// Light or Dark variant, so a palette never needs to know the theme mode.
package palette

import (
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Palette is a named set of semantic colours.
type Palette struct {
	Name string

	Primary   lipgloss.AdaptiveColor // brand accent, active pills, headings
	Secondary lipgloss.AdaptiveColor // links, field labels
	Accent    lipgloss.AdaptiveColor // highlights, the logo suffix

	Success lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor

	Text           lipgloss.AdaptiveColor
	TextMuted      lipgloss.AdaptiveColor
	TextEmphasized lipgloss.AdaptiveColor

	Background lipgloss.AdaptiveColor
	Surface    lipgloss.AdaptiveColor // nav bar, cards, toasts

	Border        lipgloss.AdaptiveColor
	BorderFocused lipgloss.AdaptiveColor
}

// Registry holds the available palettes.
type Registry struct {
	mu       sync.RWMutex
	palettes map[string]Palette
}

// NewRegistry returns a registry containing ps.
func NewRegistry(ps ...Palette) *Registry {
	r := &Registry{palettes: make(map[string]Palette, len(ps))}
	for _, p := range ps {
		r.Register(p)
	}
	return r
}

// Builtin returns a registry with every bundled palette.
func Builtin() *Registry {
	return NewRegistry(Emerald(), TokyoNight(), Dracula(), Nord())
}

// Register adds or replaces p.
func (r *Registry) Register(p Palette) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.palettes[p.Name] = p
}

// Get returns the palette called name.
func (r *Registry) Get(name string) (Palette, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.palettes[name]
	return p, ok
}

// Lookup returns the palette called name, falling back to the first one in
// sorted order when it is unknown.
func (r *Registry) Lookup(name string) Palette {
	if p, ok := r.Get(name); ok {
		return p
	}
	if p, ok := r.Get(Emerald().Name); ok {
		return p
	}
	names := r.Names()
	if len(names) == 0 {
		return Emerald()
	}
	p, _ := r.Get(names[0])
	return p
}

// Names returns every palette name in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.palettes))
	for name := range r.palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the palette after current in sorted order, wrapping around.
func (r *Registry) Next(current string) Palette {
	names := r.Names()
	if len(names) == 0 {
		return Emerald()
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = (i + 1) % len(names)
			break
		}
	}
	p, _ := r.Get(names[idx])
	return p
}
