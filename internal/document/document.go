// Package document holds the root-level presentation flags of the shell:
// the dark flag adaptive colours resolve against, and the text direction.
package document

import (
	"io"
	"sync"

	"github.com/sadsen/saad/internal/i18n"

	"github.com/charmbracelet/lipgloss"
)

// Document is written by the theme and locale controllers and read by the
// view. It satisfies theme.DarkApplier and i18n.DirectionApplier.
type Document struct {
	mu       sync.RWMutex
	renderer *lipgloss.Renderer
	dark     bool
	dir      i18n.Direction
}

// New returns a document rendering to w.
func New(w io.Writer) *Document {
	return NewWithRenderer(lipgloss.NewRenderer(w))
}

// NewWithRenderer wraps an existing renderer.
func NewWithRenderer(r *lipgloss.Renderer) *Document {
	return &Document{renderer: r, dark: true, dir: i18n.LTR}
}

// Renderer returns the lipgloss renderer styles should be created from.
func (d *Document) Renderer() *lipgloss.Renderer {
	return d.renderer
}

// SetDark sets the dark flag on the renderer.
func (d *Document) SetDark(dark bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dark = dark
	d.renderer.SetHasDarkBackground(dark)
}

// Dark reports the dark flag.
func (d *Document) Dark() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dark
}

// SetDirection sets the text direction.
func (d *Document) SetDirection(dir i18n.Direction) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dir = dir
}

// Direction returns the text direction.
func (d *Document) Direction() i18n.Direction {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dir
}

// RTL reports whether the direction is right-to-left.
func (d *Document) RTL() bool {
	return d.Direction() == i18n.RTL
}
