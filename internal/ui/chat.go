package ui

import (
	"github.com/sadsen/saad/internal/i18n"
	"github.com/sadsen/saad/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

const chatPanelWidth = 36

// ChatContext is the ambient state handed to a chat widget on each frame.
// Widgets never see the controllers themselves.
type ChatContext struct {
	Appearance theme.Appearance
	Locale     i18n.Locale
	Direction  i18n.Direction
	Table      *i18n.Table

	Pill  lipgloss.Style
	Panel lipgloss.Style
	Muted lipgloss.Style
	Title lipgloss.Style
}

// text looks path up in the context's table, falling back to path.
func (c ChatContext) text(path string) string {
	if c.Table != nil {
		if v, ok := c.Table.Lookup(path); ok {
			return v
		}
	}
	return path
}

// ChatWidget is the mount point for a third-party assistant. The shell only
// toggles it and composites whatever it renders in the bottom corner.
type ChatWidget interface {
	Open() bool
	Toggle()
	View(ctx ChatContext) string
}

// launcher is the built-in widget: a pill that expands into a greeting.
type launcher struct {
	open bool
}

// NewLauncher returns the default chat widget.
func NewLauncher() ChatWidget {
	return &launcher{}
}

func (l *launcher) Open() bool { return l.open }

func (l *launcher) Toggle() { l.open = !l.open }

func (l *launcher) View(ctx ChatContext) string {
	if !l.open {
		return ctx.Pill.Render("💬 " + ctx.text("chat.launcher"))
	}
	align := lipgloss.Left
	if ctx.Direction == i18n.RTL {
		align = lipgloss.Right
	}
	body := lipgloss.JoinVertical(align,
		ctx.Title.Render(ctx.text("chat.title")),
		"",
		ctx.text("chat.greeting"),
		"",
		ctx.Muted.Render(ctx.text("chat.close")),
	)
	return ctx.Panel.Align(align).Render(body)
}
