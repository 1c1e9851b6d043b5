package ui

import (
	"github.com/sadsen/saad/internal/ui/palette"

	"github.com/charmbracelet/lipgloss"
)

// styles is rebuilt whenever the palette changes. Colours are adaptive, so a
// theme change only needs the renderer's dark flag flipped, not a rebuild.
type styles struct {
	palette palette.Palette

	NavBar      lipgloss.Style
	Logo        lipgloss.Style
	LogoAccent  lipgloss.Style
	NavLink     lipgloss.Style
	NavIndex    lipgloss.Style
	TogglePill  lipgloss.Style
	LocalePill  lipgloss.Style
	SectionHead lipgloss.Style
	Divider     lipgloss.Style

	Title lipgloss.Style
	Muted lipgloss.Style

	BackToTop lipgloss.Style
	Toast     lipgloss.Style
	ChatPill  lipgloss.Style
	ChatPanel lipgloss.Style

	KeyPill lipgloss.Style
	KeyDesc lipgloss.Style

	HelpOverlay lipgloss.Style
	HelpTitle   lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	HelpFooter  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, p palette.Palette) styles {
	ns := r.NewStyle
	return styles{
		palette: p,

		NavBar: ns().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.Border).
			Padding(0, 1),
		Logo:       ns().Foreground(p.TextEmphasized).Bold(true),
		LogoAccent: ns().Foreground(p.Primary).Bold(true),
		NavLink:    ns().Foreground(p.TextMuted),
		NavIndex:   ns().Foreground(p.Primary).Bold(true),
		TogglePill: ns().
			Foreground(p.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		LocalePill: ns().
			Foreground(p.Primary).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		SectionHead: ns().Foreground(p.Primary).Bold(true).MarginTop(1),
		Divider:     ns().Foreground(p.Border),

		Title: ns().Foreground(p.Primary).Bold(true),
		Muted: ns().Foreground(p.TextMuted),

		BackToTop: ns().
			Foreground(lipgloss.Color("#ffffff")).
			Background(p.Accent).
			Bold(true).
			Padding(0, 1),
		Toast: ns().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Success).
			Foreground(p.Text).
			Padding(0, 1),
		ChatPill: ns().
			Foreground(p.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		ChatPanel: ns().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.BorderFocused).
			Foreground(p.Text).
			Padding(0, 1).
			Width(chatPanelWidth),

		KeyPill: ns().Background(p.Primary).Foreground(p.Background).Bold(true),
		KeyDesc: ns().Foreground(p.TextMuted),

		HelpOverlay: ns().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(1, 2),
		HelpTitle:  ns().Foreground(p.Accent).Bold(true),
		HelpKey:    ns().Foreground(p.Secondary).Bold(true),
		HelpDesc:   ns().Foreground(p.Text),
		HelpFooter: ns().Foreground(p.TextMuted).Italic(true),
	}
}
