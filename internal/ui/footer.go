package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint defines a key hint for the footer bar. desc is a translation
// key.
type footerHint struct {
	key  string
	desc string
}

var footerHints = []footerHint{
	{"↑↓", "hints.scroll"},
	{"1-5", "hints.sections"},
	{"t", "hints.theme"},
	{"L", "hints.language"},
	{"?", "hints.help"},
	{"q", "hints.quit"},
}

// renderFooter renders pill-style key hints with the palette name and
// version on the opposite edge.
func (m *App) renderFooter() string {
	info := m.styles.palette.Name
	if m.version != "" {
		info += " · " + m.version
	}
	infoRendered := m.styles.Muted.Render(info)
	infoWidth := lipgloss.Width(infoRendered)

	hints := m.trimHintsToFit(footerHints, m.width-infoWidth-2)
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, m.keyPill(h.key, m.locale.T(h.desc)))
	}
	if m.doc.RTL() {
		reverse(parts)
	}
	hintRow := strings.Join(parts, "  ")

	spacing := m.width - lipgloss.Width(hintRow) - infoWidth
	if spacing < 2 {
		spacing = 2
	}
	if m.doc.RTL() {
		return infoRendered + strings.Repeat(" ", spacing) + hintRow
	}
	return hintRow + strings.Repeat(" ", spacing) + infoRendered
}

func (m *App) keyPill(key, desc string) string {
	return m.styles.KeyPill.Render(" "+key+" ") + " " + m.styles.KeyDesc.Render(desc)
}

// trimHintsToFit drops hints from the end until the row fits.
func (m *App) trimHintsToFit(hints []footerHint, available int) []footerHint {
	for len(hints) > 0 {
		parts := make([]string, 0, len(hints))
		for _, h := range hints {
			parts = append(parts, m.keyPill(h.key, m.locale.T(h.desc)))
		}
		if lipgloss.Width(strings.Join(parts, "  ")) <= available {
			break
		}
		hints = hints[:len(hints)-1]
	}
	return hints
}
