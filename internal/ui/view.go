package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// View composes the page: nav bar, viewport and footer as the base layer,
// then floating controls on a cell canvas.
func (m *App) View() string {
	if !m.ready {
		return ""
	}
	nav := m.renderNav()
	base := lipgloss.JoinVertical(lipgloss.Left,
		nav,
		m.viewport.View(),
		m.renderFooter(),
	)

	canvas := NewCanvas(m.width, m.height)
	canvas.DrawStringAt(0, 0, base)

	if m.coordinator.Tracker().Visible() {
		canvas.Place(m.styles.BackToTop.Render("↑ "+m.locale.T("backToTop")), cornerBottomRight, 2, footerHeight+1)
	}
	canvas.Place(m.chat.View(m.chatContext()), cornerBottomLeft, 2, footerHeight+1)

	if toasts := m.renderToasts(); toasts != "" {
		at := cornerTopRight
		if m.doc.RTL() {
			at = at.mirror()
		}
		canvas.Place(toasts, at, 2, lipgloss.Height(nav))
	}
	if m.showHelp {
		canvas.Place(m.renderHelpOverlay(), cornerCenter, 0, 0)
	}
	return canvas.Render()
}

func (m *App) chatContext() ChatContext {
	return ChatContext{
		Appearance: m.theme.Resolved(),
		Locale:     m.locale.Locale(),
		Direction:  m.doc.Direction(),
		Table:      m.locale.Table(),
		Pill:       m.styles.ChatPill,
		Panel:      m.styles.ChatPanel,
		Muted:      m.styles.Muted,
		Title:      m.styles.Title,
	}
}
