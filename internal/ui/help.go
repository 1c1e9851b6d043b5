package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// helpRows lists the bindings shown in the help overlay, in display order.
// Related bindings share a row.
func helpRows(keys KeyMap) []key.Binding {
	return []key.Binding{
		keys.Up,
		keys.PageUp,
		keys.Sections[0],
		keys.Top,
		keys.Theme,
		keys.Palette,
		keys.Locale,
		keys.Copy,
		keys.Chat,
		keys.Help,
		keys.Quit,
	}
}

// renderHelpOverlay builds the help modal. Descriptions are translated, and
// the key column moves to the right edge in rtl.
func (m *App) renderHelpOverlay() string {
	s := m.styles
	rtl := m.doc.RTL()

	rows := make([][]string, 0, len(helpRows(m.keys)))
	for _, b := range helpRows(m.keys) {
		h := b.Help()
		row := []string{h.Key, m.locale.T(h.Desc)}
		if rtl {
			row[0], row[1] = row[1], row[0]
		}
		rows = append(rows, row)
	}
	keyCol := 0
	if rtl {
		keyCol = 1
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == keyCol {
				return s.HelpKey.Width(12)
			}
			if rtl {
				return s.HelpDesc.Align(lipgloss.Right)
			}
			return s.HelpDesc
		}).
		Rows(rows...)
	tableStr := strings.TrimPrefix(t.String(), "\n")

	title := s.HelpTitle.Render("✦ " + m.locale.T("help.title") + " ✦")
	dividerWidth := lipgloss.Width(tableStr)
	if dividerWidth < 30 {
		dividerWidth = 30
	}
	divider := s.Divider.Render(strings.Repeat("─", dividerWidth))
	footer := s.HelpFooter.Render(m.locale.T("help.footer"))

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		divider,
		tableStr,
		divider,
		footer,
	)
	return s.HelpOverlay.Render(content)
}
