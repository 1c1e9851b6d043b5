package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const footerHeight = 1

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
	case tea.MouseMsg:
		if m.ready {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			m.scroller.Sync(m.viewport.YOffset)
			cmds = append(cmds, cmd)
		}
	case animFrameMsg:
		m.animating = false
		if m.ready && m.scroller.Active() {
			m.viewport.SetYOffset(m.scroller.Step(m.maxLine()))
		}
	case systemAppearanceMsg:
		if m.system != nil && msg.ok {
			m.system.Set(msg.appearance)
		}
		cmds = append(cmds, scheduleSystemPoll(m.system, m.pollInterval))
	case toastTickMsg:
		m.toastTicking = false
		m.toasts.prune(m.now())
	case copyResultMsg:
		if msg.err != nil {
			logTag.Logf("clipboard: %v", msg.err)
			m.pushToast(toastError, m.locale.T("toast.copyFailed"))
		} else {
			m.pushToast(toastCopy, m.locale.T("toast.copied")+": "+msg.text)
		}
	}

	m.refreshIfDirty()
	m.publishOffset()
	cmds = append(cmds, m.ensureTicks()...)
	return m, tea.Batch(cmds...)
}

func (m *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return tea.Quit
		case key.Matches(msg, m.keys.Help, m.keys.Escape):
			m.showHelp = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Escape):
		if m.chat.Open() {
			m.chat.Toggle()
		}
	case key.Matches(msg, m.keys.Theme):
		if err := m.theme.Cycle(); err != nil {
			m.reportError(err)
		}
	case key.Matches(msg, m.keys.Locale):
		if err := m.locale.Toggle(); err != nil {
			m.reportError(err)
		}
	case key.Matches(msg, m.keys.Palette):
		m.cyclePalette()
	case key.Matches(msg, m.keys.Copy):
		return copyToClipboard(m.clipboard, m.profile.Email)
	case key.Matches(msg, m.keys.Chat):
		m.chat.Toggle()
	case key.Matches(msg, m.keys.Top):
		// Same affordance as the back-to-top control: inert while hidden.
		if m.coordinator.Tracker().Visible() {
			m.coordinator.ScrollToTop()
		}
	case key.Matches(msg, m.keys.Up):
		m.scrollLines(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollLines(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollLines(-m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollLines(m.viewport.Height)
	default:
		if i, ok := m.keys.sectionFor(msg); ok {
			m.coordinator.ScrollToSection(sectionIDs[i])
		}
	}
	return nil
}

// scrollLines moves the viewport immediately, cancelling any animation.
func (m *App) scrollLines(n int) {
	if !m.ready {
		return
	}
	m.viewport.SetYOffset(m.viewport.YOffset + n)
	m.scroller.Sync(m.viewport.YOffset)
}

func (m *App) cyclePalette() {
	next := m.palettes.Next(m.styles.palette.Name)
	m.styles = newStyles(m.doc.Renderer(), next)
	m.contentDirty = true
	m.pushToast(toastPalette, "🎨 "+next.Name)
	if m.savePalette != nil {
		if err := m.savePalette(next.Name); err != nil {
			m.reportError(err)
		}
	}
}

// reportError surfaces a recovered failure. The state change that caused it
// has already been committed.
func (m *App) reportError(err error) {
	logTag.Logf("error: %v", err)
	m.pushToast(toastError, "⚠ "+err.Error())
}

// ensureTicks schedules animation and toast frames while they are needed.
func (m *App) ensureTicks() []tea.Cmd {
	var cmds []tea.Cmd
	if m.scroller.Active() && !m.animating {
		m.animating = true
		cmds = append(cmds, scheduleAnimFrame())
	}
	if !m.toasts.empty() && !m.toastTicking {
		m.toastTicking = true
		cmds = append(cmds, scheduleToastTick())
	}
	return cmds
}

// layout sizes the viewport between the nav bar and the footer.
func (m *App) layout() {
	navHeight := lipgloss.Height(m.renderNav())
	width := m.width
	if width < minViewportWidth {
		width = minViewportWidth
	}
	height := m.height - navHeight - footerHeight
	if height < minViewportHeight {
		height = minViewportHeight
	}
	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}
	if width != m.renderedAt {
		m.contentDirty = true
	}
}

func (m *App) maxLine() int {
	max := m.viewport.TotalLineCount() - m.viewport.Height
	if max < 0 {
		return 0
	}
	return max
}

// refreshIfDirty re-renders the page and re-measures the section anchors.
func (m *App) refreshIfDirty() {
	if !m.ready || !m.contentDirty {
		return
	}
	content, tops := m.renderPage(m.viewport.Width)
	m.viewport.SetContent(content)

	anchors := m.coordinator.Anchors()
	anchors.Reset()
	for _, id := range sectionIDs {
		anchors.Set(id, tops[id]*m.unitsPerLine)
	}
	m.contentDirty = false
	m.renderedAt = m.viewport.Width
}

// renderPage renders every section and returns the page plus the line each
// section starts on.
func (m *App) renderPage(width int) (string, map[string]int) {
	render := buildMarkdownRenderer(m.outputFormat, width-2, m.theme.Resolved().IsDark())
	rtl := m.doc.RTL()
	divider := m.styles.Divider.Render(strings.Repeat("─", width/2))

	tops := make(map[string]int, len(sectionIDs))
	var lines []string
	for _, sec := range buildSections(m.locale, m.profile) {
		tops[sec.id] = len(lines)
		var parts []string
		if sec.title != "" {
			parts = append(parts, m.styles.SectionHead.Render(sec.title), divider)
		}
		parts = append(parts, render(sec.body), "")
		block := alignLines(strings.Join(parts, "\n"), width, rtl)
		lines = append(lines, strings.Split(block, "\n")...)
	}
	return strings.Join(lines, "\n"), tops
}
