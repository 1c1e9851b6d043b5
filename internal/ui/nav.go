package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	navLinkGap = "  "
	navLogoGap = "   "
	// navMinLabel is the narrowest a truncated link label may get before
	// the links are dropped altogether.
	navMinLabel = 3
)

// navStep is one rung of the overflow ladder. Each step gives up a little
// more chrome before any section link is lost.
type navStep struct {
	index      bool
	themeLabel bool
	truncate   bool
}

var navSteps = []navStep{
	{index: true, themeLabel: true},
	{themeLabel: true},
	{},
	{truncate: true},
}

// renderNav renders the navigation bar: logo, section links, and the theme
// and locale pills. In rtl the order is mirrored so the logo sits on the
// right edge. When the row overflows it drops the index digits, then the
// theme label, then truncates labels, and only then drops the links.
func (m *App) renderNav() string {
	s := m.styles
	logo := s.Logo.Render(m.locale.T("brand.first")) + s.LogoAccent.Render(m.locale.T("brand.last"))
	localePill := s.LocalePill.Render(m.locale.Locale().Other().NativeName())
	inner := m.width - s.NavBar.GetHorizontalFrameSize()

	var links []string
	var themePill string
	for _, step := range navSteps {
		themePill = m.themePill(step.themeLabel)
		fixed := lipgloss.Width(logo) + len(navLogoGap) + lipgloss.Width(themePill) + 1 + lipgloss.Width(localePill) + 2
		maxLabel := 0
		if step.truncate {
			avail := inner - fixed - len(navLinkGap)*(len(sectionIDs)-1)
			maxLabel = avail / len(sectionIDs)
			if maxLabel < navMinLabel {
				links = nil
				break
			}
		}
		links = m.navLinks(step.index, maxLabel)
		if fixed+lipgloss.Width(strings.Join(links, navLinkGap)) <= inner {
			break
		}
		links = nil
	}

	rtl := m.doc.RTL()
	lead := []string{logo}
	if len(links) > 0 {
		if rtl {
			reverse(links)
		}
		lead = append(lead, navLogoGap, strings.Join(links, navLinkGap))
	}
	trail := []string{themePill, " ", localePill}
	if rtl {
		reverse(lead)
		reverse(trail)
		lead, trail = trail, lead
	}

	leftBlock := lipgloss.JoinHorizontal(lipgloss.Center, lead...)
	rightBlock := lipgloss.JoinHorizontal(lipgloss.Center, trail...)
	gap := inner - lipgloss.Width(leftBlock) - lipgloss.Width(rightBlock)
	if gap < 1 {
		gap = 1
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, leftBlock, strings.Repeat(" ", gap), rightBlock)
	return s.NavBar.Render(row)
}

// navLinks renders the section links in document order. maxLabel > 0
// truncates each label to that many cells.
func (m *App) navLinks(index bool, maxLabel int) []string {
	s := m.styles
	active := m.activeSection()
	links := make([]string, 0, len(sectionIDs))
	for i, id := range sectionIDs {
		style := s.NavLink
		if id == active {
			style = style.Foreground(s.palette.Primary).Bold(true).Underline(true)
		}
		label := m.locale.T("nav." + id)
		if maxLabel > 0 {
			label = ansi.Truncate(label, maxLabel, "…")
		}
		link := style.Render(label)
		if index {
			link = s.NavIndex.Render(strconv.Itoa(i+1)) + " " + link
		}
		links = append(links, link)
	}
	return links
}

func (m *App) themePill(withLabel bool) string {
	mode := m.theme.Mode()
	text := mode.Icon()
	if withLabel {
		text += " " + m.locale.T("theme."+string(mode))
	}
	return m.styles.TogglePill.Render(text)
}

// activeSection returns the section the viewport is currently in: the last
// one whose scroll target has been reached.
func (m *App) activeSection() string {
	offset := m.offsetUnits()
	active := SectionHome
	for _, id := range sectionIDs {
		target, ok := m.coordinator.Target(id)
		if !ok {
			continue
		}
		if target <= offset {
			active = id
		}
	}
	if m.ready && m.viewport.AtBottom() && m.viewport.YOffset > 0 {
		active = sectionIDs[len(sectionIDs)-1]
	}
	return active
}

func reverse(items []string) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
