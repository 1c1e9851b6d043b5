package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// alignLines right-aligns every line of content within width when rtl is
// set. Trailing padding is dropped first so glamour's fill does not pin
// lines to the left edge.
func alignLines(content string, width int, rtl bool) string {
	if !rtl || width <= 0 || content == "" {
		return content
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = alignRight(line, width)
	}
	return strings.Join(lines, "\n")
}

func alignRight(line string, width int) string {
	visible := strings.TrimRight(ansi.Strip(line), " ")
	w := ansi.StringWidth(visible)
	if w == 0 {
		return ""
	}
	if w > width {
		return ansi.Truncate(line, width, "…")
	}
	trimmed := ansi.Truncate(line, w, "")
	return strings.Repeat(" ", width-w) + trimmed
}

// truncateLine cuts line to width display cells.
func truncateLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(line) <= width {
		return line
	}
	return ansi.Truncate(line, width, "…")
}

func maxLineWidth(lines []string) int {
	max := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > max {
			max = w
		}
	}
	return max
}

func splitOverlayLines(content string) []string {
	if content == "" {
		return nil
	}
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}
