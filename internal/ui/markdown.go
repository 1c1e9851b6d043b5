package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

const (
	formatRich  = "rich"
	formatPlain = "plain"
)

// buildMarkdownRenderer returns a renderer for section bodies. Rich output
// follows the resolved appearance so glamour's standard styles match the
// document flag; plain output is only word-wrapped.
func buildMarkdownRenderer(format string, width int, dark bool) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == formatPlain {
		return fallback
	}
	style = "light"
	if dark {
		style = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logTag.Logf("markdown renderer: %v", err)
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.Trim(out, "\n")
	}
}

// normalizeFormat maps unknown output formats to rich.
func normalizeFormat(format string) string {
	if strings.EqualFold(strings.TrimSpace(format), formatPlain) {
		return formatPlain
	}
	return formatRich
}
