package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/cellbuf"
)

// corner names where a floating block is anchored on the canvas.
type corner int

const (
	cornerBottomRight corner = iota
	cornerBottomLeft
	cornerTopRight
	cornerTopLeft
	cornerCenter
)

// mirror swaps left and right anchors for right-to-left layouts.
func (c corner) mirror() corner {
	switch c {
	case cornerBottomRight:
		return cornerBottomLeft
	case cornerBottomLeft:
		return cornerBottomRight
	case cornerTopRight:
		return cornerTopLeft
	case cornerTopLeft:
		return cornerTopRight
	}
	return c
}

// Canvas composes lipgloss-rendered blocks into a cell buffer so floating
// controls (back-to-top, chat, toasts, help) can sit on top of the page.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// DrawStringAt writes block starting at x,y. Each line restarts at column x.
func (c *Canvas) DrawStringAt(x, y int, block string) {
	if c == nil || c.writer == nil {
		return
	}
	c.drawLines(x, y, splitOverlayLines(block))
}

// Place anchors block at the given corner, inset by marginX columns and
// marginY rows. It returns the rectangle the block occupies.
func (c *Canvas) Place(block string, at corner, marginX, marginY int) (x, y, w, h int) {
	lines := splitOverlayLines(block)
	if len(lines) == 0 || c == nil {
		return 0, 0, 0, 0
	}
	w = maxLineWidth(lines)
	h = len(lines)
	if w > c.width {
		w = c.width
	}

	switch at {
	case cornerBottomRight:
		x, y = c.width-w-marginX, c.height-h-marginY
	case cornerBottomLeft:
		x, y = marginX, c.height-h-marginY
	case cornerTopRight:
		x, y = c.width-w-marginX, marginY
	case cornerTopLeft:
		x, y = marginX, marginY
	default:
		x, y = (c.width-w)/2, (c.height-h)/2
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	c.drawLines(x, y, lines)
	return x, y, w, h
}

func (c *Canvas) drawLines(x, y int, lines []string) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	for i, line := range lines {
		row := y + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// Render returns the composed frame as a newline-delimited string.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}
