package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCanvasPlaceCorners(t *testing.T) {
	tests := []struct {
		name  string
		at    corner
		wantX int
		wantY int
	}{
		{"bottom right", cornerBottomRight, 20 - 3 - 1, 10 - 2 - 1},
		{"bottom left", cornerBottomLeft, 1, 10 - 2 - 1},
		{"top right", cornerTopRight, 20 - 3 - 1, 1},
		{"top left", cornerTopLeft, 1, 1},
		{"center", cornerCenter, (20 - 3) / 2, (10 - 2) / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(20, 10)
			x, y, w, h := c.Place("abc\nxyz", tt.at, 1, 1)
			if x != tt.wantX || y != tt.wantY || w != 3 || h != 2 {
				t.Fatalf("expected (%d,%d,3,2), got (%d,%d,%d,%d)", tt.wantX, tt.wantY, x, y, w, h)
			}
		})
	}
}

func TestCanvasOverlayWinsOverBase(t *testing.T) {
	c := NewCanvas(10, 3)
	c.DrawStringAt(0, 0, strings.Repeat(".", 10)+"\n"+strings.Repeat(".", 10)+"\n"+strings.Repeat(".", 10))
	c.Place("XY", cornerBottomRight, 0, 0)
	lines := strings.Split(c.Render(), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected 3 rows, got %q", lines)
	}
	if !strings.HasSuffix(strings.TrimRight(ansi.Strip(lines[2]), " "), "........XY") {
		t.Fatalf("expected overlay at bottom right, got %q", lines[2])
	}
	if strings.Contains(ansi.Strip(lines[0]), "X") {
		t.Fatalf("overlay leaked into first row: %q", lines[0])
	}
}

func TestCornerMirror(t *testing.T) {
	if cornerBottomRight.mirror() != cornerBottomLeft || cornerTopLeft.mirror() != cornerTopRight {
		t.Fatalf("mirror must swap left and right")
	}
	if cornerCenter.mirror() != cornerCenter {
		t.Fatalf("center must stay put")
	}
}
