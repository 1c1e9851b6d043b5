package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestAlignLinesRightAlignsInRTL(t *testing.T) {
	got := alignLines("abc   \nde", 8, true)
	lines := strings.Split(got, "\n")
	if lines[0] != "     abc" || lines[1] != "      de" {
		t.Fatalf("unexpected alignment: %q", lines)
	}
}

func TestAlignLinesLeavesLTRUntouched(t *testing.T) {
	in := "abc   \nde"
	if got := alignLines(in, 8, false); got != in {
		t.Fatalf("ltr content must be unchanged, got %q", got)
	}
}

func TestAlignRightKeepsStyles(t *testing.T) {
	styled := "\x1b[1mhi\x1b[0m   "
	got := alignRight(styled, 5)
	if ansi.Strip(got) != "   hi" {
		t.Fatalf("unexpected visible text %q", ansi.Strip(got))
	}
	if !strings.Contains(got, "\x1b[1m") {
		t.Fatalf("style lost: %q", got)
	}
}

func TestAlignRightTruncatesWideLines(t *testing.T) {
	got := alignRight("abcdefghij", 5)
	if w := ansi.StringWidth(got); w != 5 {
		t.Fatalf("expected width 5, got %d (%q)", w, got)
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("hello", 10); got != "hello" {
		t.Fatalf("short line changed: %q", got)
	}
	if got := truncateLine("hello world", 6); ansi.StringWidth(got) != 6 {
		t.Fatalf("expected width 6, got %q", got)
	}
	if got := truncateLine("hello", 0); got != "" {
		t.Fatalf("zero width must yield empty, got %q", got)
	}
}
