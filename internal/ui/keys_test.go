package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestSectionBindingsFollowNavOrder(t *testing.T) {
	km := DefaultKeyMap()
	for i, id := range sectionIDs {
		got, ok := km.sectionFor(keyMsg(string(rune('1' + i))))
		if !ok || got != i {
			t.Fatalf("digit %d: expected section %s (index %d), got %d/%v", i+1, id, i, got, ok)
		}
	}
	if _, ok := km.sectionFor(keyMsg("6")); ok {
		t.Fatalf("6 must not map to a section")
	}
}

func TestHelpTextIsTranslatable(t *testing.T) {
	f := newFixture(t)
	for _, b := range helpRows(f.app.keys) {
		desc := b.Help().Desc
		if _, err := f.locale.Translate(desc); err != nil {
			t.Fatalf("help text %q is not a translation key: %v", desc, err)
		}
	}
	for _, h := range footerHints {
		if _, err := f.locale.Translate(h.desc); err != nil {
			t.Fatalf("footer hint %q is not a translation key: %v", h.desc, err)
		}
	}
}

func TestBindingsDoNotOverlap(t *testing.T) {
	km := DefaultKeyMap()
	all := []key.Binding{km.Up, km.Down, km.PageUp, km.PageDown, km.Top, km.Theme, km.Locale, km.Palette, km.Copy, km.Chat, km.Help, km.Escape, km.Quit}
	all = append(all, km.Sections[:]...)
	seen := map[string]int{}
	for i, b := range all {
		for _, k := range b.Keys() {
			if prev, ok := seen[k]; ok {
				t.Fatalf("key %q bound twice (bindings %d and %d)", k, prev, i)
			}
			seen[k] = i
		}
	}
}
