package ui

import (
	"strings"
	"time"
)

const (
	toastDuration = 3 * time.Second
	maxToasts     = 3
)

type toastKind int

const (
	toastTheme toastKind = iota
	toastLocale
	toastPalette
	toastCopy
	toastError
)

type toast struct {
	kind    toastKind
	text    string
	started time.Time
}

// toastQueue keeps the most recent toasts. A new toast replaces an older one
// of the same kind so repeated toggles do not stack.
type toastQueue struct {
	items []toast
}

func (q *toastQueue) push(kind toastKind, text string, now time.Time) {
	kept := q.items[:0]
	for _, t := range q.items {
		if t.kind != kind {
			kept = append(kept, t)
		}
	}
	kept = append(kept, toast{kind: kind, text: text, started: now})
	if len(kept) > maxToasts {
		kept = kept[len(kept)-maxToasts:]
	}
	q.items = kept
}

// prune drops expired toasts and reports whether any remain.
func (q *toastQueue) prune(now time.Time) bool {
	kept := q.items[:0]
	for _, t := range q.items {
		if now.Sub(t.started) < toastDuration {
			kept = append(kept, t)
		}
	}
	q.items = kept
	return len(q.items) > 0
}

func (q *toastQueue) empty() bool {
	return len(q.items) == 0
}

func (q *toastQueue) texts() []string {
	out := make([]string, len(q.items))
	for i, t := range q.items {
		out[i] = t.text
	}
	return out
}

// renderToasts stacks the active toasts newest last.
func (m *App) renderToasts() string {
	if m.toasts.empty() {
		return ""
	}
	var blocks []string
	for _, t := range m.toasts.items {
		style := m.styles.Toast
		if t.kind == toastError {
			style = style.BorderForeground(m.styles.palette.Error)
		}
		blocks = append(blocks, style.Render(t.text))
	}
	return strings.Join(blocks, "\n")
}
