package ui

import (
	"time"

	"github.com/sadsen/saad/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
)

const toastTickInterval = 250 * time.Millisecond

type animFrameMsg struct{}

func scheduleAnimFrame() tea.Cmd {
	return tea.Tick(animFrameInterval(), func(time.Time) tea.Msg {
		return animFrameMsg{}
	})
}

// systemAppearanceMsg carries a detector result back onto the event loop.
type systemAppearanceMsg struct {
	appearance theme.Appearance
	ok         bool
}

// scheduleSystemPoll waits interval, then runs the detector inside the
// command goroutine.
func scheduleSystemPoll(system *theme.SystemObserver, interval time.Duration) tea.Cmd {
	if system == nil || interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		a, ok := system.Detect()
		return systemAppearanceMsg{appearance: a, ok: ok}
	})
}

type toastTickMsg struct{}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

type copyResultMsg struct {
	text string
	err  error
}

func copyToClipboard(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{text: text, err: write(text)}
	}
}
