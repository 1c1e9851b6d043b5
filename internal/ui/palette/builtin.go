package palette

import "github.com/charmbracelet/lipgloss"

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Emerald is the default slate-and-emerald look.
func Emerald() Palette {
	return Palette{
		Name:           "emerald",
		Primary:        ac("#059669", "#34d399"),
		Secondary:      ac("#0d9488", "#5eead4"),
		Accent:         ac("#047857", "#10b981"),
		Success:        ac("#16a34a", "#4ade80"),
		Error:          ac("#dc2626", "#f87171"),
		Text:           ac("#0f172a", "#f1f5f9"),
		TextMuted:      ac("#475569", "#94a3b8"),
		TextEmphasized: ac("#1e293b", "#ffffff"),
		Background:     ac("#f8fafc", "#0f172a"),
		Surface:        ac("#ffffff", "#1e293b"),
		Border:         ac("#e2e8f0", "#334155"),
		BorderFocused:  ac("#059669", "#34d399"),
	}
}

// TokyoNight implements the Tokyo Night colour scheme.
func TokyoNight() Palette {
	return Palette{
		Name:           "tokyonight",
		Primary:        ac("#2e7de9", "#82aaff"),
		Secondary:      ac("#9854f1", "#c099ff"),
		Accent:         ac("#b15c00", "#ff966c"),
		Success:        ac("#587539", "#c3e88d"),
		Error:          ac("#f52a65", "#ff757f"),
		Text:           ac("#3760bf", "#c8d3f5"),
		TextMuted:      ac("#848cb5", "#636da6"),
		TextEmphasized: ac("#8c6c3e", "#ffc777"),
		Background:     ac("#e1e2e7", "#222436"),
		Surface:        ac("#c8c9ce", "#2f334d"),
		Border:         ac("#a8aecb", "#3b4261"),
		BorderFocused:  ac("#2e7de9", "#82aaff"),
	}
}

// Dracula implements the Dracula colour scheme with a Material light side.
func Dracula() Palette {
	return Palette{
		Name:           "dracula",
		Primary:        ac("#7e57c2", "#bd93f9"),
		Secondary:      ac("#0097a7", "#8be9fd"),
		Accent:         ac("#f9a825", "#f1fa8c"),
		Success:        ac("#388e3c", "#50fa7b"),
		Error:          ac("#d32f2f", "#ff5555"),
		Text:           ac("#212121", "#f8f8f2"),
		TextMuted:      ac("#757575", "#6272a4"),
		TextEmphasized: ac("#000000", "#f8f8f2"),
		Background:     ac("#ffffff", "#282a36"),
		Surface:        ac("#e0e0e0", "#44475a"),
		Border:         ac("#bdbdbd", "#6272a4"),
		BorderFocused:  ac("#7e57c2", "#bd93f9"),
	}
}

// Nord implements the Nord colour scheme.
func Nord() Palette {
	return Palette{
		Name:           "nord",
		Primary:        ac("#5e81ac", "#88c0d0"),
		Secondary:      ac("#81a1c1", "#81a1c1"),
		Accent:         ac("#8fbcbb", "#8fbcbb"),
		Success:        ac("#a3be8c", "#a3be8c"),
		Error:          ac("#bf616a", "#bf616a"),
		Text:           ac("#2e3440", "#eceff4"),
		TextMuted:      ac("#3b4252", "#8b95a7"),
		TextEmphasized: ac("#000000", "#eceff4"),
		Background:     ac("#eceff4", "#2e3440"),
		Surface:        ac("#e5e9f0", "#3b4252"),
		Border:         ac("#4c566a", "#434c5e"),
		BorderFocused:  ac("#434c5e", "#4c566a"),
	}
}
