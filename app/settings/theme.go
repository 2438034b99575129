package settings

import "github.com/charmbracelet/lipgloss"

// Theme holds the colours a run renders with. It is derived once from the
// saved preference; changing the preference takes effect on the next start.
type Theme struct {
	Dark       bool
	Background lipgloss.Color
	Foreground lipgloss.Color
	Hint       lipgloss.Color
	Accent     lipgloss.Color
	Danger     lipgloss.Color
}

// ThemeFor returns the light or dark theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return Theme{
			Dark:       true,
			Background: lipgloss.Color("#202124"),
			Foreground: lipgloss.Color("#ffffff"),
			Hint:       lipgloss.Color("#888888"),
			Accent:     lipgloss.Color("#FFA500"),
			Danger:     lipgloss.Color("#ff5f5f"),
		}
	}
	return Theme{
		Background: lipgloss.Color("#f0f0f0"),
		Foreground: lipgloss.Color("#000000"),
		Hint:       lipgloss.Color("#808080"),
		Accent:     lipgloss.Color("#d75f00"),
		Danger:     lipgloss.Color("#d70000"),
	}
}

// Name is "dark" or "light".
func (t Theme) Name() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}

// Base is the window style: theme background and foreground.
func (t Theme) Base() lipgloss.Style {
	return lipgloss.NewStyle().Background(t.Background).Foreground(t.Foreground)
}

// Title renders headings.
func (t Theme) Title() lipgloss.Style {
	return t.Base().Bold(true).MarginBottom(1)
}

// Text renders body text.
func (t Theme) Text() lipgloss.Style {
	return t.Base()
}

// Highlight renders the selected entry of a list.
func (t Theme) Highlight() lipgloss.Style {
	return t.Base().Bold(true).Foreground(t.Accent)
}

// HintText renders secondary text such as the default-login reminder.
func (t Theme) HintText() lipgloss.Style {
	return t.Base().Foreground(t.Hint)
}

// Help renders footers.
func (t Theme) Help() lipgloss.Style {
	return t.Base().Italic(true).Foreground(t.Hint)
}

// Error renders failure notices.
func (t Theme) Error() lipgloss.Style {
	return t.Base().Bold(true).Foreground(t.Danger)
}
