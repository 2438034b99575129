package shared

import (
	"strings"

	"github.com/Guerrilla-Interactive/neolt/app"
	"github.com/charmbracelet/lipgloss"
)

// Window renders a titled panel in the run's theme with the status line under
// the body and the footer last, then anchors it in the terminal.
func Window(m app.Model, title, body, footer string) string {
	theme := m.Theme
	parts := []string{theme.Title().Render(title), body}
	if m.Status != "" {
		if m.StatusIsError {
			parts = append(parts, "", theme.Error().Render(m.Status))
		} else {
			parts = append(parts, "", theme.HintText().Render(m.Status))
		}
	}
	if footer != "" {
		parts = append(parts, "", footer)
	}

	width, _ := app.PaneSize(m.TerminalWidth, m.TerminalHeight)
	panel := theme.Base().
		Width(width+4).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return app.PlaceWindow(m, panel)
}

// RenderItemList renders items with the entry at selected highlighted.
// offset is the absolute index of items[0].
func RenderItemList(m app.Model, items []string, offset, selected int) string {
	var b strings.Builder
	for i, item := range items {
		if offset+i == selected {
			b.WriteString(m.Theme.Highlight().Render("> " + item))
		} else {
			b.WriteString(m.Theme.Text().Render("  " + item))
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
