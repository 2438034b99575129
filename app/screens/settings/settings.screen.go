package settings

import (
	"log"

	"github.com/Guerrilla-Interactive/neolt/app"
	"github.com/Guerrilla-Interactive/neolt/app/screens/shared"
	"github.com/Guerrilla-Interactive/neolt/app/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RestartMessage follows a saved theme change.
const RestartMessage = "Restart NeoLT to apply the theme."

var choices = []string{"Yes", "No"}

// UpdateScreenSettings handles the dark-mode question.
func UpdateScreenSettings(m app.Model, msg tea.KeyMsg, ctl *session.Controller) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "up", "k", "left", "h", "down", "j", "right", "l", "tab":
		m.SettingsIndex = 1 - m.SettingsIndex

	case "y":
		return save(m, ctl, true)

	case "n":
		return save(m, ctl, false)

	case "enter":
		return save(m, ctl, m.SettingsIndex == 0)

	case "esc", "b":
		m.ClearStatus()
		m.SettingsIndex = 0
		m.CurrentScreen = app.ScreenMenu
	}
	return m, nil
}

func save(m app.Model, ctl *session.Controller, dark bool) (app.Model, tea.Cmd) {
	if err := ctl.SetDarkMode(dark); err != nil {
		log.Printf("settings: %v", err)
		m.SetError(err.Error())
		return m, nil
	}
	m.SetStatus(RestartMessage)
	return m, nil
}

// ViewSettingsScreen renders the settings screen.
func ViewSettingsScreen(m app.Model) string {
	theme := m.Theme
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Text().Render("Enable Dark Mode?"),
		"",
		shared.RenderItemList(m, choices, 0, m.SettingsIndex),
		"",
		theme.HintText().Render("Current theme: "+theme.Name()),
	)
	return shared.Window(m, "Settings", body,
		shared.Footer(theme, "y/n or enter choose", "esc back"))
}
