package powerwash

import (
	"log"

	"github.com/Guerrilla-Interactive/neolt/app"
	"github.com/Guerrilla-Interactive/neolt/app/screens/shared"
	"github.com/Guerrilla-Interactive/neolt/app/session"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmMessage is the powerwash question.
const ConfirmMessage = "Really reset NeoLT? All users and settings will be lost."

// UpdateScreenPowerwash asks for confirmation. "y" wipes the configuration
// and quits the program; anything that declines returns unchanged.
func UpdateScreenPowerwash(m app.Model, msg tea.KeyMsg, ctl *session.Controller) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "y", "Y":
		if err := ctl.Powerwash(true); err != nil {
			log.Printf("powerwash: %v", err)
			m.SetError(err.Error())
			return m, nil
		}
		m.Session = nil
		return m, tea.Quit

	case "n", "N", "esc", "b":
		if err := ctl.Powerwash(false); err != nil {
			log.Printf("powerwash: %v", err)
		}
		m.ClearStatus()
		m.CurrentScreen = m.ReturnScreen
		if m.ReturnScreen == app.ScreenLogin {
			cmd := m.ResetLogin()
			return m, cmd
		}
	}
	return m, nil
}

// ViewScreenPowerwash renders the confirmation.
func ViewScreenPowerwash(m app.Model) string {
	return shared.Window(m, "Powerwash",
		m.Theme.Error().Render(ConfirmMessage),
		shared.Footer(m.Theme, "y reset", "n cancel"))
}
