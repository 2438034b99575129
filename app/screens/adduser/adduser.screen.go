package adduser

import (
	"fmt"

	"github.com/Guerrilla-Interactive/neolt/app"
	"github.com/Guerrilla-Interactive/neolt/app/screens/shared"
	"github.com/Guerrilla-Interactive/neolt/app/session"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UpdateScreenAddUser handles the add-user form. Both fields must be filled;
// the values are stored as typed.
func UpdateScreenAddUser(m app.Model, msg tea.Msg, ctl *session.Controller) (app.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return updateInputs(m, msg)
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.ClearStatus()
		m.CurrentScreen = m.ReturnScreen
		if m.ReturnScreen == app.ScreenLogin {
			cmd := m.ResetLogin()
			return m, cmd
		}
		return m, nil

	case "tab", "shift+tab", "up", "down":
		m.AddUserFocus = 1 - m.AddUserFocus
		if m.AddUserFocus == 0 {
			m.NewPassword.Blur()
			m.NewUsername.Focus()
		} else {
			m.NewUsername.Blur()
			m.NewPassword.Focus()
		}
		return m, textinput.Blink

	case "enter":
		username, password := m.NewUsername.Value(), m.NewPassword.Value()
		if username == "" || password == "" {
			m.SetError("Username and password are required")
			return m, nil
		}
		if err := ctl.AddUser(username, password); err != nil {
			m.SetError(err.Error())
			return m, nil
		}
		if hint, err := ctl.DefaultHint(); err == nil {
			m.ShowDefaultHint = hint
		}
		cmd := m.ResetAddUser()
		m.SetStatus(fmt.Sprintf("User '%s' added.", username))
		return m, cmd
	}

	return updateInputs(m, msg)
}

func updateInputs(m app.Model, msg tea.Msg) (app.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.AddUserFocus == 0 {
		m.NewUsername, cmd = m.NewUsername.Update(msg)
	} else {
		m.NewPassword, cmd = m.NewPassword.Update(msg)
	}
	return m, cmd
}

// ViewScreenAddUser renders the add-user form.
func ViewScreenAddUser(m app.Model) string {
	theme := m.Theme
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Text().Render("Username"),
		m.NewUsername.View(),
		"",
		theme.Text().Render("Password"),
		m.NewPassword.View(),
	)
	return shared.Window(m, "Add User", body,
		shared.Footer(theme, "tab switch field", "enter add", "esc back"))
}
