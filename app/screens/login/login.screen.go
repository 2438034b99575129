package login

import (
	"errors"
	"log"

	"github.com/Guerrilla-Interactive/neolt/app"
	"github.com/Guerrilla-Interactive/neolt/app/screens/shared"
	"github.com/Guerrilla-Interactive/neolt/app/session"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FailedMessage is shown for any rejected login.
const FailedMessage = "Incorrect username or password"

// DefaultHintMessage is shown while only the default account exists.
const DefaultHintMessage = "Default login: admin / admin"

// UpdateScreenLogin handles input on the login gate.
func UpdateScreenLogin(m app.Model, msg tea.Msg, ctl *session.Controller) (app.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return updateInputs(m, msg)
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab", "shift+tab", "up", "down":
		m.LoginFocus = 1 - m.LoginFocus
		if m.LoginFocus == 0 {
			m.LoginPassword.Blur()
			m.LoginUsername.Focus()
		} else {
			m.LoginUsername.Blur()
			m.LoginPassword.Focus()
		}
		return m, textinput.Blink

	case "ctrl+p":
		m.ClearStatus()
		m.ReturnScreen = app.ScreenLogin
		m.CurrentScreen = app.ScreenPowerwash
		return m, nil

	case "ctrl+n":
		if !ctl.OpenRegistration() {
			m.SetError("Adding users requires a login")
			return m, nil
		}
		m.ClearStatus()
		m.ReturnScreen = app.ScreenLogin
		m.CurrentScreen = app.ScreenAddUser
		cmd := m.ResetAddUser()
		return m, cmd

	case "enter":
		return attemptLogin(m, ctl)
	}

	return updateInputs(m, msg)
}

func attemptLogin(m app.Model, ctl *session.Controller) (app.Model, tea.Cmd) {
	s, err := ctl.Login(m.LoginUsername.Value(), m.LoginPassword.Value())
	if errors.Is(err, session.ErrAuthenticationFailed) {
		m.SetError(FailedMessage)
		m.LoginPassword.SetValue("")
		return m, nil
	}
	if err != nil {
		log.Printf("login: %v", err)
		m.SetError(err.Error())
		return m, nil
	}

	m.Session = &s
	m.ClearStatus()
	m.ResetLogin()
	m.MenuIndex = 0
	m.MenuPaginator.Page = 0
	m.CurrentScreen = app.ScreenMenu
	return m, nil
}

func updateInputs(m app.Model, msg tea.Msg) (app.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.LoginFocus == 0 {
		m.LoginUsername, cmd = m.LoginUsername.Update(msg)
	} else {
		m.LoginPassword, cmd = m.LoginPassword.Update(msg)
	}
	return m, cmd
}

// ViewScreenLogin renders the login gate.
func ViewScreenLogin(m app.Model, openRegistration bool) string {
	theme := m.Theme
	rows := []string{
		theme.Text().Render("Username"),
		m.LoginUsername.View(),
		"",
		theme.Text().Render("Password"),
		m.LoginPassword.View(),
	}
	if m.ShowDefaultHint {
		rows = append(rows, "", theme.HintText().Render(DefaultHintMessage))
	}

	tips := []string{"tab switch field", "enter login", "ctrl+p powerwash"}
	if openRegistration {
		tips = append(tips, "ctrl+n add user")
	}
	tips = append(tips, "ctrl+c quit")

	return shared.Window(m, "NeoLT Login",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		shared.Footer(theme, tips...))
}
