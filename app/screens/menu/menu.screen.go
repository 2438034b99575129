package menu

import (
	"log"

	"github.com/Guerrilla-Interactive/neolt/app"
	"github.com/Guerrilla-Interactive/neolt/app/screens/apps"
	"github.com/Guerrilla-Interactive/neolt/app/screens/shared"
	"github.com/Guerrilla-Interactive/neolt/app/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Items are the menu entries in display order.
var Items = []string{
	"NeoNote",
	"NeoCalc",
	"NeoTerminal",
	"NeoSys",
	"Settings",
	"Add User",
	"Logout",
	"Powerwash",
}

// UpdateScreenMenu handles navigation on the main menu. MenuIndex is the
// absolute entry index; the paginator page follows it.
func UpdateScreenMenu(m app.Model, msg tea.KeyMsg, ctl *session.Controller) (app.Model, tea.Cmd) {
	total := len(Items)
	p := &m.MenuPaginator
	p.SetTotalPages(total)

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.MenuIndex = (m.MenuIndex + total - 1) % total
		p.Page = m.MenuIndex / p.PerPage

	case "down", "j", "tab":
		m.MenuIndex = (m.MenuIndex + 1) % total
		p.Page = m.MenuIndex / p.PerPage

	case "left", "h":
		p.PrevPage()
		m.MenuIndex = p.Page * p.PerPage

	case "right", "l":
		p.NextPage()
		m.MenuIndex = p.Page * p.PerPage

	case "enter":
		m.ClearStatus()
		return open(m, Items[m.MenuIndex], ctl)
	}
	return m, nil
}

func open(m app.Model, item string, ctl *session.Controller) (app.Model, tea.Cmd) {
	switch item {
	case "NeoNote":
		m.CurrentScreen = app.ScreenNote
		cmd := m.ResetNote()
		return m, cmd
	case "NeoCalc":
		m.CurrentScreen = app.ScreenCalc
		cmd := m.ResetCalc()
		return m, cmd
	case "NeoTerminal":
		m.CurrentScreen = app.ScreenTerminal
		cmd := m.ResetTerminal()
		return m, cmd
	case "NeoSys":
		m.CurrentScreen = app.ScreenSysInfo
		return apps.StartSysInfo(m)
	case "Settings":
		m.SettingsIndex = 0
		m.CurrentScreen = app.ScreenSettings
		return m, nil
	case "Add User":
		m.ReturnScreen = app.ScreenMenu
		m.CurrentScreen = app.ScreenAddUser
		cmd := m.ResetAddUser()
		return m, cmd
	case "Logout":
		return Logout(m, ctl)
	case "Powerwash":
		m.ReturnScreen = app.ScreenMenu
		m.CurrentScreen = app.ScreenPowerwash
		return m, nil
	}
	return m, nil
}

// Logout ends the session and returns to a fresh login gate.
func Logout(m app.Model, ctl *session.Controller) (app.Model, tea.Cmd) {
	if err := ctl.Logout(); err != nil {
		m.SetError(err.Error())
		return m, nil
	}
	m.Session = nil
	hint, err := ctl.DefaultHint()
	if err != nil {
		log.Printf("menu: default hint: %v", err)
	}
	m.ShowDefaultHint = hint
	m.MenuIndex = 0
	m.MenuPaginator.Page = 0
	m.CurrentScreen = app.ScreenLogin
	cmd := m.ResetLogin()
	return m, cmd
}

// ViewScreenMenu renders the current page of the menu.
func ViewScreenMenu(m app.Model) string {
	p := m.MenuPaginator
	p.SetTotalPages(len(Items))
	start, end := p.GetSliceBounds(len(Items))

	body := shared.RenderItemList(m, Items[start:end], start, m.MenuIndex)
	if p.TotalPages > 1 {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", p.View())
	}

	return shared.Window(m, "NeoLT - "+m.Username(), body,
		shared.Footer(m.Theme, "↑/↓ select", "←/→ page", "enter open", "ctrl+c quit"))
}
