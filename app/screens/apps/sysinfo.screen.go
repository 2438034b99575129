package apps

import (
	"context"
	"strings"
	"time"

	"github.com/Guerrilla-Interactive/neolt/app"
	"github.com/Guerrilla-Interactive/neolt/app/screens/shared"
	"github.com/Guerrilla-Interactive/neolt/app/utils"
	tea "github.com/charmbracelet/bubbletea"
)

const sysInfoTimeout = 5 * time.Second

// StartSysInfo clears NeoSys and starts collecting in the background.
func StartSysInfo(m app.Model) (app.Model, tea.Cmd) {
	m.SysInfo = utils.SysInfo{}
	m.SysInfoLoading = true
	shell, username, started := m.Shell, m.Username(), m.StartedAt
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sysInfoTimeout)
		defer cancel()
		return app.SysInfoMsg{Info: utils.CollectSysInfo(ctx, shell, username, started)}
	}
}

// HandleSysInfo stores collected values.
func HandleSysInfo(m app.Model, msg app.SysInfoMsg) app.Model {
	m.SysInfo = msg.Info
	m.SysInfoLoading = false
	return m
}

// UpdateScreenSysInfo handles refresh and back.
func UpdateScreenSysInfo(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "r":
		return StartSysInfo(m)
	case "esc", "b", "q":
		m.CurrentScreen = app.ScreenMenu
	}
	return m, nil
}

// ViewScreenSysInfo renders NeoSys.
func ViewScreenSysInfo(m app.Model) string {
	var body string
	if m.SysInfoLoading {
		body = m.Theme.HintText().Render("Collecting system information...")
	} else {
		width, _ := app.PaneSize(m.TerminalWidth, m.TerminalHeight)
		body = m.Theme.Text().Render(shared.WrapText(strings.Join(m.SysInfo.Lines(), "\n"), width))
	}
	return shared.Window(m, "NeoSys", body,
		shared.Footer(m.Theme, "r refresh", "esc back"))
}
