package apps

import (
	"github.com/Guerrilla-Interactive/neolt/app"
	"github.com/Guerrilla-Interactive/neolt/app/screens/shared"
	"github.com/Guerrilla-Interactive/neolt/app/utils"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UpdateScreenCalc evaluates the expression on Enter.
func UpdateScreenCalc(m app.Model, msg tea.Msg) (app.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.CalcInput.Blur()
			m.CurrentScreen = app.ScreenMenu
			return m, nil
		case "enter":
			m.CalcResult = utils.CalcResult(m.CalcInput.Value())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.CalcInput, cmd = m.CalcInput.Update(msg)
	return m, cmd
}

// ViewScreenCalc renders NeoCalc.
func ViewScreenCalc(m app.Model) string {
	result := m.Theme.HintText().Render("Result: ")
	switch m.CalcResult {
	case "":
	case utils.CalcError:
		result += m.Theme.Error().Render(m.CalcResult)
	default:
		result += m.Theme.Highlight().Render(m.CalcResult)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, m.CalcInput.View(), "", result)
	return shared.Window(m, "NeoCalc", body,
		shared.Footer(m.Theme, "enter calculate", "esc back"))
}
