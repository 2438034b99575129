package apps

import (
	"log"

	"github.com/Guerrilla-Interactive/neolt/app"
	"github.com/Guerrilla-Interactive/neolt/app/screens/shared"
	"github.com/Guerrilla-Interactive/neolt/app/utils"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UpdateScreenNote drives NeoNote. ctrl+s asks for a file name, ctrl+y
// copies the text.
func UpdateScreenNote(m app.Model, msg tea.Msg) (app.Model, tea.Cmd) {
	if m.NotePromptActive {
		return updateNotePrompt(m, msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.ClearStatus()
			m.NoteArea.Blur()
			m.CurrentScreen = app.ScreenMenu
			return m, nil
		case "ctrl+s":
			m.ClearStatus()
			m.NotePromptActive = true
			m.NoteArea.Blur()
			m.NotePathInput.SetValue("")
			m.NotePathInput.Focus()
			return m, textinput.Blink
		case "ctrl+y":
			return copyToClipboard(m, m.NoteArea.Value()), nil
		}
	}

	var cmd tea.Cmd
	m.NoteArea, cmd = m.NoteArea.Update(msg)
	return m, cmd
}

func updateNotePrompt(m app.Model, msg tea.Msg) (app.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.NotePromptActive = false
			m.NotePathInput.Blur()
			cmd := m.NoteArea.Focus()
			return m, cmd
		case "enter":
			path, err := utils.SaveNote(m.NotePathInput.Value(), m.NoteArea.Value())
			if err != nil {
				log.Printf("note: %v", err)
				m.SetError(err.Error())
				return m, nil
			}
			m.SetStatus("Saved to " + path)
			m.NotePromptActive = false
			m.NotePathInput.Blur()
			cmd := m.NoteArea.Focus()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.NotePathInput, cmd = m.NotePathInput.Update(msg)
	return m, cmd
}

func copyToClipboard(m app.Model, text string) app.Model {
	if err := clipboard.WriteAll(text); err != nil {
		log.Printf("clipboard: %v", err)
		m.SetError("Could not copy to clipboard")
		return m
	}
	m.SetStatus("Copied to clipboard")
	return m
}

// ViewScreenNote renders the editor, or the save prompt over it.
func ViewScreenNote(m app.Model) string {
	body := m.NoteArea.View()
	footer := shared.Footer(m.Theme, "ctrl+s save", "ctrl+y copy", "esc back")
	if m.NotePromptActive {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "",
			m.Theme.Text().Render("Save as (.txt is added when no extension is given):"),
			m.NotePathInput.View())
		footer = shared.Footer(m.Theme, "enter save", "esc cancel")
	}
	return shared.Window(m, "NeoNote", body, footer)
}
