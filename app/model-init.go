package app

import (
	"time"

	"github.com/Guerrilla-Interactive/neolt/app/settings"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuPerPage is how many menu entries a page shows.
const MenuPerPage = 5

// Default terminal dimensions so panels are anchored on first render.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// NewModel builds the model shown at the login gate.
func NewModel(version string, theme settings.Theme, shell string, showDefaultHint bool) Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = MenuPerPage
	p.ActiveDot = theme.Highlight().Render("•")
	p.InactiveDot = theme.HintText().Render("•")

	m := Model{
		CurrentScreen:   ScreenLogin,
		Version:         version,
		TerminalWidth:   defaultWidth,
		TerminalHeight:  defaultHeight,
		StartedAt:       time.Now(),
		Shell:           shell,
		Theme:           theme,
		ShowDefaultHint: showDefaultHint,
		MenuPaginator:   p,
		ReturnScreen:    ScreenLogin,
	}
	m.ResetLogin()
	m.ResetAddUser()
	m.ResetNote()
	m.ResetCalc()
	m.ResetTerminal()
	return m
}

// NewInput returns a text input styled with theme.
func NewInput(theme settings.Theme, placeholder string, secret bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 32
	ti.Prompt = "> "
	ti.PromptStyle = theme.Highlight()
	ti.TextStyle = theme.Text()
	ti.PlaceholderStyle = theme.HintText()
	ti.Cursor.Style = theme.Highlight()
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '*'
	}
	return ti
}

// ResetLogin clears the login form and focuses the username.
func (m *Model) ResetLogin() tea.Cmd {
	m.LoginUsername = NewInput(m.Theme, "Username", false)
	m.LoginPassword = NewInput(m.Theme, "Password", true)
	m.LoginFocus = 0
	m.LoginUsername.Focus()
	return textinput.Blink
}

// ResetAddUser clears the add-user form and focuses the username.
func (m *Model) ResetAddUser() tea.Cmd {
	m.NewUsername = NewInput(m.Theme, "New username", false)
	m.NewPassword = NewInput(m.Theme, "New password", true)
	m.AddUserFocus = 0
	m.NewUsername.Focus()
	return textinput.Blink
}

// ResetNote gives NeoNote an empty, focused editor.
func (m *Model) ResetNote() tea.Cmd {
	ta := textarea.New()
	ta.Placeholder = "Start typing..."
	ta.ShowLineNumbers = false
	ta.FocusedStyle.Base = m.Theme.Base()
	ta.BlurredStyle.Base = m.Theme.Base()
	ta.FocusedStyle.Text = m.Theme.Text()
	ta.FocusedStyle.Placeholder = m.Theme.HintText()
	m.NoteArea = ta
	m.NotePathInput = NewInput(m.Theme, "notes.txt", false)
	m.NotePromptActive = false
	m.ResizePanes()
	return m.NoteArea.Focus()
}

// ResetCalc clears NeoCalc.
func (m *Model) ResetCalc() tea.Cmd {
	m.CalcInput = NewInput(m.Theme, "2 * (3 + 4)", false)
	m.CalcResult = ""
	m.CalcInput.Focus()
	return textinput.Blink
}

// ResetTerminal clears NeoTerminal's input and output.
func (m *Model) ResetTerminal() tea.Cmd {
	m.TerminalInput = NewInput(m.Theme, "command", false)
	m.TerminalLog = ""
	m.TerminalBusy = false
	m.TerminalOutput = viewport.New(defaultWidth, defaultHeight)
	m.TerminalOutput.Style = m.Theme.Text()
	m.ResizePanes()
	m.TerminalInput.Focus()
	return textinput.Blink
}

// ResizePanes fits the editor and terminal output to the window.
func (m *Model) ResizePanes() {
	width, height := PaneSize(m.TerminalWidth, m.TerminalHeight)
	m.NoteArea.SetWidth(width)
	m.NoteArea.SetHeight(height)
	m.TerminalOutput.Width = width
	m.TerminalOutput.Height = height
}

// PaneSize is the content area inside a window: the terminal minus padding,
// title and footer rows, never below a usable minimum.
func PaneSize(termWidth, termHeight int) (int, int) {
	width := termWidth - 8
	height := termHeight - 12
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}
	return width, height
}

// PlaceWindow anchors panel at the bottom left and fills the rest of the
// terminal with the theme background.
func PlaceWindow(m Model, panel string) string {
	if m.TerminalWidth <= 0 || m.TerminalHeight <= 0 {
		return panel
	}
	return lipgloss.Place(m.TerminalWidth, m.TerminalHeight, lipgloss.Left, lipgloss.Bottom, panel,
		lipgloss.WithWhitespaceBackground(m.Theme.Background))
}
