package app

import (
	"time"

	"github.com/Guerrilla-Interactive/neolt/app/session"
	"github.com/Guerrilla-Interactive/neolt/app/settings"
	"github.com/Guerrilla-Interactive/neolt/app/utils"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Screen indicates which screen is currently shown.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenMenu
	ScreenAddUser
	ScreenSettings
	ScreenPowerwash
	ScreenNote
	ScreenCalc
	ScreenTerminal
	ScreenSysInfo
)

// Model is the primary application state shared by all screens.
type Model struct {
	CurrentScreen  Screen
	Version        string
	TerminalWidth  int
	TerminalHeight int
	StartedAt      time.Time
	Shell          string

	// Theme is fixed for the run; a saved change applies after restart.
	Theme   settings.Theme
	Session *session.Session

	// One-line feedback under the current screen, cleared on navigation.
	Status        string
	StatusIsError bool

	LoginUsername   textinput.Model
	LoginPassword   textinput.Model
	LoginFocus      int
	ShowDefaultHint bool

	MenuIndex     int
	MenuPaginator paginator.Model

	NewUsername  textinput.Model
	NewPassword  textinput.Model
	AddUserFocus int
	// Where Add User and Powerwash return on Esc: login or menu.
	ReturnScreen Screen

	SettingsIndex int

	NoteArea         textarea.Model
	NotePathInput    textinput.Model
	NotePromptActive bool

	CalcInput  textinput.Model
	CalcResult string

	TerminalInput  textinput.Model
	TerminalOutput viewport.Model
	TerminalLog    string
	TerminalBusy   bool

	SysInfo        utils.SysInfo
	SysInfoLoading bool
}

// ShellFinishedMsg carries the result of a NeoTerminal command.
type ShellFinishedMsg struct {
	Command string
	Output  string
	Err     error
}

// SysInfoMsg carries the collected NeoSys values.
type SysInfoMsg struct {
	Info utils.SysInfo
}

// SetStatus shows an informational line.
func (m *Model) SetStatus(s string) {
	m.Status = s
	m.StatusIsError = false
}

// SetError shows a failure line.
func (m *Model) SetError(s string) {
	m.Status = s
	m.StatusIsError = true
}

// ClearStatus removes the feedback line.
func (m *Model) ClearStatus() {
	m.Status = ""
	m.StatusIsError = false
}

// Username is the logged-in user, or "" at the login gate.
func (m Model) Username() string {
	if m.Session == nil {
		return ""
	}
	return m.Session.Username
}
