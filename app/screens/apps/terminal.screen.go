package apps

import (
	"context"
	"errors"
	"log"
	"os/exec"
	"strings"
	"time"

	"github.com/Guerrilla-Interactive/neolt/app"
	"github.com/Guerrilla-Interactive/neolt/app/screens/shared"
	"github.com/Guerrilla-Interactive/neolt/app/utils"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CommandFailedMessage is appended when a command cannot run at all. A
// non-zero exit only shows what the command printed.
const CommandFailedMessage = "Error running command"

const commandTimeout = 30 * time.Second

// UpdateScreenTerminal runs one command at a time; output arrives as a
// ShellFinishedMsg.
func UpdateScreenTerminal(m app.Model, msg tea.Msg) (app.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.ClearStatus()
			m.TerminalInput.Blur()
			m.CurrentScreen = app.ScreenMenu
			return m, nil
		case "ctrl+y":
			return copyToClipboard(m, m.TerminalLog), nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.TerminalOutput, cmd = m.TerminalOutput.Update(msg)
			return m, cmd
		case "enter":
			command := strings.TrimSpace(m.TerminalInput.Value())
			if command == "" || m.TerminalBusy {
				return m, nil
			}
			m.TerminalInput.SetValue("")
			m.TerminalBusy = true
			m = appendTerminal(m, "> "+command+"\n")
			return m, RunCommand(m.Shell, command)
		}
	}

	var cmd tea.Cmd
	m.TerminalInput, cmd = m.TerminalInput.Update(msg)
	return m, cmd
}

// RunCommand runs command through shell off the update loop.
func RunCommand(shell, command string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		out, err := utils.RunShell(ctx, shell, command)
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return app.ShellFinishedMsg{Command: command, Output: out, Err: err}
	}
}

// HandleShellFinished appends a finished command's output to the log.
func HandleShellFinished(m app.Model, msg app.ShellFinishedMsg) app.Model {
	m.TerminalBusy = false
	out := msg.Output
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if msg.Err != nil {
		log.Printf("terminal: %v", msg.Err)
		if !exitedNonZero(msg.Err) {
			out += CommandFailedMessage + "\n"
		}
	}
	return appendTerminal(m, out)
}

func exitedNonZero(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

func appendTerminal(m app.Model, text string) app.Model {
	m.TerminalLog += text
	m.TerminalOutput.SetContent(m.TerminalLog)
	m.TerminalOutput.GotoBottom()
	return m
}

// ViewScreenTerminal renders the output pane above the prompt.
func ViewScreenTerminal(m app.Model) string {
	prompt := m.TerminalInput.View()
	if m.TerminalBusy {
		prompt = m.Theme.HintText().Render("running...")
	}
	body := lipgloss.JoinVertical(lipgloss.Left, m.TerminalOutput.View(), "", prompt)
	return shared.Window(m, "NeoTerminal", body,
		shared.Footer(m.Theme, "enter run", "pgup/pgdown scroll", "ctrl+y copy", "esc back"))
}
