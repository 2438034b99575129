package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/Guerrilla-Interactive/neolt/app"
	"github.com/Guerrilla-Interactive/neolt/app/account"
	"github.com/Guerrilla-Interactive/neolt/app/cli"
	"github.com/Guerrilla-Interactive/neolt/app/screens/apps"
	"github.com/Guerrilla-Interactive/neolt/app/screens/login"
	settingsScreen "github.com/Guerrilla-Interactive/neolt/app/screens/settings"
	"github.com/Guerrilla-Interactive/neolt/app/session"
	"github.com/Guerrilla-Interactive/neolt/app/settings"
	tea "github.com/charmbracelet/bubbletea"
)

func newProgram(t *testing.T, opts ...session.Option) (ProgramModel, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), ".neolt_gui")
	ctl := session.NewController(account.NewStore(dir), settings.NewStore(dir), opts...)
	if err := ctl.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	hint, err := ctl.DefaultHint()
	if err != nil {
		t.Fatal(err)
	}
	return ProgramModel{M: app.NewModel("test", ctl.Theme(), "sh", hint), Ctl: ctl}, dir
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs through Update and returns the model with the last command.
func send(t *testing.T, pm ProgramModel, msgs ...tea.Msg) (ProgramModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = pm.Update(msg)
		pm = next.(ProgramModel)
	}
	return pm, cmd
}

func loginAs(t *testing.T, pm ProgramModel, username, password string) ProgramModel {
	t.Helper()
	pm, _ = send(t, pm, key(username), key("tab"), key(password), key("enter"))
	if pm.M.CurrentScreen != app.ScreenMenu {
		t.Fatalf("login as %s failed: screen %v, status %q", username, pm.M.CurrentScreen, pm.M.Status)
	}
	return pm
}

// openMenuItem moves down from the first entry and presses enter.
func openMenuItem(t *testing.T, pm ProgramModel, index int) (ProgramModel, tea.Cmd) {
	t.Helper()
	for pm.M.MenuIndex != index {
		pm, _ = send(t, pm, key("down"))
	}
	return send(t, pm, key("enter"))
}

func TestLoginScreen(t *testing.T) {
	pm, _ := newProgram(t)

	if !strings.Contains(pm.View(), login.DefaultHintMessage) {
		t.Errorf("fresh install should show the default login hint:\n%s", pm.View())
	}

	pm, _ = send(t, pm, key("admin"), key("tab"), key("wrong"), key("enter"))
	if pm.M.CurrentScreen != app.ScreenLogin {
		t.Fatalf("failed login left the gate: screen %v", pm.M.CurrentScreen)
	}
	if pm.M.Status != login.FailedMessage || !pm.M.StatusIsError {
		t.Errorf("Status mismatch: expected %q, got %q", login.FailedMessage, pm.M.Status)
	}
	if pm.M.LoginPassword.Value() != "" {
		t.Error("password field should be cleared after a failed login")
	}

	pm, _ = send(t, pm, key("admin"), key("enter"))
	if pm.M.CurrentScreen != app.ScreenMenu {
		t.Fatalf("expected menu after login, got screen %v (status %q)", pm.M.CurrentScreen, pm.M.Status)
	}
	if pm.M.Username() != "admin" || pm.M.Status != "" {
		t.Errorf("unexpected model after login: user %q, status %q", pm.M.Username(), pm.M.Status)
	}
	if !strings.Contains(pm.View(), "NeoLT - admin") {
		t.Errorf("menu title missing:\n%s", pm.View())
	}
}

func TestAddUserFromLogin(t *testing.T) {
	testCases := []struct {
		name           string
		open           bool
		expectedScreen app.Screen
	}{
		{name: "Closed Registration", open: false, expectedScreen: app.ScreenLogin},
		{name: "Open Registration", open: true, expectedScreen: app.ScreenAddUser},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pm, _ := newProgram(t, session.WithOpenRegistration(tc.open))
			pm, _ = send(t, pm, key("ctrl+n"))
			if pm.M.CurrentScreen != tc.expectedScreen {
				t.Errorf("screen mismatch: expected %v, got %v", tc.expectedScreen, pm.M.CurrentScreen)
			}
		})
	}
}

func TestAddUserThenLoginAsNewUser(t *testing.T) {
	pm, _ := newProgram(t)
	pm = loginAs(t, pm, "admin", "admin")

	pm, _ = openMenuItem(t, pm, 5)
	if pm.M.CurrentScreen != app.ScreenAddUser {
		t.Fatalf("expected add user screen, got %v", pm.M.CurrentScreen)
	}

	pm, _ = send(t, pm, key("alice"), key("enter"))
	if !pm.M.StatusIsError {
		t.Error("a missing password should be rejected")
	}

	pm, _ = send(t, pm, key("tab"), key("s3cret"), key("enter"))
	if pm.M.Status != "User 'alice' added." {
		t.Errorf("Status mismatch: got %q", pm.M.Status)
	}
	if pm.M.NewUsername.Value() != "" || pm.M.NewPassword.Value() != "" {
		t.Error("form should be cleared after adding a user")
	}

	pm, _ = send(t, pm, key("esc"))
	if pm.M.CurrentScreen != app.ScreenMenu {
		t.Fatalf("esc should return to the menu, got %v", pm.M.CurrentScreen)
	}

	pm, _ = openMenuItem(t, pm, 6)
	if pm.M.CurrentScreen != app.ScreenLogin || pm.M.Session != nil {
		t.Fatalf("logout should return to the login gate, screen %v", pm.M.CurrentScreen)
	}
	if pm.M.ShowDefaultHint {
		t.Error("default hint should be gone once another user exists")
	}

	pm = loginAs(t, pm, "alice", "s3cret")
	if pm.M.Username() != "alice" {
		t.Errorf("Username mismatch: expected %q, got %q", "alice", pm.M.Username())
	}
}

func TestSettingsSavesForNextRun(t *testing.T) {
	pm, dir := newProgram(t)
	pm = loginAs(t, pm, "admin", "admin")

	pm, _ = openMenuItem(t, pm, 4)
	if pm.M.CurrentScreen != app.ScreenSettings {
		t.Fatalf("expected settings screen, got %v", pm.M.CurrentScreen)
	}
	if pm.M.MenuPaginator.Page != 0 {
		t.Errorf("entry 4 should be on the first page, got page %d", pm.M.MenuPaginator.Page)
	}

	pm, _ = send(t, pm, key("y"))
	if pm.M.Status != settingsScreen.RestartMessage {
		t.Errorf("Status mismatch: expected %q, got %q", settingsScreen.RestartMessage, pm.M.Status)
	}
	if pm.M.Theme.Dark || pm.Ctl.Theme().Dark {
		t.Error("theme must not change before a restart")
	}
	data, err := os.ReadFile(filepath.Join(dir, "settings.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "dark=true\n" {
		t.Errorf("settings.txt mismatch: got %q", string(data))
	}
}

func TestMenuPaging(t *testing.T) {
	pm, _ := newProgram(t)
	pm = loginAs(t, pm, "admin", "admin")

	pm, _ = send(t, pm, key("up"))
	if pm.M.MenuIndex != 7 || pm.M.MenuPaginator.Page != 1 {
		t.Errorf("up from the top should wrap to the last entry: index %d page %d", pm.M.MenuIndex, pm.M.MenuPaginator.Page)
	}
	pm, _ = send(t, pm, key("h"))
	if pm.M.MenuIndex != 0 || pm.M.MenuPaginator.Page != 0 {
		t.Errorf("previous page should select its first entry: index %d page %d", pm.M.MenuIndex, pm.M.MenuPaginator.Page)
	}
	pm, _ = send(t, pm, key("l"))
	if pm.M.MenuIndex != app.MenuPerPage || pm.M.MenuPaginator.Page != 1 {
		t.Errorf("next page should select its first entry: index %d page %d", pm.M.MenuIndex, pm.M.MenuPaginator.Page)
	}
	if !strings.Contains(pm.View(), "Powerwash") || strings.Contains(pm.View(), "NeoNote") {
		t.Errorf("second page should list only its own entries:\n%s", pm.View())
	}
}

func TestPowerwashFlow(t *testing.T) {
	pm, dir := newProgram(t)

	pm, _ = send(t, pm, key("ctrl+p"))
	if pm.M.CurrentScreen != app.ScreenPowerwash {
		t.Fatalf("expected powerwash screen, got %v", pm.M.CurrentScreen)
	}
	pm, _ = send(t, pm, key("n"))
	if pm.M.CurrentScreen != app.ScreenLogin {
		t.Errorf("declining should return to login, got %v", pm.M.CurrentScreen)
	}
	if _, err := os.Stat(filepath.Join(dir, "users.txt")); err != nil {
		t.Fatalf("declined powerwash removed data: %v", err)
	}

	pm = loginAs(t, pm, "admin", "admin")
	pm, _ = openMenuItem(t, pm, 7)
	if pm.M.CurrentScreen != app.ScreenPowerwash {
		t.Fatalf("expected powerwash screen, got %v", pm.M.CurrentScreen)
	}
	pm, cmd := send(t, pm, key("y"))
	if cmd == nil {
		t.Fatal("confirmed powerwash should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("confirmed powerwash should return tea.Quit")
	}
	if pm.Ctl.State() != session.StateTerminated {
		t.Errorf("State mismatch: expected %v, got %v", session.StateTerminated, pm.Ctl.State())
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("config directory should be gone, stat err: %v", err)
	}
}

func TestNeoCalc(t *testing.T) {
	pm, _ := newProgram(t)
	pm = loginAs(t, pm, "admin", "admin")
	pm, _ = openMenuItem(t, pm, 1)

	testCases := []struct {
		input    string
		expected string
	}{
		{input: "2+3*4", expected: "14"},
		{input: "1/", expected: "Error"},
	}
	for _, tc := range testCases {
		pm.M.CalcInput.SetValue("")
		pm, _ = send(t, pm, key(tc.input), key("enter"))
		if pm.M.CalcResult != tc.expected {
			t.Errorf("CalcResult for %q mismatch: expected %q, got %q", tc.input, tc.expected, pm.M.CalcResult)
		}
	}

	pm, _ = send(t, pm, key("esc"))
	if pm.M.CurrentScreen != app.ScreenMenu {
		t.Errorf("esc should return to the menu, got %v", pm.M.CurrentScreen)
	}
}

func TestNeoNoteSave(t *testing.T) {
	pm, _ := newProgram(t)
	pm = loginAs(t, pm, "admin", "admin")
	pm, _ = openMenuItem(t, pm, 0)
	if pm.M.CurrentScreen != app.ScreenNote {
		t.Fatalf("expected note screen, got %v", pm.M.CurrentScreen)
	}

	target := filepath.Join(t.TempDir(), "todo")
	pm, _ = send(t, pm, key("buy milk"), key("ctrl+s"))
	if !pm.M.NotePromptActive {
		t.Fatal("ctrl+s should open the save prompt")
	}
	pm, _ = send(t, pm, key(target), key("enter"))
	if pm.M.NotePromptActive || pm.M.StatusIsError {
		t.Fatalf("save failed: %q", pm.M.Status)
	}

	data, err := os.ReadFile(target + ".txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "buy milk" {
		t.Errorf("saved note mismatch: got %q", string(data))
	}
}

func TestNeoTerminal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	pm, _ := newProgram(t)
	pm = loginAs(t, pm, "admin", "admin")
	pm, _ = openMenuItem(t, pm, 2)

	pm, cmd := send(t, pm, key("echo hi"), key("enter"))
	if !pm.M.TerminalBusy || cmd == nil {
		t.Fatal("enter should start the command")
	}
	pm, _ = send(t, pm, cmd())

	pm, cmd = send(t, pm, key("exit 3"), key("enter"))
	pm, _ = send(t, pm, cmd())

	pm, cmd = send(t, pm, key("echo oops; false"), key("enter"))
	pm, _ = send(t, pm, cmd())

	pm.M.Shell = filepath.Join(t.TempDir(), "missing-shell")
	pm, cmd = send(t, pm, key("echo never"), key("enter"))
	pm, _ = send(t, pm, cmd())

	expected := "> echo hi\nhi\n> exit 3\n> echo oops; false\noops\n> echo never\n" + apps.CommandFailedMessage + "\n"
	if pm.M.TerminalLog != expected {
		t.Errorf("TerminalLog mismatch: expected %q, got %q", expected, pm.M.TerminalLog)
	}
	if pm.M.TerminalBusy {
		t.Error("terminal should be idle after the result arrives")
	}
}

func TestNeoSys(t *testing.T) {
	pm, _ := newProgram(t)
	pm = loginAs(t, pm, "admin", "admin")

	pm, cmd := openMenuItem(t, pm, 3)
	if pm.M.CurrentScreen != app.ScreenSysInfo || !pm.M.SysInfoLoading || cmd == nil {
		t.Fatalf("NeoSys should start collecting: screen %v loading %t", pm.M.CurrentScreen, pm.M.SysInfoLoading)
	}
	pm, _ = send(t, pm, cmd())
	if pm.M.SysInfoLoading || pm.M.SysInfo.User != "admin" || pm.M.SysInfo.System == "" {
		t.Errorf("unexpected sys info: %+v", pm.M.SysInfo)
	}
	if !strings.Contains(pm.View(), "User: admin") {
		t.Errorf("view should list the user:\n%s", pm.View())
	}
}

func TestWindowResize(t *testing.T) {
	pm, _ := newProgram(t)
	pm, _ = send(t, pm, tea.WindowSizeMsg{Width: 120, Height: 40})

	if pm.M.TerminalWidth != 120 || pm.M.TerminalHeight != 40 {
		t.Errorf("size mismatch: got %dx%d", pm.M.TerminalWidth, pm.M.TerminalHeight)
	}
	width, height := app.PaneSize(120, 40)
	if pm.M.TerminalOutput.Width != width || pm.M.TerminalOutput.Height != height {
		t.Errorf("terminal pane mismatch: expected %dx%d, got %dx%d",
			width, height, pm.M.TerminalOutput.Width, pm.M.TerminalOutput.Height)
	}
}

func TestSetupLoggingFollowsDebugToggle(t *testing.T) {
	previous := log.Writer()
	t.Cleanup(func() {
		log.SetOutput(previous)
		cli.SetDebugEnabled(false)
	})

	testCases := []struct {
		name    string
		debug   bool
		logFile bool
	}{
		{name: "Debug Off", debug: false, logFile: false},
		{name: "Debug On", debug: true, logFile: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "neolt-debug.log")
			cli.SetDebugEnabled(tc.debug)

			closeLog, err := setupLogging(path)
			if err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}
			log.Printf("hello from %s", tc.name)
			closeLog()
			log.SetOutput(io.Discard)

			data, err := os.ReadFile(path)
			if !tc.logFile {
				if !os.IsNotExist(err) {
					t.Errorf("expected no log file, got err %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected a log file: %v", err)
			}
			if !strings.Contains(string(data), "hello from "+tc.name) {
				t.Errorf("log file mismatch: got %q", string(data))
			}
		})
	}
}
