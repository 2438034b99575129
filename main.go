package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Guerrilla-Interactive/neolt/app"
	"github.com/Guerrilla-Interactive/neolt/app/account"
	"github.com/Guerrilla-Interactive/neolt/app/cli"
	commands "github.com/Guerrilla-Interactive/neolt/app/commands/args"
	"github.com/Guerrilla-Interactive/neolt/app/screens/adduser"
	"github.com/Guerrilla-Interactive/neolt/app/screens/apps"
	"github.com/Guerrilla-Interactive/neolt/app/screens/login"
	"github.com/Guerrilla-Interactive/neolt/app/screens/menu"
	"github.com/Guerrilla-Interactive/neolt/app/screens/powerwash"
	settingsScreen "github.com/Guerrilla-Interactive/neolt/app/screens/settings"
	"github.com/Guerrilla-Interactive/neolt/app/session"
	"github.com/Guerrilla-Interactive/neolt/app/settings"
	config "github.com/Guerrilla-Interactive/neolt/internal"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Version is set via linker flags during release builds.
var Version = "v0.1.0"

// ResetMessage is printed after a confirmed powerwash.
const ResetMessage = "NeoLT has been reset. Restart the app."

// ProgramModel wraps app.Model so we can hold Update logic in one place.
type ProgramModel struct {
	M   app.Model
	Ctl *session.Controller
}

func (pm ProgramModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles async results first, then routes everything else to the
// current screen.
func (pm ProgramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typedMsg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.M.TerminalWidth = typedMsg.Width
		pm.M.TerminalHeight = typedMsg.Height
		pm.M.ResizePanes()
		return pm, nil

	case app.ShellFinishedMsg:
		pm.M = apps.HandleShellFinished(pm.M, typedMsg)
		return pm, nil

	case app.SysInfoMsg:
		pm.M = apps.HandleSysInfo(pm.M, typedMsg)
		return pm, nil
	}

	var cmd tea.Cmd
	keyMsg, isKey := msg.(tea.KeyMsg)

	// Screens with text widgets also take cursor blink messages; the rest
	// only react to keys.
	switch pm.M.CurrentScreen {
	case app.ScreenLogin:
		pm.M, cmd = login.UpdateScreenLogin(pm.M, msg, pm.Ctl)
	case app.ScreenAddUser:
		pm.M, cmd = adduser.UpdateScreenAddUser(pm.M, msg, pm.Ctl)
	case app.ScreenNote:
		pm.M, cmd = apps.UpdateScreenNote(pm.M, msg)
	case app.ScreenCalc:
		pm.M, cmd = apps.UpdateScreenCalc(pm.M, msg)
	case app.ScreenTerminal:
		pm.M, cmd = apps.UpdateScreenTerminal(pm.M, msg)
	case app.ScreenMenu:
		if isKey {
			pm.M, cmd = menu.UpdateScreenMenu(pm.M, keyMsg, pm.Ctl)
		}
	case app.ScreenSettings:
		if isKey {
			pm.M, cmd = settingsScreen.UpdateScreenSettings(pm.M, keyMsg, pm.Ctl)
		}
	case app.ScreenPowerwash:
		if isKey {
			pm.M, cmd = powerwash.UpdateScreenPowerwash(pm.M, keyMsg, pm.Ctl)
		}
	case app.ScreenSysInfo:
		if isKey {
			pm.M, cmd = apps.UpdateScreenSysInfo(pm.M, keyMsg)
		}
	}
	return pm, cmd
}

func (pm ProgramModel) View() string {
	switch pm.M.CurrentScreen {
	case app.ScreenLogin:
		return login.ViewScreenLogin(pm.M, pm.Ctl.OpenRegistration())
	case app.ScreenMenu:
		return menu.ViewScreenMenu(pm.M)
	case app.ScreenAddUser:
		return adduser.ViewScreenAddUser(pm.M)
	case app.ScreenSettings:
		return settingsScreen.ViewSettingsScreen(pm.M)
	case app.ScreenPowerwash:
		return powerwash.ViewScreenPowerwash(pm.M)
	case app.ScreenNote:
		return apps.ViewScreenNote(pm.M)
	case app.ScreenCalc:
		return apps.ViewScreenCalc(pm.M)
	case app.ScreenTerminal:
		return apps.ViewScreenTerminal(pm.M)
	case app.ScreenSysInfo:
		return apps.ViewScreenSysInfo(pm.M)
	}
	return ""
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(rawArgs []string) int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	parsedArgs := cli.ParseCommandLineArgs(rawArgs, commands.Checker{})
	if len(parsedArgs.Errors) > 0 {
		fmt.Println("Error parsing arguments:")
		for _, err := range parsedArgs.Errors {
			fmt.Printf("  - %v\n", err)
		}
		return 1
	}

	// --version takes precedence over everything else.
	if parsedArgs.VersionRequested {
		fmt.Printf("NeoLT %s\n", Version)
		return 0
	}

	if parsedArgs.HelpRequested {
		if parsedArgs.CommandName != "" {
			displayCommandHelp(parsedArgs.CommandName)
		} else {
			displayGeneralHelp()
		}
		return 0
	}

	if parsedArgs.CommandName == "" && len(parsedArgs.Variables) > 0 {
		fmt.Printf("Error: unknown command '%s'\n", parsedArgs.Variables[0])
		fmt.Println("Run `neolt --help` for usage.")
		return 1
	}

	cli.SetDebugEnabled(cfg.Debug || parsedArgs.DebugRequested)
	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	ctl := session.NewController(
		account.NewStore(cfg.Dir),
		settings.NewStore(cfg.Dir),
		session.WithOpenRegistration(cfg.OpenRegistration),
	)
	if err := ctl.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if parsedArgs.CommandName != "" {
		log.Printf("main: direct command %q", parsedArgs.CommandName)
		env := commands.Env{Controller: ctl, Out: os.Stdout}
		if err := commands.Run(env, parsedArgs); err != nil {
			fmt.Fprintf(os.Stderr, "Error executing command '%s': %v\n", parsedArgs.CommandName, err)
			return 1
		}
		return 0
	}

	return runInteractive(ctl, cfg)
}

// setupLogging sends the standard logger to a file in debug mode and
// discards it otherwise; the alternate screen owns the terminal.
func setupLogging(path string) (func(), error) {
	if !cli.IsDebugEnabled() {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "neolt")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return func() { f.Close() }, nil
}

func runInteractive(ctl *session.Controller, cfg config.Config) int {
	hint, err := ctl.DefaultHint()
	if err != nil {
		log.Printf("main: default hint: %v", err)
	}
	initialModel := app.NewModel(Version, ctl.Theme(), cfg.Shell, hint)

	p := tea.NewProgram(ProgramModel{M: initialModel, Ctl: ctl}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		return 1
	}

	if ctl.State() == session.StateTerminated {
		fmt.Println(ResetMessage)
	}
	return 0
}

// displayGeneralHelp prints the top-level help message.
func displayGeneralHelp() {
	fmt.Println("NeoLT - Help")
	fmt.Println("Usage: neolt [command] [variables...] [--flags...]")
	fmt.Println("Run without arguments to start the NeoLT desktop.")

	fmt.Println("\nAvailable Commands:")
	for _, cmd := range commands.GetAllCommands() {
		fmt.Printf("  %-15s %s\n", cmd.Name(), cmd.Description())
	}
	fmt.Println("\nRun 'neolt [command] --help' for more information on a specific command.")
	fmt.Println("\nGlobal Flags: --help, -h, --version, --debug")
	fmt.Println()
	if err := config.Usage(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// displayCommandHelp displays detailed help for a specific command.
func displayCommandHelp(commandName string) {
	cmd, found := commands.GetCommand(commandName)
	if !found {
		fmt.Printf("Error: Unknown command '%s'\n", commandName)
		displayGeneralHelp()
		return
	}

	fmt.Printf("Usage: neolt %s %s\n\n", cmd.Name(), cmd.Usage())
	fmt.Printf("  %s\n", cmd.Description())

	if args := cmd.ExpectedArgs(); len(args) > 0 {
		fmt.Println("\nArguments:")
		for _, arg := range args {
			required := ""
			if arg.Required {
				required = " (required)"
			}
			fmt.Printf("  %-15s %s%s\n", arg.Name, arg.Description, required)
		}
	}

	if flags := cmd.ExpectedFlags(); len(flags) > 0 {
		fmt.Println("\nFlags:")
		for _, flag := range flags {
			flagUsage := "--" + flag.Name
			if flag.ShortName != "" {
				flagUsage += ", -" + flag.ShortName
			}
			if flag.HasValue {
				flagUsage += " <value>"
			}
			required := ""
			if flag.Required {
				required = " (required)"
			}
			fmt.Printf("  %-15s %s%s\n", flagUsage, flag.Description, required)
		}
	}
	fmt.Println("\nGlobal Flags: --help, -h, --version, --debug")
}
