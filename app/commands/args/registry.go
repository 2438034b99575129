package args

import (
	"fmt"
	"io"
	"sort"

	"github.com/Guerrilla-Interactive/neolt/app/cli"
	"github.com/Guerrilla-Interactive/neolt/app/session"
)

// ArgDef is an alias for cli.ArgDef.
type ArgDef = cli.ArgDef

// FlagDef is an alias for cli.FlagDef.
type FlagDef = cli.FlagDef

// Env is what a direct command runs against: a started session controller and
// the writer for its output.
type Env struct {
	Controller *session.Controller
	Out        io.Writer
}

// Command represents a CLI command that can be executed directly.
type Command interface {
	// Name returns the command's name (e.g., "theme set").
	Name() string
	// Description returns a brief help description for the command.
	Description() string
	// Execute runs the command logic with the parsed arguments.
	Execute(env Env, args cli.CommandArgs) error
	// Usage returns a brief usage string (e.g., "<username> <password>").
	Usage() string
	// ExpectedArgs returns definitions for expected positional arguments.
	ExpectedArgs() []ArgDef
	// ExpectedFlags returns definitions for expected flags.
	ExpectedFlags() []FlagDef
}

var commandRegistry = make(map[string]Command)

// RegisterCommand adds a command to the registry. Commands register
// themselves from init functions; a duplicate name panics.
func RegisterCommand(cmd Command) {
	if _, exists := commandRegistry[cmd.Name()]; exists {
		panic(fmt.Sprintf("Command already registered: %s", cmd.Name()))
	}
	commandRegistry[cmd.Name()] = cmd
}

// GetCommand retrieves a command from the registry by its name.
func GetCommand(name string) (Command, bool) {
	cmd, found := commandRegistry[name]
	return cmd, found
}

// CommandExists checks if a command with the given name is registered.
func CommandExists(name string) bool {
	_, found := commandRegistry[name]
	return found
}

// GetAllCommands returns every registered command sorted by name.
func GetAllCommands() []Command {
	cmds := make([]Command, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// Checker adapts the registry to cli.CommandRegistryChecker.
type Checker struct{}

func (Checker) CommandExists(name string) bool {
	return CommandExists(name)
}

// requireVariables returns an error naming the first missing positional
// argument.
func requireVariables(cmd Command, args cli.CommandArgs) error {
	expected := cmd.ExpectedArgs()
	for i, def := range expected {
		if def.Required && i >= len(args.Variables) {
			return fmt.Errorf("missing required argument <%s>; usage: neolt %s %s", def.Name, cmd.Name(), cmd.Usage())
		}
	}
	return nil
}

// Run executes the command named in parsed.
func Run(env Env, parsed cli.CommandArgs) error {
	cmd, found := GetCommand(parsed.CommandName)
	if !found {
		return fmt.Errorf("unknown command: %s", parsed.CommandName)
	}
	return cmd.Execute(env, parsed)
}
