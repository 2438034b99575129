package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/neolt/app/cli"
)

// ListCommandsCommand lists the direct commands.
type ListCommandsCommand struct{}

func init() {
	RegisterCommand(&ListCommandsCommand{})
}

func (c *ListCommandsCommand) Name() string {
	return "commands"
}

func (c *ListCommandsCommand) Description() string {
	return "Lists all available commands."
}

func (c *ListCommandsCommand) Usage() string {
	return ""
}

func (c *ListCommandsCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *ListCommandsCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *ListCommandsCommand) Execute(env Env, args cli.CommandArgs) error {
	fmt.Fprintln(env.Out, "Available Commands:")
	for _, cmd := range GetAllCommands() {
		if cmd.Name() == c.Name() {
			continue
		}
		fmt.Fprintf(env.Out, "  %-15s %s\n", cmd.Name(), cmd.Description())
	}
	fmt.Fprintln(env.Out, "\nRun 'neolt [command] --help' for more information on a specific command.")
	return nil
}
