package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/neolt/app/cli"
)

// ThemeGetCommand prints the saved theme.
type ThemeGetCommand struct{}

// ThemeSetCommand saves the theme used on the next launch.
type ThemeSetCommand struct{}

func init() {
	RegisterCommand(&ThemeGetCommand{})
	RegisterCommand(&ThemeSetCommand{})
}

func (c *ThemeGetCommand) Name() string        { return "theme get" }
func (c *ThemeGetCommand) Description() string { return "Prints the saved theme (dark or light)." }
func (c *ThemeGetCommand) Usage() string       { return "" }

func (c *ThemeGetCommand) ExpectedArgs() []ArgDef   { return []ArgDef{} }
func (c *ThemeGetCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *ThemeGetCommand) Execute(env Env, args cli.CommandArgs) error {
	dark, err := env.Controller.Settings().Load()
	if err != nil {
		return err
	}
	if dark {
		fmt.Fprintln(env.Out, "dark")
	} else {
		fmt.Fprintln(env.Out, "light")
	}
	return nil
}

func (c *ThemeSetCommand) Name() string        { return "theme set" }
func (c *ThemeSetCommand) Description() string { return "Saves the theme applied on the next launch." }
func (c *ThemeSetCommand) Usage() string       { return "<dark|light>" }

func (c *ThemeSetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "theme", Description: "Either dark or light.", Required: true},
	}
}

func (c *ThemeSetCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *ThemeSetCommand) Execute(env Env, args cli.CommandArgs) error {
	if err := requireVariables(c, args); err != nil {
		return err
	}

	var dark bool
	switch args.Variables[0] {
	case "dark":
		dark = true
	case "light":
	default:
		return fmt.Errorf("unknown theme %q: expected dark or light", args.Variables[0])
	}

	if err := env.Controller.Settings().Save(dark); err != nil {
		return err
	}
	fmt.Fprintln(env.Out, "Restart NeoLT to apply the theme.")
	return nil
}
