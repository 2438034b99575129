package args

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Guerrilla-Interactive/neolt/app/cli"
)

// ErrNotConfirmed is returned when powerwash runs without --yes.
var ErrNotConfirmed = errors.New("powerwash not confirmed; rerun with --yes")

// PowerwashCommand deletes every user and setting.
type PowerwashCommand struct{}

func init() {
	RegisterCommand(&PowerwashCommand{})
}

func (c *PowerwashCommand) Name() string {
	return "powerwash"
}

func (c *PowerwashCommand) Description() string {
	return "Resets NeoLT. All users and settings will be lost."
}

func (c *PowerwashCommand) Usage() string {
	return "--yes"
}

func (c *PowerwashCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *PowerwashCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "yes", ShortName: "y", Description: "Confirm the reset.", Required: true},
	}
}

func (c *PowerwashCommand) Execute(env Env, args cli.CommandArgs) error {
	confirmed := confirmFlag(args, "yes") || confirmFlag(args, "y")
	if err := env.Controller.Powerwash(confirmed); err != nil {
		return err
	}
	if !confirmed {
		return ErrNotConfirmed
	}
	fmt.Fprintln(env.Out, "NeoLT has been reset.")
	return nil
}

// confirmFlag reports whether name was given. The parser stores "--yes now"
// as a valued flag, so any value other than an explicit false counts.
func confirmFlag(args cli.CommandArgs, name string) bool {
	if args.BoolFlags[name] {
		return true
	}
	value, ok := args.Flags[name]
	if !ok {
		return false
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return true
}
