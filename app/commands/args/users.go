package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/neolt/app/cli"
)

// UsersCommand prints the usernames in file order. Passwords are never shown.
type UsersCommand struct{}

func init() {
	RegisterCommand(&UsersCommand{})
}

func (c *UsersCommand) Name() string {
	return "users"
}

func (c *UsersCommand) Description() string {
	return "Lists NeoLT users."
}

func (c *UsersCommand) Usage() string {
	return ""
}

func (c *UsersCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *UsersCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *UsersCommand) Execute(env Env, args cli.CommandArgs) error {
	accounts, err := env.Controller.Accounts().Accounts()
	if err != nil {
		return err
	}
	for _, a := range accounts {
		fmt.Fprintln(env.Out, a.Username)
	}
	return nil
}
