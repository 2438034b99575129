package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/neolt/app/cli"
)

// AddUserCommand appends an account from the command line. The CLI runs as
// the owner of the configuration directory, so no login is required.
type AddUserCommand struct{}

func init() {
	RegisterCommand(&AddUserCommand{})
}

func (c *AddUserCommand) Name() string {
	return "adduser"
}

func (c *AddUserCommand) Description() string {
	return "Adds a NeoLT user."
}

func (c *AddUserCommand) Usage() string {
	return "<username> <password>"
}

func (c *AddUserCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "username", Description: "Login name for the new user.", Required: true},
		{Name: "password", Description: "Password for the new user.", Required: true},
	}
}

func (c *AddUserCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *AddUserCommand) Execute(env Env, args cli.CommandArgs) error {
	if err := requireVariables(c, args); err != nil {
		return err
	}
	username, password := args.Variables[0], args.Variables[1]
	if username == "" || password == "" {
		return fmt.Errorf("username and password must not be empty")
	}

	if err := env.Controller.Accounts().Register(username, password); err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "User '%s' added.\n", username)
	return nil
}
