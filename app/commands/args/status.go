package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/neolt/app/cli"
	"gopkg.in/yaml.v3"
)

// Status is the document printed by the status command.
type Status struct {
	Dir          string `yaml:"dir"`
	Users        int    `yaml:"users"`
	DefaultOnly  bool   `yaml:"default_only"`
	DarkMode     bool   `yaml:"dark_mode"`
	Registration string `yaml:"registration"`
}

// StatusCommand prints the configuration state as YAML.
type StatusCommand struct{}

func init() {
	RegisterCommand(&StatusCommand{})
}

func (c *StatusCommand) Name() string {
	return "status"
}

func (c *StatusCommand) Description() string {
	return "Shows the configuration directory, user count and theme."
}

func (c *StatusCommand) Usage() string {
	return ""
}

func (c *StatusCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *StatusCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *StatusCommand) Execute(env Env, args cli.CommandArgs) error {
	status, err := CollectStatus(env)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to encode status: %w", err)
	}
	_, err = env.Out.Write(out)
	return err
}

// CollectStatus reads both stores without touching the session.
func CollectStatus(env Env) (Status, error) {
	ctrl := env.Controller
	accounts, err := ctrl.Accounts().Accounts()
	if err != nil {
		return Status{}, err
	}
	defaultOnly, err := ctrl.Accounts().HasOnlyDefaultAccount()
	if err != nil {
		return Status{}, err
	}
	dark, err := ctrl.Settings().Load()
	if err != nil {
		return Status{}, err
	}

	registration := "closed"
	if ctrl.OpenRegistration() {
		registration = "open"
	}
	return Status{
		Dir:          ctrl.Dir(),
		Users:        len(accounts),
		DefaultOnly:  defaultOnly,
		DarkMode:     dark,
		Registration: registration,
	}, nil
}
