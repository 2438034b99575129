package config

// Config holds the runtime settings read from the environment.
// The per-user data lives under Dir; see the account and settings packages.
type Config struct {
	Dir              string `envconfig:"NEOLT_DIR" default:"~/.neolt_gui" description:"configuration directory holding users.txt and settings.txt"`
	OpenRegistration bool   `envconfig:"NEOLT_OPEN_REGISTRATION" default:"false" description:"allow adding users from the login screen"`
	Debug            bool   `envconfig:"NEOLT_DEBUG" default:"false"`
	LogFile          string `envconfig:"NEOLT_LOG_FILE" default:"neolt-debug.log"`
	Shell            string `envconfig:"NEOLT_SHELL" description:"shell used by NeoTerminal (defaults to sh, or cmd on Windows)"`
}
