package cli

import (
	"fmt"
	"strings"
)

// CommandRegistryChecker reports whether a (possibly two-word) command is known.
// It keeps the parser free of a dependency on the commands package.
type CommandRegistryChecker interface {
	CommandExists(name string) bool
}

// ArgDef describes a positional argument for help output.
type ArgDef struct {
	Name        string
	Description string
	Required    bool
}

// FlagDef describes a flag for help output.
type FlagDef struct {
	Name        string // long name, e.g. "yes"
	ShortName   string // e.g. "y", empty if none
	Description string
	HasValue    bool // true for --flag=value / --flag value
	Required    bool
}

// CommandArgs is the result of parsing os.Args[1:].
type CommandArgs struct {
	RawArgs          []string
	CommandName      string            // "users", "theme set", ...
	Variables        []string          // positional arguments after the command name
	Flags            map[string]string // --dir=/tmp -> {"dir": "/tmp"}
	BoolFlags        map[string]bool   // --yes -> {"yes": true}
	HelpRequested    bool
	VersionRequested bool
	DebugRequested   bool
	Errors           []error
}

// Debug toggle controlled by --debug.
var debugEnabled bool

// SetDebugEnabled turns debug logging on or off for this process.
func SetDebugEnabled(on bool) { debugEnabled = on }

// IsDebugEnabled reports whether debug logging is on.
func IsDebugEnabled() bool { return debugEnabled }

// ParseCommandLineArgs splits raw arguments into a command name, positional
// variables and flags. The first two non-flag words are tried as a two-word
// command, then the first word alone; unknown words stay variables.
func ParseCommandLineArgs(rawArgs []string, registry CommandRegistryChecker) CommandArgs {
	parsed := CommandArgs{
		RawArgs:   rawArgs,
		Variables: make([]string, 0),
		Flags:     make(map[string]string),
		BoolFlags: make(map[string]bool),
		Errors:    make([]error, 0),
	}

	// Global flags count wherever they appear.
	for _, arg := range rawArgs {
		switch arg {
		case "--help", "-h":
			parsed.HelpRequested = true
		case "--version":
			parsed.VersionRequested = true
		case "--debug":
			parsed.DebugRequested = true
		}
	}

	rest := resolveCommandName(&parsed, rawArgs, registry)

	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		switch {
		case arg == "--version" || arg == "--debug":
			continue

		case strings.HasPrefix(arg, "--"):
			name := strings.TrimPrefix(arg, "--")
			if key, value, ok := strings.Cut(name, "="); ok {
				parsed.setFlag("--", key, value)
			} else if i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
				parsed.setFlag("--", name, rest[i+1])
				i++
			} else {
				parsed.setBoolFlag("--", name)
			}

		case strings.HasPrefix(arg, "-"):
			chars := strings.TrimPrefix(arg, "-")
			if chars == "" {
				parsed.Errors = append(parsed.Errors, fmt.Errorf("invalid flag format: %s", arg))
				continue
			}
			next := ""
			if i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
				next = rest[i+1]
			}
			// Combined short flags: only the last one may take a value.
			for j, c := range chars {
				name := string(c)
				if j == len(chars)-1 && next != "" {
					parsed.setFlag("-", name, next)
					i++
				} else {
					parsed.setBoolFlag("-", name)
				}
			}

		default:
			parsed.Variables = append(parsed.Variables, arg)
		}
	}

	return parsed
}

// resolveCommandName sets parsed.CommandName and returns the arguments left
// for flag and variable parsing.
func resolveCommandName(parsed *CommandArgs, args []string, registry CommandRegistryChecker) []string {
	first, second := -1, -1
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if first == -1 {
			first = i
		} else {
			second = i
			break
		}
	}
	if first == -1 || registry == nil {
		return args
	}

	if second != -1 {
		name := args[first] + " " + args[second]
		if registry.CommandExists(name) {
			parsed.CommandName = name
			return without(args, first, second)
		}
	}
	if registry.CommandExists(args[first]) {
		parsed.CommandName = args[first]
		return without(args, first)
	}
	return args
}

func without(args []string, skip ...int) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		drop := false
		for _, s := range skip {
			if i == s {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, arg)
		}
	}
	return out
}

func (p *CommandArgs) setFlag(prefix, name, value string) {
	if _, exists := p.Flags[name]; exists {
		p.Errors = append(p.Errors, fmt.Errorf("flag provided more than once: %s%s", prefix, name))
	}
	p.Flags[name] = value
}

func (p *CommandArgs) setBoolFlag(prefix, name string) {
	if _, exists := p.BoolFlags[name]; exists {
		p.Errors = append(p.Errors, fmt.Errorf("boolean flag provided more than once: %s%s", prefix, name))
	}
	p.BoolFlags[name] = true
}
