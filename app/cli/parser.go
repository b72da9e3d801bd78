package cli

import (
	"fmt"
	"strings"
)

// CommandRegistryChecker answers the questions the parser needs about commands.
// This avoids a direct dependency cycle between cli and commands packages.
type CommandRegistryChecker interface {
	// CommandExists reports whether name (one or two words) is a command.
	CommandExists(name string) bool
	// FlagTakesValue reports whether the named flag of command expects a value.
	// Unknown flags are treated as boolean.
	FlagTakesValue(command, flag string) bool
}

// ArgDef defines the structure for an expected positional argument.
type ArgDef struct {
	Name        string // e.g., "path", "dir"
	Description string // Help text for the argument
	Required    bool   // Whether the argument is mandatory
}

// FlagDef defines the structure for an expected flag.
type FlagDef struct {
	Name        string // Long name (e.g., "templates")
	ShortName   string // Short name (e.g., "t"), empty if none
	Description string // Help text for the flag
	HasValue    bool   // Whether the flag expects a value (true for --flag=v, false for --flag)
	Required    bool   // Whether the flag is mandatory
}

// CommandArgs holds structured information parsed from command-line arguments.
type CommandArgs struct {
	RawArgs          []string          // Keep the original args for potential re-parsing
	CommandName      string            // The command specified (e.g., "generate", "config set")
	Variables        []string          // Positional arguments provided after the command name
	Flags            map[string]string // Flags with values (e.g., --templates=a,b -> map["templates"]="a,b")
	BoolFlags        map[string]bool   // Boolean flags (e.g., --keep -> map["keep"]=true)
	HelpRequested    bool              // If a help flag (--help, -h) was detected
	VersionRequested bool              // If a version flag (--version) was detected
	DebugRequested   bool              // If --debug was passed
	VerboseRequested bool              // If --verbose was passed
	Errors           []error           // Any parsing errors encountered
}

// Debug toggle controlled by --debug. Other packages can query this.
var debugEnabled bool

// SetDebugEnabled enables or disables debug logging globally for this process.
func SetDebugEnabled(on bool) { debugEnabled = on }

// IsDebugEnabled reports whether debug logging is currently enabled.
func IsDebugEnabled() bool { return debugEnabled }

// Verbose toggle controlled by --verbose for informational (non-debug) output.
var verboseEnabled bool

// SetVerboseEnabled enables or disables verbose informational output globally.
func SetVerboseEnabled(on bool) { verboseEnabled = on }

// IsVerboseEnabled reports whether verbose mode is currently enabled.
func IsVerboseEnabled() bool { return verboseEnabled }

// globalFlags are recognised anywhere and never reach Flags/BoolFlags.
var globalFlags = map[string]bool{"--version": true, "--debug": true, "--verbose": true}

// ParseCommandLineArgs processes the raw command-line arguments using a command registry checker.
func ParseCommandLineArgs(rawArgs []string, registry CommandRegistryChecker) CommandArgs {
	parsed := CommandArgs{
		RawArgs:   rawArgs,
		Variables: make([]string, 0),
		Flags:     make(map[string]string),
		BoolFlags: make(map[string]bool),
		Errors:    make([]error, 0),
	}

	// --- Stage 0: pull out global flags, stop at "--" ---
	args := make([]string, 0, len(rawArgs))
	var trailing []string
	for i, arg := range rawArgs {
		if arg == "--" {
			trailing = rawArgs[i+1:]
			break
		}
		switch arg {
		case "--help", "-h":
			parsed.HelpRequested = true
		case "--version":
			parsed.VersionRequested = true
		case "--debug":
			parsed.DebugRequested = true
		case "--verbose":
			parsed.VerboseRequested = true
		}
		if globalFlags[arg] {
			continue
		}
		args = append(args, arg)
	}

	// --- Stage 1: find the command name (two words win over one) ---
	first, second := -1, -1
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if first == -1 {
			first = i
			continue
		}
		second = i
		break
	}

	// Only the leading words can name a command; "generate config set" keeps config/set as variables.
	if first == 0 {
		if second == 1 && registry.CommandExists(args[0]+" "+args[1]) {
			parsed.CommandName = args[0] + " " + args[1]
			args = args[2:]
		} else if registry.CommandExists(args[0]) {
			parsed.CommandName = args[0]
			args = args[1:]
		}
	}

	// --- Stage 2: flags and variables ---
	takesValue := func(name string) bool {
		return registry.FlagTakesValue(parsed.CommandName, name)
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
			if name == "" {
				parsed.Errors = append(parsed.Errors, fmt.Errorf("invalid flag format: %s", arg))
				continue
			}
			if !hasValue && takesValue(name) {
				if i+1 >= len(args) {
					parsed.Errors = append(parsed.Errors, fmt.Errorf("flag --%s expects a value", name))
					continue
				}
				value, hasValue = args[i+1], true
				i++
			}
			parsed.setFlag("--", name, value, hasValue)

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			chars := []rune(strings.TrimPrefix(arg, "-"))
			for j, c := range chars {
				name := string(c)
				last := j == len(chars)-1
				if last && takesValue(name) {
					if i+1 >= len(args) {
						parsed.Errors = append(parsed.Errors, fmt.Errorf("flag -%s expects a value", name))
						continue
					}
					parsed.setFlag("-", name, args[i+1], true)
					i++
					continue
				}
				parsed.setFlag("-", name, "", false)
			}

		case arg == "-":
			parsed.Errors = append(parsed.Errors, fmt.Errorf("invalid flag format: %s", arg))

		default:
			parsed.Variables = append(parsed.Variables, arg)
		}
	}

	parsed.Variables = append(parsed.Variables, trailing...)
	return parsed
}

// setFlag records a flag, flagging repeats as errors.
func (p *CommandArgs) setFlag(prefix, name, value string, hasValue bool) {
	if hasValue {
		if _, exists := p.Flags[name]; exists {
			p.Errors = append(p.Errors, fmt.Errorf("flag provided more than once: %s%s", prefix, name))
		}
		p.Flags[name] = value
		return
	}
	if _, exists := p.BoolFlags[name]; exists {
		p.Errors = append(p.Errors, fmt.Errorf("boolean flag provided more than once: %s%s", prefix, name))
	}
	p.BoolFlags[name] = true
}

// Flag returns the value of a flag by long or short name.
func (p CommandArgs) Flag(long, short string) (string, bool) {
	if v, ok := p.Flags[long]; ok {
		return v, true
	}
	if short != "" {
		if v, ok := p.Flags[short]; ok {
			return v, true
		}
	}
	return "", false
}

// Bool reports whether a boolean flag was given by long or short name.
func (p CommandArgs) Bool(long, short string) bool {
	return p.BoolFlags[long] || (short != "" && p.BoolFlags[short])
}
