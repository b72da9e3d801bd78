package args

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
)

// ArgDef is an alias for cli.ArgDef
type ArgDef = cli.ArgDef

// FlagDef is an alias for cli.FlagDef
type FlagDef = cli.FlagDef

// Command represents a CLI command that can be executed directly.
type Command interface {
	// Name returns the command's name (e.g., "generate", "config set").
	Name() string
	// Description returns a brief help description for the command.
	Description() string
	// Execute runs the command logic with the parsed arguments.
	Execute(args cli.CommandArgs) error
	// Usage returns a brief usage string (e.g., "[path] [options]").
	Usage() string
	// ExpectedArgs returns definitions for expected positional arguments.
	ExpectedArgs() []ArgDef
	// ExpectedFlags returns definitions for expected flags.
	ExpectedFlags() []FlagDef
}

// commandRegistry holds all registered CLI commands, keyed by name.
var commandRegistry = make(map[string]Command)

// stdout is where commands print their results (swapped in tests).
var stdout io.Writer = os.Stdout

// RegisterCommand adds a command to the registry. It is called from init()
// in each command's file.
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

// GetAllCommands returns all registered commands sorted by name.
func GetAllCommands() []Command {
	cmds := make([]Command, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// RegistryChecker implements cli.CommandRegistryChecker on top of the registry.
type RegistryChecker struct{}

// CommandExists reports whether name is a registered command.
func (RegistryChecker) CommandExists(name string) bool { return CommandExists(name) }

// FlagTakesValue looks the flag up in the command's ExpectedFlags.
func (RegistryChecker) FlagTakesValue(command, flag string) bool {
	cmd, found := GetCommand(command)
	if !found {
		return false
	}
	for _, f := range cmd.ExpectedFlags() {
		if f.Name == flag || (f.ShortName != "" && f.ShortName == flag) {
			return f.HasValue
		}
	}
	return false
}

// Execute runs the named command with parsed arguments.
func Execute(args cli.CommandArgs) error {
	cmd, found := GetCommand(args.CommandName)
	if !found {
		return fmt.Errorf("unknown command %q", args.CommandName)
	}
	if err := validateArgs(cmd, args); err != nil {
		return err
	}
	return cmd.Execute(args)
}

// validateArgs checks required arguments and flags, and rejects unknown flags.
func validateArgs(cmd Command, args cli.CommandArgs) error {
	required := 0
	for _, a := range cmd.ExpectedArgs() {
		if a.Required {
			required++
		}
	}
	if len(args.Variables) < required {
		return fmt.Errorf("%s: expected at least %d argument(s), got %d (usage: ngi %s %s)",
			cmd.Name(), required, len(args.Variables), cmd.Name(), cmd.Usage())
	}

	known := map[string]bool{"help": true, "h": true}
	for _, f := range cmd.ExpectedFlags() {
		known[f.Name] = true
		if f.ShortName != "" {
			known[f.ShortName] = true
		}
		if f.Required {
			if _, ok := args.Flag(f.Name, f.ShortName); !ok {
				return fmt.Errorf("%s: missing required flag --%s", cmd.Name(), f.Name)
			}
		}
	}
	for name := range args.Flags {
		if !known[name] {
			return fmt.Errorf("%s: unknown flag %s", cmd.Name(), flagLabel(name))
		}
	}
	for name := range args.BoolFlags {
		if !known[name] {
			return fmt.Errorf("%s: unknown flag %s", cmd.Name(), flagLabel(name))
		}
	}
	return nil
}

func flagLabel(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}
