package args

import (
	"fmt"
	"io"
)

// WriteGeneralHelp prints the top-level help message.
func WriteGeneralHelp(w io.Writer, version string) {
	fmt.Fprintf(w, "nextgen-ignore %s - ignore file generator\n", version)
	fmt.Fprintln(w, "Usage: ngi [command] [arguments...] [--flags...]")
	fmt.Fprintln(w, "Run without arguments to pick templates interactively for ./.gitignore.")

	fmt.Fprintln(w, "\nAvailable Commands:")
	for _, cmd := range GetAllCommands() {
		fmt.Fprintf(w, "  %-15s %s\n", cmd.Name(), cmd.Description())
	}
	fmt.Fprintln(w, "\nRun 'ngi [command] --help' for more information on a specific command.")
	fmt.Fprintln(w, "\nGlobal Flags: --help, -h, --version, --debug, --verbose")
}

// WriteCommandHelp prints detailed help for a specific command.
func WriteCommandHelp(w io.Writer, commandName, version string) {
	cmd, found := GetCommand(commandName)
	if !found {
		fmt.Fprintf(w, "Error: Unknown command '%s'\n", commandName)
		WriteGeneralHelp(w, version)
		return
	}

	fmt.Fprintf(w, "Usage: ngi %s %s\n\n", cmd.Name(), cmd.Usage())
	fmt.Fprintf(w, "  %s\n", cmd.Description())

	if args := cmd.ExpectedArgs(); len(args) > 0 {
		fmt.Fprintln(w, "\nArguments:")
		for _, arg := range args {
			required := ""
			if arg.Required {
				required = " (required)"
			}
			fmt.Fprintf(w, "  %-18s %s%s\n", arg.Name, arg.Description, required)
		}
	}

	if flags := cmd.ExpectedFlags(); len(flags) > 0 {
		fmt.Fprintln(w, "\nFlags:")
		for _, flag := range flags {
			usage := "--" + flag.Name
			if flag.ShortName != "" {
				usage += ", -" + flag.ShortName
			}
			if flag.HasValue {
				usage += " <value>"
			}
			required := ""
			if flag.Required {
				required = " (required)"
			}
			fmt.Fprintf(w, "  %-18s %s%s\n", usage, flag.Description, required)
		}
	}
	fmt.Fprintln(w, "\nGlobal Flags: --help, -h, --version, --debug, --verbose")
}
