package main

import (
	"fmt"
	"os"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
	commands "github.com/Guerrilla-Interactive/nextgen-ignore/app/commands/args"
)

// Version is set via linker flags during build.
var Version = "v0.3.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run parses arguments, dispatches to a command and returns the exit code.
func run(rawArgs []string) int {
	parsedArgs := cli.ParseCommandLineArgs(rawArgs, commands.RegistryChecker{})
	cli.SetDebugEnabled(parsedArgs.DebugRequested)
	cli.SetVerboseEnabled(parsedArgs.VerboseRequested)
	cli.Debugf("parsed arguments: command=%q variables=%v flags=%v bool=%v",
		parsedArgs.CommandName, parsedArgs.Variables, parsedArgs.Flags, parsedArgs.BoolFlags)

	if len(parsedArgs.Errors) > 0 {
		fmt.Fprintln(os.Stderr, "Error parsing arguments:")
		for _, err := range parsedArgs.Errors {
			fmt.Fprintf(os.Stderr, "  - %v\n", err)
		}
		return 1
	}

	// --version takes precedence over everything else.
	if parsedArgs.VersionRequested {
		fmt.Printf("nextgen-ignore %s\n", Version)
		return 0
	}

	if parsedArgs.CommandName == "" {
		if parsedArgs.HelpRequested {
			commands.WriteGeneralHelp(os.Stdout, Version)
			return 0
		}
		if len(parsedArgs.Variables) > 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", parsedArgs.Variables[0])
			fmt.Fprintln(os.Stderr, "Run `ngi --help` for usage.")
			return 1
		}
		// No command: interactive generation for the current directory.
		cli.Debugf("no command given, starting interactive mode")
		parsedArgs.CommandName = "generate"
	}

	if parsedArgs.HelpRequested {
		commands.WriteCommandHelp(os.Stdout, parsedArgs.CommandName, Version)
		return 0
	}

	if err := commands.Execute(parsedArgs); err != nil {
		fmt.Fprintln(os.Stderr, app.ErrorStyle.Render("Error:"), err)
		return 1
	}
	return 0
}
