package args

import (
	"context"
	"fmt"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
)

// ListCommand prints the template catalog with the pre-selected entries first.
type ListCommand struct{}

func init() {
	RegisterCommand(&ListCommand{})
}

func (c *ListCommand) Name() string {
	return "list"
}

func (c *ListCommand) Description() string {
	return "Lists catalog templates, pre-selected ones first."
}

func (c *ListCommand) Usage() string {
	return "[path] [--keep] [--picked]"
}

func (c *ListCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "path", Description: "Ignore file used for detection (default: ./.gitignore).", Required: false},
	}
}

func (c *ListCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "keep", ShortName: "k", Description: "Pre-select from the existing file instead of detecting."},
		{Name: "picked", ShortName: "p", Description: "Only print the pre-selected templates."},
	}
}

func (c *ListCommand) Execute(args cli.CommandArgs) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	svc := env.Service

	path, err := resolveOutputPath(firstVariable(args), svc.Settings.FileName)
	if err != nil {
		return err
	}

	entries, err := svc.List(context.Background(), path, args.Bool("keep", "k"))
	if err != nil {
		return explainFetchError(svc, err)
	}

	onlyPicked := args.Bool("picked", "p")
	for _, e := range entries {
		switch {
		case e.Picked:
			fmt.Fprintln(stdout, app.PickedStyle.Render("[x] "+e.Name))
		case !onlyPicked:
			fmt.Fprintln(stdout, "[ ] "+e.Name)
		}
	}
	cli.Infof("%d templates", len(entries))
	return nil
}
