package args

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/ignore"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/project"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/screens"
	"github.com/atotto/clipboard"
)

// GenerateCommand creates or refreshes an ignore file.
type GenerateCommand struct{}

func init() {
	RegisterCommand(&GenerateCommand{})
}

func (c *GenerateCommand) Name() string {
	return "generate"
}

func (c *GenerateCommand) Description() string {
	return "Generates the ignore file from detected and chosen templates, keeping custom rules."
}

func (c *GenerateCommand) Usage() string {
	return "[path] [--keep] [--override] [--templates a,b] [--yes] [--stdout] [--clipboard]"
}

func (c *GenerateCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "path", Description: "Output file or directory (default: ./.gitignore).", Required: false},
	}
}

func (c *GenerateCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "keep", ShortName: "k", Description: "Pre-select the templates recorded in the existing file instead of detecting."},
		{Name: "override", ShortName: "o", Description: "Drop the custom rules of the existing file."},
		{Name: "templates", ShortName: "t", Description: "Comma separated templates to use; skips the chooser.", HasValue: true},
		{Name: "yes", ShortName: "y", Description: "Accept the pre-selected templates without asking."},
		{Name: "stdout", Description: "Print the result instead of writing the file."},
		{Name: "clipboard", ShortName: "c", Description: "Also copy the result to the clipboard."},
	}
}

// choosePicker is swapped in tests; it runs the interactive chooser.
var choosePicker = screens.Run

func (c *GenerateCommand) Execute(args cli.CommandArgs) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	svc := env.Service

	path, err := resolveOutputPath(firstVariable(args), svc.Settings.FileName)
	if err != nil {
		return err
	}

	keep := args.Bool("keep", "k")
	override := args.Bool("override", "o")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var names []string
	if value, ok := args.Flag("templates", "t"); ok {
		names = splitNames(value)
	} else if args.Bool("yes", "y") {
		entries, err := svc.List(ctx, path, keep)
		if err != nil {
			return explainFetchError(svc, err)
		}
		names = ignore.PickedNames(entries)
	} else {
		fileExists := svc.FS.Exists(path)
		m := screens.NewModel(path, fileExists, !keep && !override)
		m.KeepCurrent = keep
		m.Override = override
		m.Platform, _ = project.PlatformTemplate(svc.GOOS)
		m.RecognizedPkgs = project.Detect(dirOf(path))

		result, err := choosePicker(ctx, svc, m)
		if err != nil {
			return err
		}
		if result.Err != nil {
			return explainFetchError(svc, result.Err)
		}
		if result.Aborted {
			fmt.Fprintln(stdout, app.HelpStyle.Render("Aborted, nothing written."))
			return nil
		}
		names = result.Chosen
		override = result.Override
	}

	if len(names) == 0 {
		return fmt.Errorf("no templates selected; pass --templates or pick at least one")
	}

	output, err := buildOutput(ctx, svc, path, names, override)
	if err != nil {
		return err
	}

	if args.Bool("stdout", "") {
		fmt.Fprint(stdout, output)
	} else {
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(stdout, "%s %s (%s)\n", app.PickedStyle.Render("Wrote"), path, strings.Join(names, ", "))
	}

	if args.Bool("clipboard", "c") {
		if err := clipboard.WriteAll(output); err != nil {
			cli.Warnf("could not copy to clipboard: %v", err)
		} else {
			cli.Infof("Copied %d bytes to the clipboard.", len(output))
		}
	}

	if env.Registry != nil && !args.Bool("stdout", "") {
		env.Registry.RecordGeneration(path, names, override)
		if err := env.Registry.Save(); err != nil {
			cli.Warnf("could not save generation history: %v", err)
		}
	}
	return nil
}

// buildOutput fetches the body for names and assembles the final file text.
func buildOutput(ctx context.Context, svc *ignore.Service, path string, names []string, override bool) (string, error) {
	body, err := svc.Content(ctx, names)
	if err != nil {
		return "", explainFetchError(svc, err)
	}
	return svc.Generate(path, body, override), nil
}

// explainFetchError adds the API location to catalog failures.
func explainFetchError(svc *ignore.Service, err error) error {
	if errors.Is(err, ignore.ErrNoData) {
		return fmt.Errorf("could not fetch templates from %s: %w", svc.Settings.APIURL, err)
	}
	return err
}
