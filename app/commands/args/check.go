package args

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
	gitignore "github.com/sabhiram/go-gitignore"
)

// CheckCommand reports which paths a generated ignore file excludes.
type CheckCommand struct{}

func init() {
	RegisterCommand(&CheckCommand{})
}

func (c *CheckCommand) Name() string {
	return "check"
}

func (c *CheckCommand) Description() string {
	return "Reports whether paths are ignored by the ignore file."
}

func (c *CheckCommand) Usage() string {
	return "<paths...> [--file path]"
}

func (c *CheckCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "paths", Description: "Paths to test, relative to the current directory.", Required: true},
	}
}

func (c *CheckCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "file", ShortName: "f", Description: "Ignore file to test against (default: ./.gitignore).", HasValue: true},
	}
}

func (c *CheckCommand) Execute(args cli.CommandArgs) error {
	settings := SettingsFromConfigOrDefault()
	fileArg, _ := args.Flag("file", "f")
	file, err := resolveOutputPath(fileArg, settings.FileName)
	if err != nil {
		return err
	}

	matcher, err := gitignore.CompileIgnoreFile(file)
	if err != nil {
		return fmt.Errorf("could not read ignore file %s: %w", file, err)
	}

	root := filepath.Dir(file)
	for _, p := range args.Variables {
		rel, err := relativeTo(root, p)
		if err != nil {
			return err
		}
		if matcher.MatchesPath(rel) {
			fmt.Fprintf(stdout, "%s %s\n", app.HighlightStyle.Render("ignored"), p)
		} else {
			fmt.Fprintf(stdout, "%s    %s\n", app.ChoiceStyle.Render("kept"), p)
		}
	}
	return nil
}

// relativeTo expresses p relative to root in slash form, with a trailing
// slash for existing directories so directory-only patterns apply.
func relativeTo(root, p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", p, err)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("path %q is outside %s", p, root)
	}
	rel = filepath.ToSlash(rel)
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		rel += "/"
	}
	return rel, nil
}
