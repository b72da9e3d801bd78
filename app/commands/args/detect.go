package args

import (
	"fmt"
	"os"
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/project"
)

// DetectCommand shows the signals used for fresh detection.
type DetectCommand struct{}

func init() {
	RegisterCommand(&DetectCommand{})
}

func (c *DetectCommand) Name() string {
	return "detect"
}

func (c *DetectCommand) Description() string {
	return "Shows the platform template and project tooling detected in a directory."
}

func (c *DetectCommand) Usage() string {
	return "[dir]"
}

func (c *DetectCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "dir", Description: "Directory to scan (default: current directory).", Required: false},
	}
}

func (c *DetectCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *DetectCommand) Execute(args cli.CommandArgs) error {
	dir := firstVariable(args)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("could not determine current directory: %w", err)
		}
		dir = wd
	}

	platform, ok := project.HostPlatformTemplate()
	if !ok {
		platform = "(none)"
	}
	tooling := project.Detect(dir)

	fmt.Fprintln(stdout, app.SubtitleStyle.Render("Directory: ")+app.PathStyle.Render(dir))
	fmt.Fprintln(stdout, app.SubtitleStyle.Render("Platform:  ")+platform)
	if len(tooling) == 0 {
		fmt.Fprintln(stdout, app.SubtitleStyle.Render("Tooling:   ")+"(none)")
	} else {
		fmt.Fprintln(stdout, app.SubtitleStyle.Render("Tooling:   ")+strings.Join(tooling, ", "))
	}
	return nil
}
