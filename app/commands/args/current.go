package args

import (
	"fmt"
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
)

// CurrentCommand prints what an existing ignore file was generated from.
type CurrentCommand struct{}

func init() {
	RegisterCommand(&CurrentCommand{})
}

func (c *CurrentCommand) Name() string {
	return "current"
}

func (c *CurrentCommand) Description() string {
	return "Shows the templates recorded in an existing ignore file."
}

func (c *CurrentCommand) Usage() string {
	return "[path]"
}

func (c *CurrentCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "path", Description: "Ignore file to inspect (default: ./.gitignore).", Required: false},
	}
}

func (c *CurrentCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *CurrentCommand) Execute(args cli.CommandArgs) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	svc := env.Service

	path, err := resolveOutputPath(firstVariable(args), svc.Settings.FileName)
	if err != nil {
		return err
	}

	names := svc.CurrentItems(path)
	if len(names) == 0 {
		fmt.Fprintln(stdout, app.HelpStyle.Render("No recorded templates in "+path))
	} else {
		fmt.Fprintln(stdout, strings.Join(names, "\n"))
	}

	if rules, ok := svc.UserRules(path); ok {
		lines := strings.Count(rules, "\n") + 1
		cli.Infof("%d line(s) of custom rules will be kept on update", lines)
	}
	return nil
}
