package args

import (
	"fmt"
	"strings"
	"time"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/project"
)

// HistoryCommand lists previously generated ignore files.
type HistoryCommand struct{}

func init() {
	RegisterCommand(&HistoryCommand{})
}

func (c *HistoryCommand) Name() string {
	return "history"
}

func (c *HistoryCommand) Description() string {
	return "Lists ignore files generated on this machine, most recent first."
}

func (c *HistoryCommand) Usage() string {
	return ""
}

func (c *HistoryCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *HistoryCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *HistoryCommand) Execute(args cli.CommandArgs) error {
	registry, err := project.LoadProjectRegistry()
	if err != nil {
		return err
	}

	records := registry.Recent()
	if len(records) == 0 {
		fmt.Fprintln(stdout, app.HelpStyle.Render("No ignore files generated yet."))
		return nil
	}
	for _, r := range records {
		when := time.Unix(r.LastGenerated, 0).Format("Jan 2, 2006 at 3:04 PM")
		fmt.Fprintf(stdout, "%s\n  %s  ×%d  %s\n", app.PathStyle.Render(r.Path), when, r.GenerateCount, strings.Join(r.Templates, ", "))
	}
	return nil
}
