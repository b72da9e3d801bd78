package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
	config "github.com/Guerrilla-Interactive/nextgen-ignore/internal"
)

// ConfigListCommand prints every configuration key with its effective value.
type ConfigListCommand struct{}

func init() {
	RegisterCommand(&ConfigListCommand{})
}

func (c *ConfigListCommand) Name() string {
	return "config list"
}

func (c *ConfigListCommand) Description() string {
	return "Lists all configuration keys and their values."
}

func (c *ConfigListCommand) Usage() string {
	return ""
}

func (c *ConfigListCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *ConfigListCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *ConfigListCommand) Execute(args cli.CommandArgs) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if path, err := config.ConfigPath(); err == nil {
		fmt.Fprintln(stdout, app.PathStyle.Render(path))
	}
	for _, key := range config.Keys() {
		value, _ := cfg.Get(key)
		if value == "" {
			value = app.HelpStyle.Render("(default)")
		}
		fmt.Fprintf(stdout, "  %-18s %s\n", key, value)
	}
	return nil
}
