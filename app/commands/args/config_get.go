package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
	config "github.com/Guerrilla-Interactive/nextgen-ignore/internal"
)

// ConfigGetCommand defines the command to get a configuration value.
type ConfigGetCommand struct{}

func init() {
	RegisterCommand(&ConfigGetCommand{})
}

func (c *ConfigGetCommand) Name() string {
	return "config get"
}

func (c *ConfigGetCommand) Description() string {
	return "Gets the value of a specific configuration key."
}

func (c *ConfigGetCommand) Usage() string {
	return "<key>"
}

func (c *ConfigGetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "key", Description: "The configuration key to get.", Required: true},
	}
}

func (c *ConfigGetCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *ConfigGetCommand) Execute(args cli.CommandArgs) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	value, err := cfg.Get(args.Variables[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, value)
	return nil
}
