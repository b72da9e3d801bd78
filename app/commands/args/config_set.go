package args

import (
	"fmt"
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
	config "github.com/Guerrilla-Interactive/nextgen-ignore/internal"
)

// ConfigSetCommand defines the command to set a configuration value.
type ConfigSetCommand struct{}

func init() {
	RegisterCommand(&ConfigSetCommand{})
}

func (c *ConfigSetCommand) Name() string {
	return "config set"
}

func (c *ConfigSetCommand) Description() string {
	return "Sets a configuration key. An empty value restores the default."
}

func (c *ConfigSetCommand) Usage() string {
	return "<key> <value>"
}

func (c *ConfigSetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "key", Description: "The configuration key to set.", Required: true},
		{Name: "value", Description: "The value to assign; lists are comma separated.", Required: false},
	}
}

func (c *ConfigSetCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *ConfigSetCommand) Execute(args cli.CommandArgs) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	// Read the file directly so env overrides are not persisted.
	cfg, err := config.LoadConfigFrom(path)
	if err != nil {
		return err
	}

	key := args.Variables[0]
	value := strings.Join(args.Variables[1:], " ")
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := config.SaveConfigTo(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s = %q\n", key, value)
	return nil
}
