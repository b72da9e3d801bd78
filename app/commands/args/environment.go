package args

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app/cli"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/ignore"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/project"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/utils"
	config "github.com/Guerrilla-Interactive/nextgen-ignore/internal"
)

// environment bundles what commands need: config, the generator service and
// the generation history.
type environment struct {
	Config   config.Config
	Service  *ignore.Service
	Registry *project.ProjectRegistry // nil when the history could not be loaded
}

// loadEnvironment reads the config and wires the generator to the catalog API.
func loadEnvironment() (*environment, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	svc := ignore.NewService(SettingsFromConfig(cfg), ignore.OSFileSystem{}, nil)
	svc.Fetcher = utils.NewCatalogClient(svc.Settings.APIURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	cli.Debugf("catalog API: %s", svc.Settings.APIURL)

	env := &environment{Config: cfg, Service: svc}
	if registry, err := project.LoadProjectRegistry(); err != nil {
		cli.Warnf("could not load generation history: %v", err)
	} else {
		env.Registry = registry
	}
	return env, nil
}

// SettingsFromConfig maps the stored config onto generator settings.
// Empty values keep the generator defaults.
func SettingsFromConfig(cfg config.Config) ignore.Settings {
	return ignore.Settings{
		APIURL:          cfg.APIURL,
		Banner:          cfg.Banner,
		UserRulesMarker: cfg.UserRulesMarker,
		AlwaysSelected:  cfg.AlwaysSelected,
		FileName:        cfg.FileName,
	}
}

// resolveOutputPath turns the optional path argument into an absolute file
// path. No argument means fileName in the working directory; a directory
// argument means fileName inside it.
func resolveOutputPath(arg, fileName string) (string, error) {
	if strings.TrimSpace(arg) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not determine current directory: %w", err)
		}
		return filepath.Join(wd, fileName), nil
	}
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		arg = filepath.Join(arg, fileName)
	}
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", arg, err)
	}
	return abs, nil
}

// firstVariable returns the first positional argument or "".
func firstVariable(args cli.CommandArgs) string {
	if len(args.Variables) > 0 {
		return args.Variables[0]
	}
	return ""
}

// splitNames parses a comma separated list of template names.
func splitNames(value string) []string {
	var names []string
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// dirOf returns the directory holding path.
func dirOf(path string) string {
	return filepath.Dir(path)
}

// SettingsFromConfigOrDefault loads the config for commands that do not talk
// to the catalog. A broken config falls back to defaults with a warning.
func SettingsFromConfigOrDefault() ignore.Settings {
	cfg, err := config.LoadConfig()
	if err != nil {
		cli.Warnf("%v; using defaults", err)
	}
	return ignore.NewService(SettingsFromConfig(cfg), nil, nil).Settings
}
