package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	appDirName     = "nextgen-ignore"
	configFileName = "config.toml"
)

// ConfigDir returns the directory holding config.toml and the history file.
// NGI_CONFIG_DIR overrides it; otherwise the user config directory is used.
func ConfigDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("NGI_CONFIG_DIR")); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not find config directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// ConfigPath returns the path of config.toml.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// LoadConfig reads config.toml (or returns an empty Config if missing) and
// applies environment overrides.
func LoadConfig() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	cfg, err := LoadConfigFrom(path)
	if err != nil {
		return Config{}, err
	}
	if apiURL := strings.TrimSpace(os.Getenv("NGI_API_URL")); apiURL != "" {
		cfg.APIURL = strings.TrimRight(apiURL, "/")
	}
	return cfg, nil
}

// LoadConfigFrom reads the config file at path without environment overrides.
func LoadConfigFrom(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, nil
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to config.toml.
func SaveConfig(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveConfigTo(path, cfg)
}

// SaveConfigTo writes cfg to path, creating the parent directory.
func SaveConfigTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
