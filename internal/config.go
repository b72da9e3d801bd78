package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Config represents user settings stored in config.toml.
// Empty fields fall back to the generator defaults.
type Config struct {
	APIURL          string   `toml:"api_url,omitempty"`
	Banner          string   `toml:"banner,omitempty"`
	UserRulesMarker string   `toml:"user_rules_marker,omitempty"`
	AlwaysSelected  []string `toml:"always_selected,omitempty"`
	FileName        string   `toml:"file_name,omitempty"`
	TimeoutSeconds  int      `toml:"timeout_seconds,omitempty"`
}

// Keys lists the settable configuration keys, sorted.
func Keys() []string {
	keys := []string{"api_url", "banner", "user_rules_marker", "always_selected", "file_name", "timeout_seconds"}
	sort.Strings(keys)
	return keys
}

// Get returns the value of key rendered as a string.
func (c Config) Get(key string) (string, error) {
	switch key {
	case "api_url":
		return c.APIURL, nil
	case "banner":
		return c.Banner, nil
	case "user_rules_marker":
		return c.UserRulesMarker, nil
	case "always_selected":
		return strings.Join(c.AlwaysSelected, ","), nil
	case "file_name":
		return c.FileName, nil
	case "timeout_seconds":
		if c.TimeoutSeconds == 0 {
			return "", nil
		}
		return strconv.Itoa(c.TimeoutSeconds), nil
	}
	return "", fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
}

// Set parses value and stores it under key.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "api_url":
		c.APIURL = strings.TrimRight(value, "/")
	case "banner":
		c.Banner = value
	case "user_rules_marker":
		c.UserRulesMarker = value
	case "always_selected":
		c.AlwaysSelected = nil
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				c.AlwaysSelected = append(c.AlwaysSelected, name)
			}
		}
	case "file_name":
		c.FileName = value
	case "timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("timeout_seconds must be a non-negative integer, got %q", value)
		}
		c.TimeoutSeconds = n
	default:
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}
