package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestConfigSetGet(t *testing.T) {
	testCases := []struct {
		key, value, want string
		wantErr          bool
	}{
		{key: "api_url", value: "https://example.test/api/", want: "https://example.test/api"},
		{key: "banner", value: "  Managed by ngi  ", want: "Managed by ngi"},
		{key: "user_rules_marker", value: "Local rules", want: "Local rules"},
		{key: "always_selected", value: "visualstudiocode, jetbrains,,", want: "visualstudiocode,jetbrains"},
		{key: "file_name", value: ".dockerignore", want: ".dockerignore"},
		{key: "timeout_seconds", value: "30", want: "30"},
		{key: "timeout_seconds", value: "-1", wantErr: true},
		{key: "timeout_seconds", value: "soon", wantErr: true},
		{key: "colour", value: "red", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			var cfg Config
			err := cfg.Set(tc.key, tc.value)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Set(%q, %q) succeeded, want error", tc.key, tc.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q, %q): %v", tc.key, tc.value, err)
			}
			got, err := cfg.Get(tc.key)
			if err != nil {
				t.Fatalf("Get(%q): %v", tc.key, err)
			}
			if got != tc.want {
				t.Errorf("Get(%q) = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}

func TestConfigSetAlwaysSelectedReplaces(t *testing.T) {
	cfg := Config{AlwaysSelected: []string{"visualstudiocode", "vim"}}
	if err := cfg.Set("always_selected", ""); err != nil {
		t.Fatal(err)
	}
	if cfg.AlwaysSelected != nil {
		t.Errorf("AlwaysSelected = %v, want nil", cfg.AlwaysSelected)
	}
}

func TestKeysMatchGet(t *testing.T) {
	var cfg Config
	for _, key := range Keys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%q): %v", key, err)
		}
	}
	if _, err := cfg.Get("nope"); err == nil {
		t.Error("Get(nope) succeeded")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NGI_CONFIG_DIR", dir)
	t.Setenv("NGI_API_URL", "")

	want := Config{
		APIURL:         "https://example.test/api",
		Banner:         "Managed by ngi",
		AlwaysSelected: []string{"visualstudiocode", "jetbrains"},
		TimeoutSeconds: 5,
	}
	if err := SaveConfig(want); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, configFileName))
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if !strings.Contains(string(data), `banner = "Managed by ngi"`) {
		t.Errorf("saved config missing banner:\n%s", data)
	}
	if strings.Contains(string(data), "file_name") {
		t.Errorf("empty fields should be omitted:\n%s", data)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadConfig = %+v, want %+v", got, want)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("NGI_CONFIG_DIR", filepath.Join(t.TempDir(), "absent"))
	t.Setenv("NGI_API_URL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !reflect.DeepEqual(cfg, Config{}) {
		t.Errorf("LoadConfig = %+v, want zero Config", cfg)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NGI_CONFIG_DIR", dir)
	if err := SaveConfigTo(filepath.Join(dir, configFileName), Config{APIURL: "https://file.test/api"}); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NGI_API_URL", "https://env.test/api/")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.APIURL != "https://env.test/api" {
		t.Errorf("APIURL = %q, want the environment value", cfg.APIURL)
	}

	fromFile, err := LoadConfigFrom(filepath.Join(dir, configFileName))
	if err != nil {
		t.Fatal(err)
	}
	if fromFile.APIURL != "https://file.test/api" {
		t.Errorf("LoadConfigFrom applied the environment override: %q", fromFile.APIURL)
	}
}

func TestLoadConfigCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte("banner = [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigFrom(path); err == nil {
		t.Error("expected a decode error")
	}
}
