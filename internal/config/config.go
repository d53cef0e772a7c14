package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the saved rendering choices.
type Config struct {
	Preset  string `json:"preset"`
	Mode    string `json:"mode"`  // rgb | 256
	Theme   string `json:"theme"` // dark | light
	Align   string `json:"align"` // horizontal | vertical | custom
	Backend string `json:"backend"`

	// CustomColors maps slot ("1".."6") to an index into the deduplicated
	// preset palette; only used with the custom alignment.
	CustomColors map[string]int `json:"custom_colors,omitempty"`

	// Args are passed through to the backend on every run.
	Args []string `json:"args,omitempty"`

	Onboarded bool `json:"onboarded"`
}

// Default returns the configuration used before the user saves one.
func Default() *Config {
	return &Config{
		Preset:  "rainbow",
		Mode:    "rgb",
		Theme:   "dark",
		Align:   "horizontal",
		Backend: "neofetch",
	}
}

// configDir returns ~/.tintfetch, creating it if needed.
func configDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(homeDir, ".tintfetch")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load loads the configuration from disk, falling back to defaults when no
// config file exists yet.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// IsFirstLaunch reports whether the user has gone through preset selection.
func IsFirstLaunch() (bool, error) {
	cfg, err := Load()
	if err != nil {
		return true, nil
	}
	return !cfg.Onboarded, nil
}

// GetEnvVarName returns the environment variable name for a config key.
func GetEnvVarName(key string) string {
	return "TINTFETCH_" + strings.ToUpper(key)
}

// GetEnv retrieves an environment variable with the tintfetch prefix.
func GetEnv(key string) string {
	return os.Getenv(GetEnvVarName(key))
}
