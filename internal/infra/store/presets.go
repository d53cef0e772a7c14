// Package store persists user-defined gradient presets under ~/.tintfetch.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	storeDir    = ".tintfetch"
	presetsFile = "presets.yaml"
)

// presetsDoc is the on-disk shape:
//
//	presets:
//	  sunset: ["#ff5e5b", "#ffb85b", "#fff75b"]
type presetsDoc struct {
	Presets map[string][]string `yaml:"presets"`
}

func presetsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, storeDir, presetsFile), nil
}

// LoadUserPresets reads the user presets file. A missing file is not an
// error; it just means no custom presets yet.
func LoadUserPresets() (map[string][]string, error) {
	path, err := presetsPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]string{}, nil
		}
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	var doc presetsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse presets file: %w", err)
	}
	if doc.Presets == nil {
		doc.Presets = map[string][]string{}
	}
	return doc.Presets, nil
}

// SaveUserPreset adds or replaces one named preset and writes the file back.
func SaveUserPreset(name string, hexes []string) error {
	presets, err := LoadUserPresets()
	if err != nil {
		return err
	}
	presets[name] = hexes

	path, err := presetsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create presets directory: %w", err)
	}

	data, err := yaml.Marshal(presetsDoc{Presets: presets})
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
