// Package prefs persists the handful of user preferences the app keeps,
// language and sound, as a small YAML file under the user config
// directory.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Prefs struct {
	Language string `yaml:"language"`
	Sound    bool   `yaml:"sound"`
}

func Default() Prefs {
	return Prefs{Language: "zh", Sound: false}
}

// Path returns the preference file location, e.g.
// ~/.config/breeze/prefs.yaml on Linux.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("prefs: no user config dir: %w", err)
	}
	return filepath.Join(dir, "breeze", "prefs.yaml"), nil
}

// Load reads preferences from path. Any failure (missing file, bad YAML)
// falls back to defaults: a lost preference is never worth failing
// startup over.
func Load(path string) Prefs {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default()
	}
	return p
}

// Save writes preferences to path, creating parent directories as needed.
func Save(path string, p Prefs) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("prefs: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("prefs: create dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("prefs: write: %w", err)
	}
	return nil
}
