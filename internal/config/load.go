package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"breeze/internal/breath"
	"breeze/internal/particles"
)

// DefaultPath is looked up relative to the working directory; a missing
// file just means defaults.
const DefaultPath = "breeze.yaml"

// Config is the tunable part of the app, overridable from a YAML file.
type Config struct {
	Particles particles.Options `yaml:"particles"`
	Breath    breath.Timings    `yaml:"breath"`
}

func Default() Config {
	return Config{
		Particles: particles.DefaultOptions(),
		Breath:    breath.DefaultTimings(),
	}
}

// Load merges YAML overrides from path over the defaults and validates
// the result. A missing file is not an error; a malformed or invalid one
// is, and fails startup rather than a frame later.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Particles.Validate(); err != nil {
		return err
	}
	return c.Breath.Validate()
}
