package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breeze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"particles:\n  particle_count: 60\n  base_hue: 300\nbreath:\n  inhale_ms: 5000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Particles.ParticleCount)
	assert.Equal(t, 300.0, cfg.Particles.BaseHue)
	assert.Equal(t, 5000.0, cfg.Breath.InhaleMs)

	// Untouched options keep their defaults.
	assert.Equal(t, Default().Particles.MinRadius, cfg.Particles.MinRadius)
	assert.Equal(t, Default().Breath.ExhaleMs, cfg.Breath.ExhaleMs)
}

func TestLoadMalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breeze.yaml")
	require.NoError(t, os.WriteFile(path, []byte("particles: [oops"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidOptionsFailLoudly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breeze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"particles:\n  min_radius: 64\n  max_radius: 14\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err, "inverted radius bounds must fail at startup, not per frame")
}
