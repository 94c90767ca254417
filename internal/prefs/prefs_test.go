package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")

	want := Prefs{Language: "en", Sound: true}
	require.NoError(t, Save(path, want))

	assert.Equal(t, want, Load(path))
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, Default(), got)
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: [unclosed"), 0o644))

	assert.Equal(t, Default(), Load(path))
}

func TestDefaultIsChineseAndSilent(t *testing.T) {
	d := Default()
	assert.Equal(t, "zh", d.Language)
	assert.False(t, d.Sound)
}
