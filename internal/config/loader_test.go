package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReefEmbeddedDefault(t *testing.T) {
	// No custom path and no local configs dir: the embedded YAML applies
	cfg, err := LoadReef("")
	require.NoError(t, err)

	assert.Equal(t, DefaultReefConfig(), cfg,
		"embedded YAML must match the hardcoded defaults")
}

func TestLoadReefCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := []byte(`
world:
  width: 800
  height: 600
player:
  size: 20
  speed: 7
  max_health: 4
`)
	require.NoError(t, os.WriteFile(path, custom, 0o600))

	cfg, err := LoadReef(path)
	require.NoError(t, err)

	assert.Equal(t, 800.0, cfg.World.Width)
	assert.Equal(t, 600.0, cfg.World.Height)
	assert.Equal(t, 7.0, cfg.Player.Speed)
	assert.Equal(t, 4, cfg.Player.MaxHealth)
}

func TestLoadReefMissingCustomPath(t *testing.T) {
	_, err := LoadReef(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err, "explicit --config paths must not fall back silently")
}

func TestLoadReefInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world: ["), 0o600))

	_, err := LoadReef(path)
	assert.Error(t, err)
}

func TestApplyReefPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		health      int
		spawnChance int
		sharkSpeed  float64
	}{
		{DifficultyEasy, 5, 200, 3},
		{DifficultyNormal, 3, 300, 3},
		{DifficultyHard, 2, 400, 4},
		{DifficultyPreset(""), 3, 300, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultReefConfig()
			ApplyReefPreset(&cfg, tc.preset)

			assert.Equal(t, tc.health, cfg.Player.MaxHealth)
			assert.Equal(t, tc.spawnChance, cfg.PowerUp.SpawnChance)
			assert.Equal(t, tc.sharkSpeed, cfg.Enemies.SharkSpeed)
		})
	}
}
