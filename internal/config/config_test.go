package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHasSaneDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1024, cfg.Simulator.DefaultShots)
	assert.Equal(t, 40, cfg.Render.CellPixels)
}

func TestLoadFallsBackToDefaultsWhenNoConfigFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default().Simulator.DefaultShots, cfg.Simulator.DefaultShots)
}

func TestLoadHonorsEnvironmentOverride(t *testing.T) {
	t.Setenv("QSIM_SIMULATOR_DEFAULT_SHOTS", "2048")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 2048, cfg.Simulator.DefaultShots)
}

