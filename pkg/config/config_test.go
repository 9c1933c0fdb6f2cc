package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrolm/retrolm/pkg/core/errs"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "retrolm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weights_dir: /srv/retrolm/weights\ntemperature: 0.7\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/retrolm/weights", cfg.WeightsDir)
	assert.Equal(t, float32(0.7), cfg.Temperature)
	assert.Equal(t, Default().MaxTokens, cfg.MaxTokens)
	assert.Equal(t, Default().WallClockSeed, cfg.WallClockSeed)
}

func TestLoadMalformedFileFailsWithValueError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "retrolm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid: yaml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.ValueError, e.Kind)
}
