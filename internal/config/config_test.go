package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launch/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".json"), []byte(body), 0644))
	return dir
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"logLevel": "debug",
		"seed": 1234,
		"physics": { "gravity": 3.7, "damping": "time-scaled" },
		"window": { "width": 1024, "title": "Mars" },
		"projectile": { "originX": 60 },
		"controls": { "defaultAngle": 30 }
	}`)

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", LogLevel())
	assert.Equal(t, uint64(1234), Seed())

	cfg, err := Game()
	require.NoError(t, err)
	assert.Equal(t, 3.7, cfg.Gravity)
	assert.Equal(t, game.DampingTimeScaled, cfg.Damping)
	assert.Equal(t, 1024.0, cfg.WindowWidth)
	assert.Equal(t, 600.0, cfg.WindowHeight)
	assert.Equal(t, "Mars", cfg.Title)
	assert.Equal(t, r2.Point{X: 60, Y: 450}, cfg.LaunchOrigin)
	assert.Equal(t, 30.0, cfg.DefaultAngle)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{}`)
	require.NoError(t, Load(dir))

	assert.Equal(t, "info", LogLevel())
	assert.Equal(t, uint64(0), Seed())

	cfg, err := Game()
	require.NoError(t, err)
	assert.Equal(t, game.DefaultConfig(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load("/nonexistent/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")

	var notFound viper.ConfigFileNotFoundError
	assert.True(t, errors.As(err, &notFound))

	// Defaults are still usable
	cfg, err := Game()
	require.NoError(t, err)
	assert.Equal(t, game.DefaultConfig(), cfg)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{ "physics": `)
	err := Load(dir)
	require.Error(t, err)

	var notFound viper.ConfigFileNotFoundError
	assert.False(t, errors.As(err, &notFound))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("LAUNCH_PHYSICS_GRAVITY", "1.62")
	t.Setenv("LAUNCH_LOGLEVEL", "warn")

	dir := writeConfig(t, `{ "physics": { "gravity": 3.7 } }`)
	require.NoError(t, Load(dir))

	cfg, err := Game()
	require.NoError(t, err)
	assert.Equal(t, 1.62, cfg.Gravity)
	assert.Equal(t, "warn", LogLevel())
}

func TestGame_RejectsInvalid(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{ "physics": { "restitution": 2 }, "target": { "width": 0 } }`)
	require.NoError(t, Load(dir))

	_, err := Game()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "restitution")
	assert.Contains(t, err.Error(), "target size")
}
