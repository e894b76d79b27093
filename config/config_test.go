package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=warn\nSCALE=2\nWATCH=true\n"), 0o644))
	t.Setenv("SCALE", "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 3.0, cfg.Scale)
	assert.True(t, cfg.Watch)
	assert.Equal(t, "prefabs", cfg.PrefabDir)
}

func TestLoadClampsValues(t *testing.T) {
	t.Setenv("SCALE", "-1")
	t.Setenv("HOLD_FRAMES", "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Scale)
	assert.Equal(t, 1, cfg.HoldFrames)
}

func TestLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.want, Config{LogLevel: c.in}.Level())
		})
	}
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Config{LogLevel: "warn"}.NewLogger(&buf)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
