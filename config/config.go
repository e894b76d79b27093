// Package config loads host settings from an optional key=value file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"io"
	"os"
	"time"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config holds everything a host needs before the first frame.
//
//	LOG_LEVEL=debug
//	PREFAB_DIR=prefabs
type Config struct {
	LogLevel   string  `config:"LOG_LEVEL"`
	LogPretty  bool    `config:"LOG_PRETTY"`
	Scale      float64 `config:"SCALE"`
	Fullscreen bool    `config:"FULLSCREEN"`

	PrefabDir string `config:"PREFAB_DIR"`
	LevelDir  string `config:"LEVEL_DIR"`
	AssetDir  string `config:"ASSET_DIR"`
	Watch     bool   `config:"WATCH"`

	// HoldFrames is how long a terminal key press counts as held.
	HoldFrames int    `config:"HOLD_FRAMES"`
	Profile    string `config:"PROFILE"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:   "info",
		LogPretty:  true,
		Scale:      1,
		PrefabDir:  "prefabs",
		LevelDir:   "levels",
		AssetDir:   "assets",
		HoldFrames: 8,
	}
}

// Load reads path (if it exists) and then the environment on top of the
// defaults. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	builder := jlconfig.FromEnv()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			builder = jlconfig.From(path).FromEnv()
		} else if !errors.Is(err, os.ErrNotExist) {
			return cfg, eris.Wrapf(err, "config: stat %s", path)
		}
	}
	if err := builder.To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "config: load")
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.HoldFrames < 1 {
		cfg.HoldFrames = 1
	}
	return cfg, nil
}

// Level parses LogLevel, falling back to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}

// NewLogger builds the host logger writing to out.
func (c Config) NewLogger(out io.Writer) zerolog.Logger {
	if c.LogPretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(c.Level()).With().Timestamp().Logger()
}
