// Package config loads server settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"colonists/meta"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server Server `yaml:"server" envPrefix:"SERVER_"`
	Log    Log    `yaml:"log" envPrefix:"LOG_"`
	Store  Store  `yaml:"store" envPrefix:"STORE_"`
	Game   Game   `yaml:"game" envPrefix:"GAME_"`
}

type Server struct {
	Addr string `yaml:"addr" env:"ADDR"`
}

type Log struct {
	Level string `yaml:"level" env:"LEVEL"`
	// Console switches from JSON lines to human readable output.
	Console bool `yaml:"console" env:"CONSOLE"`
}

type Store struct {
	// Driver is one of memory, sqlite or file.
	Driver string `yaml:"driver" env:"DRIVER"`
	// DSN is the database path for sqlite and the directory for file.
	DSN string `yaml:"dsn" env:"DSN"`
}

type Game struct {
	PointsToWin int `yaml:"points_to_win" env:"POINTS_TO_WIN"`
	// Seed fixes dice and card draws. Zero picks a random seed.
	Seed uint64 `yaml:"seed" env:"SEED"`
}

func Default() Config {
	return Config{
		Server: Server{Addr: meta.SERVER_ADDR},
		Log:    Log{Level: meta.LOG_LEVEL},
		Store:  Store{Driver: meta.STORE_DRIVER},
	}
}

// Load reads path over the defaults and applies COLONISTS_* variables on
// top. A missing file is not an error; an empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "COLONISTS_"}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
