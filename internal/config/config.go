package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Paths   PathsConfig   `toml:"paths"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	Width  int  `toml:"width"`
	Height int  `toml:"height"`
	Debug  bool `toml:"debug"`

	// Seed for the world's random source; 0 = seed from the clock.
	Seed int64 `toml:"seed"`

	// Turns to simulate; 0 = run until interrupted.
	Turns int `toml:"turns"`

	TickRate time.Duration `toml:"tick_rate"`
}

type PathsConfig struct {
	Weapons  string `toml:"weapons"`
	Scenario string `toml:"scenario"`
	Scripts  string `toml:"scripts"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			Width:    40,
			Height:   20,
			Turns:    0,
			TickRate: 300 * time.Millisecond,
		},
		Paths: PathsConfig{
			Weapons:  "data/weapons.yaml",
			Scenario: "data/scenario.yaml",
			Scripts:  "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
