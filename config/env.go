// Package config loads the game settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Game holds the settings of a terminal session.
type Game struct {
	Seed       string   `env:"BLUFF_SEED"`
	PlayerName string   `env:"BLUFF_PLAYER_NAME" envDefault:"Human"`
	BotNames   []string `env:"BLUFF_BOT_NAMES" envDefault:"Bot1,Bot2,Bot3" envSeparator:","`
	Autoplay   bool     `env:"BLUFF_AUTOPLAY" envDefault:"false"`
	HandSize   int      `env:"BLUFF_HAND_SIZE" envDefault:"5"`
	LogLevel   string   `env:"BLUFF_LOG_LEVEL" envDefault:"info"`
	History    bool     `env:"BLUFF_HISTORY" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the game settings.
func Load() (Game, error) {
	var cfg Game
	if err := ParseEnv(&cfg); err != nil {
		return Game{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Game{}, err
	}
	return cfg, nil
}

// Validate checks the settings the environment cannot express.
func (c Game) Validate() error {
	if strings.TrimSpace(c.PlayerName) == "" {
		return fmt.Errorf("BLUFF_PLAYER_NAME must not be empty")
	}
	if len(c.BotNames) == 0 {
		return fmt.Errorf("BLUFF_BOT_NAMES must name at least one bot")
	}
	seen := map[string]bool{c.PlayerName: true}
	for _, n := range c.BotNames {
		if strings.TrimSpace(n) == "" {
			return fmt.Errorf("BLUFF_BOT_NAMES contains an empty name")
		}
		if seen[n] {
			return fmt.Errorf("duplicate player name %q", n)
		}
		seen[n] = true
	}
	if c.HandSize < 1 {
		return fmt.Errorf("BLUFF_HAND_SIZE must be positive, got %d", c.HandSize)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured slog level.
func (c Game) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("BLUFF_LOG_LEVEL: %w", err)
	}
	return l, nil
}
