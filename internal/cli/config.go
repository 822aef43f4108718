package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the defaults that can be set from the environment.
// Command-line flags override every field.
type Config struct {
	Num         int    `env:"DICE_NUM" envDefault:"1"`
	Sides       int    `env:"DICE_SIDES" envDefault:"6"`
	Rounds      int    `env:"DICE_ROUNDS" envDefault:"1"`
	Simulations int    `env:"DICE_SIMULATIONS" envDefault:"1000"`
	Seed        string `env:"DICE_SEED"`
	Verbose     bool   `env:"DICE_VERBOSE"`
}

// ParseConfig loads environment defaults into cfg.
func ParseConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config target is required")
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
