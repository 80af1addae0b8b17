// Package config loads casino configuration from an HCL file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
)

// Environment variable overrides, applied after the file is read
const (
	EnvBetMin  = "BLACKJACK_BET_MIN"
	EnvBetMax  = "BLACKJACK_BET_MAX"
	EnvDecks   = "BLACKJACK_DECKS"
	EnvPlayers = "BLACKJACK_PLAYERS"
)

// Config represents the complete casino configuration
type Config struct {
	Casino CasinoSettings `hcl:"casino,block"`
}

// CasinoSettings contains the table rules the casino operates with.
// BetMin and BetMax are inclusive bounds as a pit boss would quote them;
// the engine consumes the half-open range [BetMin, BetMax+1).
type CasinoSettings struct {
	BetMin   int    `hcl:"bet_min,optional"`
	BetMax   int    `hcl:"bet_max,optional"`
	Decks    int    `hcl:"decks,optional"`
	Players  int    `hcl:"players,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Default returns the default casino configuration
func Default() *Config {
	return &Config{
		Casino: CasinoSettings{
			BetMin:   5,
			BetMax:   500,
			Decks:    1,
			Players:  4,
			LogLevel: "info",
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults when
// the file does not exist, then applies BLACKJACK_* environment overrides.
// A .env file in the working directory is honored.
func Load(filename string) (*Config, error) {
	_ = godotenv.Load()

	config := Default()
	if _, err := os.Stat(filename); err == nil {
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}

		var parsed Config
		diags = gohcl.DecodeBody(file.Body, nil, &parsed)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
		config = &parsed
		applyDefaults(config)
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the settings make a playable table
func (c *Config) Validate() error {
	if c.Casino.BetMin < 1 {
		return fmt.Errorf("bet_min must be at least 1, got %d", c.Casino.BetMin)
	}
	if c.Casino.BetMax < c.Casino.BetMin {
		return fmt.Errorf("bet_max %d below bet_min %d", c.Casino.BetMax, c.Casino.BetMin)
	}
	if c.Casino.Decks < 1 {
		return fmt.Errorf("decks must be at least 1, got %d", c.Casino.Decks)
	}
	if c.Casino.Players < 1 {
		return fmt.Errorf("players must be at least 1, got %d", c.Casino.Players)
	}
	return nil
}

func applyDefaults(c *Config) {
	def := Default()
	if c.Casino.BetMin == 0 {
		c.Casino.BetMin = def.Casino.BetMin
	}
	if c.Casino.BetMax == 0 {
		c.Casino.BetMax = def.Casino.BetMax
	}
	if c.Casino.Decks == 0 {
		c.Casino.Decks = def.Casino.Decks
	}
	if c.Casino.Players == 0 {
		c.Casino.Players = def.Casino.Players
	}
	if c.Casino.LogLevel == "" {
		c.Casino.LogLevel = def.Casino.LogLevel
	}
}

func applyEnv(c *Config) error {
	for _, override := range []struct {
		env  string
		dest *int
	}{
		{EnvBetMin, &c.Casino.BetMin},
		{EnvBetMax, &c.Casino.BetMax},
		{EnvDecks, &c.Casino.Decks},
		{EnvPlayers, &c.Casino.Players},
	} {
		value := os.Getenv(override.env)
		if value == "" {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", override.env, value, err)
		}
		*override.dest = n
	}
	return nil
}
