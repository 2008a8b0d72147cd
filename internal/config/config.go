// Package config loads table configuration from an HCL file, with
// sensible defaults when the file is absent.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/felttable/holdem/internal/bot"
)

// Config represents the complete table configuration
type Config struct {
	Table  TableSettings  `hcl:"table,block"`
	Player PlayerSettings `hcl:"player,block"`
	Bots   BotSettings    `hcl:"bots,block"`
}

// TableSettings contains stakes and stack sizes
type TableSettings struct {
	SmallBlind    int `hcl:"small_blind,optional"`
	StartingStack int `hcl:"starting_stack,optional"`
}

// PlayerSettings contains the human player's settings
type PlayerSettings struct {
	Name string `hcl:"name,optional"`
}

// BotSettings contains the opponents' tuning
type BotSettings struct {
	Difficulty string   `hcl:"difficulty,optional"`
	Personas   []string `hcl:"personas,optional"`
	Trials     int      `hcl:"trials,optional"`
}

// Default returns the out-of-the-box configuration: a $1000 stack at
// 25/50 stakes against a medium table with one bot of each persona
func Default() *Config {
	return &Config{
		Table: TableSettings{
			SmallBlind:    25,
			StartingStack: 1000,
		},
		Player: PlayerSettings{
			Name: "Player",
		},
		Bots: BotSettings{
			Difficulty: string(bot.Medium),
			Personas:   []string{"aggressive", "tight", "loose"},
			Trials:     bot.DefaultTrials,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; a present file has its zero values backfilled from them.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if config.Table.SmallBlind == 0 {
		config.Table.SmallBlind = defaults.Table.SmallBlind
	}
	if config.Table.StartingStack == 0 {
		config.Table.StartingStack = defaults.Table.StartingStack
	}
	if config.Player.Name == "" {
		config.Player.Name = defaults.Player.Name
	}
	if config.Bots.Difficulty == "" {
		config.Bots.Difficulty = defaults.Bots.Difficulty
	}
	if len(config.Bots.Personas) == 0 {
		config.Bots.Personas = defaults.Bots.Personas
	}
	if config.Bots.Trials == 0 {
		config.Bots.Trials = defaults.Bots.Trials
	}
	return &config, nil
}

// Validate validates the table configuration
func (c *Config) Validate() error {
	if c.Table.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive, got %d", c.Table.SmallBlind)
	}
	if c.Table.StartingStack <= 0 {
		return fmt.Errorf("starting stack must be positive, got %d", c.Table.StartingStack)
	}
	if c.Table.StartingStack < c.Table.SmallBlind*2 {
		return fmt.Errorf("starting stack %d cannot cover the big blind %d",
			c.Table.StartingStack, c.Table.SmallBlind*2)
	}
	if _, err := bot.ParseDifficulty(c.Bots.Difficulty); err != nil {
		return err
	}
	for _, p := range c.Bots.Personas {
		if _, err := bot.ParsePersona(p); err != nil {
			return err
		}
	}
	if c.Bots.Trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", c.Bots.Trials)
	}
	return nil
}

// BotProfiles resolves the configured personas into bot profiles. The
// config is assumed validated.
func (c *Config) BotProfiles() []bot.Profile {
	difficulty, _ := bot.ParseDifficulty(c.Bots.Difficulty)
	profiles := make([]bot.Profile, 0, len(c.Bots.Personas))
	for _, p := range c.Bots.Personas {
		persona, _ := bot.ParsePersona(p)
		profiles = append(profiles, bot.Profile{Difficulty: difficulty, Persona: persona})
	}
	return profiles
}
