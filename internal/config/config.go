// Package config loads table and UI configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

// Config represents the complete configuration
type Config struct {
	Game     GameConfig    `hcl:"game,block"`
	Settings TableSettings `hcl:"settings,block"`
	UI       UIConfig      `hcl:"ui,block"`
}

// GameConfig contains table parameters
type GameConfig struct {
	Decks         int `hcl:"decks,optional"`
	StartingChips int `hcl:"starting_chips,optional"`
	SideBetAmount int `hcl:"side_bet_amount,optional"`
}

// TableSettings contains toggles the player can also flip in-game.
// Pointers distinguish an unset value from an explicit false.
type TableSettings struct {
	AutoStandOn21 *bool `hcl:"auto_stand_on_21,optional"`
	Hints         *bool `hcl:"hints,optional"`
	Sound         *bool `hcl:"sound,optional"`
	Animations    *bool `hcl:"animations,optional"`
}

// UIConfig contains user interface settings
type UIConfig struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFile   string `hcl:"log_file,optional"`
	StatsFile string `hcl:"stats_file,optional"`
	Theme     string `hcl:"theme,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Decks:         1,
			StartingChips: 1000,
			SideBetAmount: 5,
		},
		UI: UIConfig{
			LogLevel:  "warn",
			LogFile:   "blackjack.log",
			StatsFile: "blackjack-stats.json",
			Theme:     "default",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
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

	// Apply defaults for missing values
	defaults := Default()

	if config.Game.Decks == 0 {
		config.Game.Decks = defaults.Game.Decks
	}
	if config.Game.StartingChips == 0 {
		config.Game.StartingChips = defaults.Game.StartingChips
	}
	if config.Game.SideBetAmount == 0 {
		config.Game.SideBetAmount = defaults.Game.SideBetAmount
	}

	if config.UI.LogLevel == "" {
		config.UI.LogLevel = defaults.UI.LogLevel
	}
	if config.UI.LogFile == "" {
		config.UI.LogFile = defaults.UI.LogFile
	}
	if config.UI.StatsFile == "" {
		config.UI.StatsFile = defaults.UI.StatsFile
	}
	if config.UI.Theme == "" {
		config.UI.Theme = defaults.UI.Theme
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.Decks < deck.MinDecks || c.Game.Decks > deck.MaxDecks {
		return fmt.Errorf("decks must be between %d and %d", deck.MinDecks, deck.MaxDecks)
	}

	if c.Game.StartingChips <= 0 {
		return fmt.Errorf("starting chips must be positive")
	}

	if c.Game.SideBetAmount <= 0 {
		return fmt.Errorf("side bet amount must be positive")
	}

	if c.Game.SideBetAmount > c.Game.StartingChips {
		return fmt.Errorf("side bet amount cannot exceed starting chips")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validThemes := map[string]bool{
		"default": true,
		"dark":    true,
		"light":   true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	return nil
}

// EngineConfig returns the engine configuration this file describes.
func (c *Config) EngineConfig() game.Config {
	return game.Config{
		Decks:         c.Game.Decks,
		StartingChips: c.Game.StartingChips,
		SideBetAmount: c.Game.SideBetAmount,
	}
}

// GameSettings returns the engine settings, with unset toggles falling
// back to their defaults.
func (c *Config) GameSettings() *game.Settings {
	settings := game.DefaultSettings()
	if c.Settings.AutoStandOn21 != nil {
		settings.SetAutoStandOn21(*c.Settings.AutoStandOn21)
	}
	if c.Settings.Hints != nil {
		settings.SetHintsEnabled(*c.Settings.Hints)
	}
	if c.Settings.Sound != nil {
		settings.SetSoundEnabled(*c.Settings.Sound)
	}
	if c.Settings.Animations != nil {
		settings.SetAnimationsEnabled(*c.Settings.Animations)
	}
	return settings
}
