// Package config provides Viper-based configuration loading for the arena.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a zap sink: "stderr", "stdout" or a file path.
	Output string `mapstructure:"output"`
}

// GameConfig holds content locations and play settings.
type GameConfig struct {
	// Seed makes every random draw reproducible; 0 uses crypto/rand.
	Seed uint64 `mapstructure:"seed"`
	// NPCsDir holds *.yaml enemy templates overriding the built-ins. Empty skips loading.
	NPCsDir string `mapstructure:"npcs_dir"`
	// CampaignFile is a YAML campaign. Empty uses the built-in campaign.
	CampaignFile string `mapstructure:"campaign_file"`
	// ScriptsDir holds *.lua enemy policy scripts. Empty disables scripting.
	ScriptsDir string `mapstructure:"scripts_dir"`
	// ScriptInstructionLimit caps Lua opcodes per hook call; 0 uses the default.
	ScriptInstructionLimit int `mapstructure:"script_instruction_limit"`
	// Color enables ANSI colour in console output.
	Color bool `mapstructure:"color"`
}

// PlayerConfig is the starting stat block and inventory for the player.
type PlayerConfig struct {
	MaxHP          int `mapstructure:"max_hp"`
	MaxMP          int `mapstructure:"max_mp"`
	Defense        int `mapstructure:"defense"`
	Strength       int `mapstructure:"strength"`
	Speed          int `mapstructure:"speed"`
	HealingPotions int `mapstructure:"healing_potions"`
	ManaPotions    int `mapstructure:"mana_potions"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
	Player  PlayerConfig  `mapstructure:"player"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validatePlayer(c.Player); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	switch l.Output {
	case "":
		errs = append(errs, "logging.output must not be empty")
	case "stdout":
		errs = append(errs, "logging.output must not be stdout, which the game console uses")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	if g.ScriptInstructionLimit < 0 {
		return fmt.Errorf("game.script_instruction_limit must be >= 0, got %d", g.ScriptInstructionLimit)
	}
	return nil
}

func validatePlayer(p PlayerConfig) error {
	var errs []string
	if p.MaxHP < 1 {
		errs = append(errs, fmt.Sprintf("player.max_hp must be >= 1, got %d", p.MaxHP))
	}
	for name, v := range map[string]int{
		"player.max_mp":          p.MaxMP,
		"player.defense":         p.Defense,
		"player.strength":        p.Strength,
		"player.speed":           p.Speed,
		"player.healing_potions": p.HealingPotions,
		"player.mana_potions":    p.ManaPotions,
	} {
		if v < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0, got %d", name, v))
		}
	}
	if len(errs) > 0 {
		sort.Strings(errs)
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with ARENA_ prefix
	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance holding only the default values.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.npcs_dir", "")
	v.SetDefault("game.campaign_file", "")
	v.SetDefault("game.scripts_dir", "")
	v.SetDefault("game.script_instruction_limit", 0)
	v.SetDefault("game.color", true)

	v.SetDefault("player.max_hp", 200)
	v.SetDefault("player.max_mp", 140)
	v.SetDefault("player.defense", 10)
	v.SetDefault("player.strength", 20)
	v.SetDefault("player.speed", 15)
	v.SetDefault("player.healing_potions", 7)
	v.SetDefault("player.mana_potions", 5)
}
