package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
		Game: GameConfig{
			Seed:  42,
			Color: true,
		},
		Player: PlayerConfig{
			MaxHP:          200,
			MaxMP:          140,
			Defense:        10,
			Strength:       20,
			Speed:          15,
			HealingPotions: 7,
			ManaPotions:    5,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
  output: arena.log
game:
  seed: 1234
  npcs_dir: content/npcs
  campaign_file: content/campaign.yaml
  scripts_dir: content/scripts
  script_instruction_limit: 5000
  color: false
player:
  strength: 25
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "arena.log", cfg.Logging.Output)
	assert.Equal(t, uint64(1234), cfg.Game.Seed)
	assert.Equal(t, "content/npcs", cfg.Game.NPCsDir)
	assert.Equal(t, 5000, cfg.Game.ScriptInstructionLimit)
	assert.False(t, cfg.Game.Color)
	assert.Equal(t, 25, cfg.Player.Strength)
	assert.Equal(t, 200, cfg.Player.MaxHP, "unset keys keep defaults")
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level, "info lines would interleave with the game text")
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.True(t, cfg.Game.Color)
	assert.Equal(t, PlayerConfig{
		MaxHP: 200, MaxMP: 140, Defense: 10, Strength: 20, Speed: 15, HealingPotions: 7, ManaPotions: 5,
	}, cfg.Player)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ARENA_GAME_SEED", "99")
	t.Setenv("ARENA_PLAYER_SPEED", "30")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint64(99), cfg.Game.Seed)
	assert.Equal(t, 30, cfg.Player.Speed)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadFromViper_Defaults(t *testing.T) {
	cfg, err := LoadFromViper(Defaults())
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Player.HealingPotions)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Logging.Output = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Logging.Output = "stdout"
	assert.ErrorContains(t, cfg.Validate(), "game console")
}

func TestValidateScriptLimit(t *testing.T) {
	cfg := validConfig()
	cfg.Game.ScriptInstructionLimit = -1
	assert.Error(t, cfg.Validate())
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "loud"
	cfg.Player.MaxHP = 0
	cfg.Player.Speed = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "player.max_hp")
	assert.Contains(t, err.Error(), "player.speed")
}

func TestPropertyNonNegativePlayerStatsValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.Player.MaxHP = rapid.IntRange(1, 10000).Draw(t, "hp")
		cfg.Player.Strength = rapid.IntRange(0, 1000).Draw(t, "str")
		cfg.Player.ManaPotions = rapid.IntRange(0, 99).Draw(t, "mana_potions")
		if err := cfg.Validate(); err != nil {
			t.Fatalf("expected valid config, got %v", err)
		}
	})
}

func TestPropertyNegativePlayerStatInvalid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.Player.Defense = rapid.IntRange(-1000, -1).Draw(t, "defense")
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected error for defense %d", cfg.Player.Defense)
		}
	})
}
