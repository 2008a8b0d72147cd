package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felttable/holdem/internal/bot"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFullFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
table {
  small_blind    = 10
  starting_stack = 500
}

player {
  name = "Dana"
}

bots {
  difficulty = "hard"
  personas   = ["tight", "tight", "loose"]
  trials     = 250
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10, cfg.Table.SmallBlind)
	assert.Equal(t, 500, cfg.Table.StartingStack)
	assert.Equal(t, "Dana", cfg.Player.Name)
	assert.Equal(t, "hard", cfg.Bots.Difficulty)
	assert.Equal(t, 250, cfg.Bots.Trials)

	profiles := cfg.BotProfiles()
	require.Len(t, profiles, 3)
	assert.Equal(t, bot.Hard, profiles[0].Difficulty)
	assert.Equal(t, bot.PersonaTight, profiles[0].Persona)
	assert.Equal(t, bot.PersonaLoose, profiles[2].Persona)
}

func TestLoadBackfillsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
table {
  small_blind = 5
}

player {}

bots {}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Table.SmallBlind)
	assert.Equal(t, 1000, cfg.Table.StartingStack)
	assert.Equal(t, "Player", cfg.Player.Name)
	assert.Equal(t, "medium", cfg.Bots.Difficulty)
	assert.Equal(t, []string{"aggressive", "tight", "loose"}, cfg.Bots.Personas)
	assert.Equal(t, bot.DefaultTrials, cfg.Bots.Trials)
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `table { small_blind = `)
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero small blind", func(c *Config) { c.Table.SmallBlind = 0 }},
		{"negative stack", func(c *Config) { c.Table.StartingStack = -1 }},
		{"stack below big blind", func(c *Config) { c.Table.StartingStack = c.Table.SmallBlind }},
		{"bad difficulty", func(c *Config) { c.Bots.Difficulty = "impossible" }},
		{"bad persona", func(c *Config) { c.Bots.Personas = []string{"maniac"} }},
		{"zero trials", func(c *Config) { c.Bots.Trials = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
