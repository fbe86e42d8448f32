package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	mu.Lock()
	defer mu.Unlock()
	cfg = nil
	v = nil
}

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
game:
  player_a:
    name: Ada
  player_b:
    name: Babbage
  ai:
    seed: 42
    announce: false
log:
  level: debug
  format: json
ui:
  color: true
  max_invalid_inputs: 3
`
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	reset()
	require.NoError(t, Init(configFile))

	c := Get()
	assert.Equal(t, "Ada", c.Game.PlayerA.Name)
	assert.Equal(t, "Babbage", c.Game.PlayerB.Name)
	assert.Equal(t, uint64(42), c.Game.AI.Seed)
	assert.False(t, c.Game.AI.Announce)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, zerolog.DebugLevel, c.LogLevel())
	assert.True(t, c.UI.Color)
	assert.Equal(t, 3, c.UI.MaxInvalidInputs)
	assert.Equal(t, configFile, ConfigFilePath())
}

func TestInitWithDefaults(t *testing.T) {
	reset()

	require.NoError(t, Init("/non/existent/path/config.yaml"))

	c := Get()
	assert.Equal(t, "Player A", c.Game.PlayerA.Name)
	assert.Equal(t, "Player B", c.Game.PlayerB.Name)
	assert.Zero(t, c.Game.AI.Seed)
	assert.True(t, c.Game.AI.Announce)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, zerolog.WarnLevel, c.LogLevel())
	assert.Equal(t, "console", c.Log.Format)
	assert.False(t, c.Log.Events)
	assert.False(t, c.UI.Color)
	assert.Zero(t, c.UI.MaxInvalidInputs)
}

func TestEnvironmentVariables(t *testing.T) {
	reset()

	t.Setenv("AYO_LOG_LEVEL", "debug")
	t.Setenv("AYO_GAME_PLAYER_B_NAME", "Computer")
	t.Setenv("AYO_UI_COLOR", "true")

	require.NoError(t, Init(""))

	c := Get()
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "Computer", c.Game.PlayerB.Name)
	assert.True(t, c.UI.Color)
}

func TestInitRejectsInvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"same names", "game:\n  player_a:\n    name: Sam\n  player_b:\n    name: sam\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"bad format", "log:\n  format: xml\n"},
		{"negative retries", "ui:\n  max_invalid_inputs: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.content), 0644))

			reset()
			assert.Error(t, Init(configFile))
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Game: GameConfig{PlayerA: PlayerConfig{Name: "A"}, PlayerB: PlayerConfig{Name: "B"}},
			Log:  LogConfig{Level: "info", Format: "console"},
		}
	}

	require.NoError(t, Validate(valid()))

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty name", func(c *Config) { c.Game.PlayerA.Name = "  " }},
		{"duplicate names", func(c *Config) { c.Game.PlayerB.Name = "a" }},
		{"empty level", func(c *Config) { c.Log.Level = "" }},
		{"unknown level", func(c *Config) { c.Log.Level = "verbose" }},
		{"unknown format", func(c *Config) { c.Log.Format = "logfmt" }},
		{"negative retries", func(c *Config) { c.UI.MaxInvalidInputs = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, Validate(c))
		})
	}
}

func TestSet(t *testing.T) {
	reset()
	require.NoError(t, Init(""))

	require.NoError(t, Set("game.player_a.name", "Ada"))
	require.NoError(t, Set("ui.max_invalid_inputs", 5))

	c := Get()
	assert.Equal(t, "Ada", c.Game.PlayerA.Name)
	assert.Equal(t, 5, c.UI.MaxInvalidInputs)
}

func TestSetRejectsInvalidValue(t *testing.T) {
	reset()
	require.NoError(t, Init(""))

	assert.Error(t, Set("log.format", "xml"))
	assert.Error(t, Set("ui.max_invalid_inputs", -1))
	assert.Equal(t, "console", Get().Log.Format, "rejected values are not applied")
	assert.Zero(t, Get().UI.MaxInvalidInputs)
}

func TestGetReturnsSnapshot(t *testing.T) {
	reset()
	require.NoError(t, Init(""))

	c := Get()
	c.UI.Color = true
	c.Game.PlayerA.Name = "Mutated"

	assert.False(t, Get().UI.Color)
	assert.Equal(t, "Player A", Get().Game.PlayerA.Name)
}

func TestLoadEnvironmentConfig(t *testing.T) {
	tmpDir := t.TempDir()

	baseConfig := filepath.Join(tmpDir, "config.yaml")
	baseContent := `
game:
  player_a:
    name: Ada
log:
  level: info
`
	require.NoError(t, os.WriteFile(baseConfig, []byte(baseContent), 0644))

	envContent := `
log:
  level: error
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.prod.yaml"), []byte(envContent), 0644))

	testChdir(t, tmpDir)

	reset()
	require.NoError(t, Init(baseConfig))
	require.NoError(t, LoadEnvironmentConfig("prod"))

	c := Get()
	assert.Equal(t, "Ada", c.Game.PlayerA.Name) // kept
	assert.Equal(t, "error", c.Log.Level)       // overridden
	assert.Equal(t, "json", c.Log.Format)       // new value

	assert.NoError(t, LoadEnvironmentConfig("staging"), "missing overlay is ignored")
	assert.NoError(t, LoadEnvironmentConfig(""))
}

func TestWatchConfig(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("log:\n  level: warn\n"), 0644))

	reset()
	require.NoError(t, Init(configFile))

	changed := make(chan string, 16)
	WatchConfig(func(c *Config) { changed <- c.Log.Level })

	require.NoError(t, os.WriteFile(configFile, []byte("log:\n  level: debug\n"), 0644))

	// A write can surface as several events; wait for the final content.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case level := <-changed:
			if level == "debug" {
				return
			}
		case <-timeout:
			t.Skip("no file change notification delivered on this platform")
		}
	}
}

func TestWatchConfig_ReadersDuringReload(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("ui:\n  color: false\n"), 0644))

	reset()
	require.NoError(t, Init(configFile))

	reloads := make(chan bool, 64)
	WatchConfig(func(c *Config) {
		select {
		case reloads <- c.UI.Color:
		default:
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 20; i++ {
			content := fmt.Sprintf("ui:\n  color: %t\nlog:\n  level: %s\n", i%2 == 0, []string{"warn", "info"}[i%2])
			if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()

	// Run with -race: reads here overlap swaps made on the watcher goroutine.
	for reading := true; reading; {
		select {
		case <-done:
			reading = false
		default:
			c := Get()
			_ = c.UI.Color
			assert.Contains(t, []string{"warn", "info"}, c.Log.Level)
			_ = ConfigFilePath()
		}
	}

	select {
	case <-reloads:
	case <-time.After(5 * time.Second):
		t.Skip("no file change notification delivered on this platform")
	}
}
