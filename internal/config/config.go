package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game GameConfig `mapstructure:"game"`
	Log  LogConfig  `mapstructure:"log"`
	UI   UIConfig   `mapstructure:"ui"`
}

// GameConfig holds game session configuration. Board size and seed count
// are fixed and deliberately absent.
type GameConfig struct {
	PlayerA PlayerConfig `mapstructure:"player_a"`
	PlayerB PlayerConfig `mapstructure:"player_b"`
	AI      AIConfig     `mapstructure:"ai"`
}

// PlayerConfig holds per-seat settings
type PlayerConfig struct {
	Name string `mapstructure:"name"`
}

// AIConfig holds computer opponent settings
type AIConfig struct {
	// Seed for the fallback RNG; 0 seeds from the clock
	Seed uint64 `mapstructure:"seed"`
	// Announce prints the AI's choice on stdout
	Announce bool `mapstructure:"announce"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// Events attaches a logger subscriber to the game event bus
	Events bool `mapstructure:"events"`
}

// UIConfig holds terminal settings
type UIConfig struct {
	Color bool `mapstructure:"color"`
	// MaxInvalidInputs bounds consecutive rejected entries per prompt; 0 is unlimited
	MaxInvalidInputs int `mapstructure:"max_invalid_inputs"`
}

var (
	// Global config instance. mu guards both; WatchConfig swaps cfg from the
	// fsnotify goroutine.
	mu  sync.RWMutex
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.player_a.name", "Player A")
	v.SetDefault("game.player_b.name", "Player B")
	v.SetDefault("game.ai.seed", 0)
	v.SetDefault("game.ai.announce", true)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.events", false)

	v.SetDefault("ui.color", false)
	v.SetDefault("ui.max_invalid_inputs", 0)
}

// Init initializes the configuration. An explicit configPath that does not
// exist is not an error; defaults and environment variables still apply.
func Init(configPath string) error {
	nv := viper.New()

	setViperDefaults(nv)

	if configPath != "" {
		nv.SetConfigFile(configPath)
	} else {
		nv.SetConfigName("config")
		nv.SetConfigType("yaml")
		nv.AddConfigPath(".")
		nv.AddConfigPath("./config")
		nv.AddConfigPath("$HOME/.ayo")
	}

	// AYO_LOG_LEVEL=debug overrides log.level
	nv.SetEnvPrefix("AYO")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	if err := nv.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	next := &Config{}
	if err := nv.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	mu.Lock()
	v, cfg = nv, next
	mu.Unlock()
	return nil
}

// Get returns a snapshot of the global config. Later reloads do not change
// a returned snapshot; call Get again to observe them.
func Get() *Config {
	mu.RLock()
	loaded := cfg != nil
	mu.RUnlock()
	if !loaded {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}

	mu.RLock()
	defer mu.RUnlock()
	snapshot := *cfg
	return &snapshot
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded configuration
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return err
	}
	cfg = next
	return nil
}

// Set allows runtime config updates. The value is applied only if the
// resulting config is valid.
func Set(key string, value interface{}) error {
	mu.Lock()
	defer mu.Unlock()

	v.Set(key, value)
	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return err
	}
	if err := Validate(next); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	cfg = next
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	mu.RLock()
	defer mu.RUnlock()
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file. onChange receives a
// snapshot of the reloaded configuration only when it passes validation.
func WatchConfig(onChange func(*Config)) {
	mu.RLock()
	watched := v
	mu.RUnlock()

	watched.OnConfigChange(func(e fsnotify.Event) {
		mu.Lock()
		if v != watched {
			// Init has replaced the instance this watcher belongs to
			mu.Unlock()
			return
		}
		next := &Config{}
		if err := watched.Unmarshal(next); err != nil || Validate(next) != nil {
			mu.Unlock()
			return
		}
		cfg = next
		snapshot := *next
		mu.Unlock()

		if onChange != nil {
			onChange(&snapshot)
		}
	})
	watched.WatchConfig()
}

// LogLevel returns the parsed log.level
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// Validate validates the configuration values
func Validate(c *Config) error {
	a, b := strings.TrimSpace(c.Game.PlayerA.Name), strings.TrimSpace(c.Game.PlayerB.Name)
	if a == "" || b == "" {
		return fmt.Errorf("game.player_a.name and game.player_b.name must be non-empty")
	}
	if strings.EqualFold(a, b) {
		return fmt.Errorf("player names must differ, both are %q", a)
	}

	if c.Log.Level == "" {
		return fmt.Errorf("log.level must be set")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}

	if c.UI.MaxInvalidInputs < 0 {
		return fmt.Errorf("ui.max_invalid_inputs must be non-negative")
	}

	return nil
}
