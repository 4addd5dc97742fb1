package config

import (
	"os"

	"jacknine-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Jacknine server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Room struct {
		CodeLength int `yaml:"codeLength" envconfig:"code_length"`
	}
	Game struct {
		RoundsPerGame     int `yaml:"roundsPerGame" envconfig:"rounds_per_game"`
		TrickDelaySeconds int `yaml:"trickDelaySeconds" envconfig:"trick_delay_seconds"`
		RoundDelaySeconds int `yaml:"roundDelaySeconds" envconfig:"round_delay_seconds"`
	}
}

// DefaultConfig returns the configuration with every value at its default
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Room.CodeLength = 6
	cfg.Game.RoundsPerGame = 1
	cfg.Game.TrickDelaySeconds = 2
	cfg.Game.RoundDelaySeconds = 3

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults and environment
// still apply.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("JACKNINE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("jacknine", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
