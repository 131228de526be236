// Package config loads runtime settings from defaults, an optional
// rocketboost.yaml, ROCKETBOOST_* environment variables and flag overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	FileName  = "rocketboost"
	EnvPrefix = "ROCKETBOOST"
)

type WindowSettings struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type AudioSettings struct {
	Volume float64 `mapstructure:"volume"`
}

type Settings struct {
	LogLevel   string         `mapstructure:"logLevel"`
	Debug      bool           `mapstructure:"debug"`
	StartLevel int            `mapstructure:"startLevel"`
	Window     WindowSettings `mapstructure:"window"`
	Audio      AudioSettings  `mapstructure:"audio"`
}

// Load sets defaults and reads rocketboost.yaml from configDir if present.
// A missing file is not an error; a malformed one is.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("debug", false)
	viper.SetDefault("startLevel", 0)
	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("audio.volume", 0.5)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.SetConfigType("yaml")
	if configDir != "" {
		viper.AddConfigPath(configDir)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Set overrides a value, e.g. from a command-line flag.
func Set(key string, value any) {
	viper.Set(key, value)
}

// Current returns the settings after defaults, file, environment and
// overrides have been applied.
func Current() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("config: unmarshal settings: %w", err)
	}
	if s.StartLevel < 0 {
		return s, fmt.Errorf("config: startLevel must be non-negative, got %d", s.StartLevel)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return s, fmt.Errorf("config: audio.volume must be within [0, 1], got %g", s.Audio.Volume)
	}
	return s, nil
}

// ConfigFile returns the file that was read, or "" when running on defaults.
func ConfigFile() string {
	return viper.ConfigFileUsed()
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
