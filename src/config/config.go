// Package config loads application configuration from an optional
// hexchat.yaml (working directory or ~/.hexchat/) with HEXCHAT_* environment
// overrides. Every key has a built-in default, so the app runs with no
// config file at all.
package config

import (
	"errors"
	"strings"
	"time"

	"hexchat/src/models"

	"github.com/spf13/viper"
)

// Config is the whole application's configuration.
type Config struct {
	Chat ChatConfig `mapstructure:"chat"`
	Log  LogConfig  `mapstructure:"log"`
}

// ChatConfig tunes the assistant core.
type ChatConfig struct {
	FreeLimit   int           `mapstructure:"free_limit"`
	ReplyDelay  time.Duration `mapstructure:"reply_delay"`
	MaxInputLen int           `mapstructure:"max_input_len"`
}

// LogConfig tunes the file logger. The TUI owns stdout, so logs always go to
// a file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// Load reads hexchat.yaml if present and returns the merged configuration.
// A missing file is fine; a malformed one is an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("hexchat")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.hexchat")

	v.SetDefault("chat.free_limit", 5)
	v.SetDefault("chat.reply_delay", 2*time.Second)
	v.SetDefault("chat.max_input_len", 500)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "hexchat.log")

	v.SetEnvPrefix("hexchat")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, &models.ConfigError{Message: "reading config file", Err: err}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, &models.ConfigError{Message: "parsing config", Err: err}
	}
	if cfg.Chat.FreeLimit < 0 {
		return Config{}, &models.ConfigError{Message: "chat.free_limit must not be negative"}
	}
	if cfg.Chat.ReplyDelay < 0 {
		return Config{}, &models.ConfigError{Message: "chat.reply_delay must not be negative"}
	}
	return cfg, nil
}
