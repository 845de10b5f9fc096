package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable overrides, e.g. WORDICT_LOG_LEVEL.
const EnvPrefix = "WORDICT"

var (
	ErrInvalidWildcard = errors.New("wildcard must be exactly one character")
	ErrInvalidLogLevel = errors.New("unknown log level")
)

// Config holds all configuration for the application
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Log        LogConfig        `mapstructure:"log"`
	Query      QueryConfig      `mapstructure:"query"`
}

// DictionaryConfig holds word list related configuration
type DictionaryConfig struct {
	WordsFile string `mapstructure:"words_file"`
	Wildcard  string `mapstructure:"wildcard"`
	MinLength int    `mapstructure:"min_length"`
	Lowercase bool   `mapstructure:"lowercase"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// QueryConfig holds query related configuration
type QueryConfig struct {
	Limit int `mapstructure:"limit"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.words_file", "")
	v.SetDefault("dictionary.wildcard", ".")
	v.SetDefault("dictionary.min_length", 1)
	v.SetDefault("dictionary.lowercase", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	v.SetDefault("query.limit", 20)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Dictionary.Wildcard) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidWildcard, c.Dictionary.Wildcard)
	}
	if c.Dictionary.MinLength < 0 {
		return fmt.Errorf("invalid min length: %d", c.Dictionary.MinLength)
	}
	if c.Query.Limit <= 0 {
		return fmt.Errorf("invalid query limit: %d", c.Query.Limit)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// WildcardRune returns the configured wildcard as a rune. Call Validate first.
func (c *DictionaryConfig) WildcardRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Wildcard)
	return r
}

// ParseLevel returns the zerolog level for the configured level name
func (c *LogConfig) ParseLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil || c.Level == "" {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Level)
	}
	return level, nil
}
