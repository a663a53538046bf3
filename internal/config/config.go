// Package config loads the command line configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings shared by all commands.
type Config struct {
	HeaderRatio float64 `mapstructure:"header_ratio"`
	FooterRatio float64 `mapstructure:"footer_ratio"`
	DivideRatio float64 `mapstructure:"divide_ratio"`
	Normalize   bool    `mapstructure:"normalize"`
	Strict      bool    `mapstructure:"strict"`
	Output      string  `mapstructure:"output"`
	LogLevel    string  `mapstructure:"log_level"`
	LogFormat   string  `mapstructure:"log_format"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		HeaderRatio: 0.0,
		FooterRatio: 1.0,
		DivideRatio: 0.0,
		Output:      "yaml",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("header_ratio", defaults.HeaderRatio)
	v.SetDefault("footer_ratio", defaults.FooterRatio)
	v.SetDefault("divide_ratio", defaults.DivideRatio)
	v.SetDefault("normalize", defaults.Normalize)
	v.SetDefault("strict", defaults.Strict)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)

	// Environment variables with PDFTABEXTRACT_ prefix
	v.SetEnvPrefix("PDFTABEXTRACT")
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file into v and returns the result.
// Without cfgFile, config.yaml is searched in . and $HOME/.pdftabextract.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.pdftabextract")
	}

	// Try to read config file (not required)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ratios and enumerated settings.
func (c *Config) Validate() error {
	for name, r := range map[string]float64{
		"header_ratio": c.HeaderRatio,
		"footer_ratio": c.FooterRatio,
		"divide_ratio": c.DivideRatio,
	} {
		if math.IsNaN(r) || r < 0 || r > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %v", name, r)
		}
	}
	if c.DivideRatio == 1 {
		return fmt.Errorf("divide_ratio must be below 1")
	}
	switch c.Output {
	case "yaml", "json":
	default:
		return fmt.Errorf("unknown output format: %s", c.Output)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", c.LogFormat)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("unknown log level: %s", c.LogLevel)
	}
	return level, nil
}

// Logger builds the logger described by the configuration, writing to w.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
