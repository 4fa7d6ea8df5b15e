// Package config loads the CLI configuration from defaults, an optional YAML
// file and BRANDSOCIAL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// BRANDSOCIAL_OUTPUT_FORMAT=json.
const EnvPrefix = "BRANDSOCIAL"

// Config is the complete application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Output  OutputConfig  `mapstructure:"output"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Steps   StepsConfig   `mapstructure:"steps"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Pretty switches to the human readable console writer.
	Pretty bool `mapstructure:"pretty"`
}

// OutputConfig controls where the completed record goes.
type OutputConfig struct {
	// Format is log, json or yaml.
	Format string `mapstructure:"format"`
	// Path writes the record to a file; stdout when empty and Format is not log.
	Path string `mapstructure:"path"`
}

// ThemeConfig selects the HTML theme.
type ThemeConfig struct {
	Name    string `mapstructure:"name"`
	Variant string `mapstructure:"variant"`
}

// StepsConfig points at an optional step catalogue override.
type StepsConfig struct {
	File string `mapstructure:"file"`
}

// MetricsConfig enables the Prometheus textfile export.
type MetricsConfig struct {
	// File receives the session counters in text exposition format when the
	// command exits. Disabled when empty.
	File string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
		Output: OutputConfig{
			Format: "log",
		},
		Theme: ThemeConfig{
			Name:    "brandsocial",
			Variant: "light",
		},
	}
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.pretty", defaults.Log.Pretty)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.path", defaults.Output.Path)
	v.SetDefault("theme.name", defaults.Theme.Name)
	v.SetDefault("theme.variant", defaults.Theme.Variant)
	v.SetDefault("steps.file", defaults.Steps.File)
	v.SetDefault("metrics.file", defaults.Metrics.File)
}

// New returns a viper instance with defaults and env overrides wired.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadEnvFile exports the KEY=VALUE pairs of a dotenv file into the process
// environment so BRANDSOCIAL_* entries reach viper. Variables already set are
// left untouched. A missing file is ignored unless required is true.
func LoadEnvFile(path string, required bool) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load env file %s: %w", path, err)
	}
	return nil
}

// Load reads the optional config file into v and unmarshals the result. A
// missing file at an explicit path is an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = New()
	}
	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case "log", "json", "yaml", "yml":
	default:
		return fmt.Errorf("config: output.format %q must be one of log, json, yaml", c.Output.Format)
	}
	if strings.TrimSpace(c.Theme.Name) == "" {
		return errors.New("config: theme.name is required")
	}
	return nil
}
