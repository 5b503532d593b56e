// Package config provides Viper-based configuration loading for the flyin tool.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ParserConfig holds map validation policy.
type ParserConfig struct {
	// Redeclare is the zone redeclaration policy: "overwrite", "warn" or "reject".
	Redeclare string `mapstructure:"redeclare"`
	// CheckEndpoints requires every connection endpoint to be a declared zone.
	CheckEndpoints bool `mapstructure:"check_endpoints"`
	// CollectErrors reports every validation failure instead of the first.
	CollectErrors bool `mapstructure:"collect_errors"`
}

// OutputConfig holds result rendering settings.
type OutputConfig struct {
	// Format is one of "summary", "yaml" or "json".
	Format string `mapstructure:"format"`
	// NoColor disables colored error output.
	NoColor bool `mapstructure:"no_color"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Parser  ParserConfig  `mapstructure:"parser"`
	Output  OutputConfig  `mapstructure:"output"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateParser(c.Parser); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateOutput(c.Output); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateParser(p ParserConfig) error {
	validPolicies := map[string]bool{"overwrite": true, "warn": true, "reject": true}
	if !validPolicies[p.Redeclare] {
		return fmt.Errorf("parser.redeclare must be one of [overwrite, warn, reject], got %q", p.Redeclare)
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	validFormats := map[string]bool{"summary": true, "yaml": true, "json": true}
	if !validFormats[o.Format] {
		return fmt.Errorf("output.format must be one of [summary, yaml, json], got %q", o.Format)
	}
	return nil
}

// New returns a Viper instance with defaults and FLYIN_ environment
// overrides applied. If path is non-empty the file is read as well.
//
// Postcondition: Returns a configured Viper or a non-nil error if the file cannot be read.
func New(path string) (*viper.Viper, error) {
	v := viper.New()

	// Environment variable overrides with FLYIN_ prefix
	v.SetEnvPrefix("FLYIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	return v, nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v, err := New(path)
	if err != nil {
		return Config{}, err
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	v.SetDefault("parser.redeclare", "warn")
	v.SetDefault("parser.check_endpoints", true)
	v.SetDefault("parser.collect_errors", false)

	v.SetDefault("output.format", "summary")
	v.SetDefault("output.no_color", false)
}
