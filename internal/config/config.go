// Package config holds the settings of the command line driver. Settings are
// read from a YAML file and every field has a default, so the file is
// optional.
package config

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the content of a configuration file.
type Config struct {
	// Variable is what calculus commands differentiate by.
	Variable string `yaml:"variable"`
	// Point is where Taylor series are expanded and limits are taken.
	Point float64 `yaml:"point"`
	// Terms is the number of Taylor coefficients.
	Terms       int    `yaml:"terms"`
	MaxLHopital int    `yaml:"max_lhopital"`
	LogLevel    string `yaml:"log_level"`
}

var (
	ErrEmptyVariable  = errors.New("variable must not be empty")
	ErrInvalidTerms   = errors.New("terms must be positive")
	ErrInvalidLHDepth = errors.New("max_lhopital must be positive")
)

// Default returns the settings used when there is no configuration file.
func Default() *Config {
	return &Config{
		Variable:    "x",
		Point:       0,
		Terms:       4,
		MaxLHopital: 10,
		LogLevel:    "info",
	}
}

// Load reads the file at path on top of the defaults. Fields missing from the
// file keep their default value. The result is validated.
func Load(path string) (*Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(bytes)
}

// Parse decodes a YAML document on top of the defaults and validates it.
func Parse(bytes []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(bytes, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings can be used.
func (cfg *Config) Validate() error {
	if cfg.Variable == "" {
		return ErrEmptyVariable
	}
	if cfg.Terms < 1 {
		return ErrInvalidTerms
	}
	if cfg.MaxLHopital < 1 {
		return ErrInvalidLHDepth
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the logrus level named by LogLevel.
func (cfg *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
