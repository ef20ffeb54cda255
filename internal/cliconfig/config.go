package cliconfig

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/aoc/internal/answers"
)

// DefaultInputDir is where puzzle inputs are looked up when nothing else is configured.
const DefaultInputDir = "inputs"

// Config holds CLI configuration for aoc.
type Config struct {
	InputDir    string
	AnswersPath string

	Sample bool
	Record bool
	Verify bool
	Watch  bool

	Debounce time.Duration
	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		InputDir:    DefaultInputDir,
		AnswersPath: "", // Derived from InputDir during Validate
		Debounce:    100 * time.Millisecond,
		LogLevel:    "info",
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.InputDir == "" && !c.Sample {
		return fmt.Errorf("input-dir is required (or --sample)")
	}

	if c.AnswersPath == "" && c.InputDir != "" {
		c.AnswersPath = filepath.Join(c.InputDir, answers.DefaultFileName)
	}

	if c.Sample && c.Record {
		return fmt.Errorf("--record cannot be combined with --sample")
	}
	if c.Sample && c.Watch {
		return fmt.Errorf("--watch cannot be combined with --sample")
	}
	if (c.Record || c.Verify) && c.AnswersPath == "" {
		return fmt.Errorf("answers path is required to record or verify")
	}

	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
