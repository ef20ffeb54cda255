package cliconfig

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnvConfig applies configuration from environment variables (AOC_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input-dir", os.Getenv("AOC_INPUT_DIR"), &cfg.InputDir)
	s.setString("answers", os.Getenv("AOC_ANSWERS"), &cfg.AnswersPath)
	s.setString("log-level", os.Getenv("AOC_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("debounce", os.Getenv("AOC_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("sample", os.Getenv("AOC_SAMPLE"), &cfg.Sample)
	s.setBoolFromString("record", os.Getenv("AOC_RECORD"), &cfg.Record)
	s.setBoolFromString("verify", os.Getenv("AOC_VERIFY"), &cfg.Verify)
	s.setBoolFromString("watch", os.Getenv("AOC_WATCH"), &cfg.Watch)

	return nil
}
