// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all assistant configuration.
type Config struct {
	Shell     Shell     `yaml:"shell"`
	Birthdays Birthdays `yaml:"birthdays"`
	Log       Log       `yaml:"log"`
}

// Shell holds interpreter prompt settings.
type Shell struct {
	Prompt   string `yaml:"prompt"`
	Greeting string `yaml:"greeting"`
}

// Birthdays holds upcoming-birthday report settings.
type Birthdays struct {
	WindowDays   int    `yaml:"window_days"`   // Days in the report window, counted from today
	LeapDay      string `yaml:"leap_day"`      // "mar1" | "feb28"
	RollWeekends bool   `yaml:"roll_weekends"` // Report Saturday/Sunday under Monday
}

// Log holds session log settings.
type Log struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
	File  string `yaml:"file"`  // Empty disables logging
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Shell: Shell{
			Prompt:   "Enter a command: ",
			Greeting: "Welcome to the assistant bot!",
		},
		Birthdays: Birthdays{
			WindowDays:   7,
			LeapDay:      "mar1",
			RollWeekends: true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files and empty paths are skipped.
// A file with invalid YAML or unknown fields is an error.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Birthdays.WindowDays < 1 || c.Birthdays.WindowDays > 366 {
		return fmt.Errorf("config: birthdays.window_days must be between 1 and 366, got %d", c.Birthdays.WindowDays)
	}
	switch c.Birthdays.LeapDay {
	case "mar1", "feb28":
		// valid
	default:
		return fmt.Errorf("config: birthdays.leap_day must be \"mar1\" or \"feb28\", got %q", c.Birthdays.LeapDay)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	if c.Shell.Prompt == "" {
		return errors.New("config: shell.prompt cannot be empty")
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ASSISTANT_LOG_LEVEL, ASSISTANT_LOG_FILE, ASSISTANT_BIRTHDAY_WINDOW.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ASSISTANT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ASSISTANT_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("ASSISTANT_BIRTHDAY_WINDOW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid ASSISTANT_BIRTHDAY_WINDOW %q: %w", v, err)
		}
		c.Birthdays.WindowDays = n
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Shell     *rawShell     `yaml:"shell"`
	Birthdays *rawBirthdays `yaml:"birthdays"`
	Log       *rawLog       `yaml:"log"`
}

type rawShell struct {
	Prompt   *string `yaml:"prompt"`
	Greeting *string `yaml:"greeting"`
}

type rawBirthdays struct {
	WindowDays   *int    `yaml:"window_days"`
	LeapDay      *string `yaml:"leap_day"`
	RollWeekends *bool   `yaml:"roll_weekends"`
}

type rawLog struct {
	Level *string `yaml:"level"`
	File  *string `yaml:"file"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if s := layer.Shell; s != nil {
		if s.Prompt != nil {
			c.Shell.Prompt = *s.Prompt
		}
		if s.Greeting != nil {
			c.Shell.Greeting = *s.Greeting
		}
	}
	if b := layer.Birthdays; b != nil {
		if b.WindowDays != nil {
			c.Birthdays.WindowDays = *b.WindowDays
		}
		if b.LeapDay != nil {
			c.Birthdays.LeapDay = *b.LeapDay
		}
		if b.RollWeekends != nil {
			c.Birthdays.RollWeekends = *b.RollWeekends
		}
	}
	if l := layer.Log; l != nil {
		if l.Level != nil {
			c.Log.Level = *l.Level
		}
		if l.File != nil {
			c.Log.File = *l.File
		}
	}
}
