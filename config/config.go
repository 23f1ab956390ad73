// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mkalens/agentdesk/logger"
)

const (
	configDirName  = ".agentdesk"
	configFileName = "config.yaml"
)

var configDirOverride string

// SetConfigDir overrides the config directory for the current process.
// Empty value clears the override.
func SetConfigDir(dir string) {
	configDirOverride = strings.TrimSpace(dir)
}

// Config is the root configuration structure.
type Config struct {
	Demo    DemoConfig    `json:"demo" yaml:"demo"`
	Assist  AssistConfig  `json:"assist,omitempty" yaml:"assist,omitempty"`
	Logging LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
}

// DemoConfig selects the demo scenario.
type DemoConfig struct {
	CustomerID  string             `json:"customerId" yaml:"customerId"`
	HistoryDays int                `json:"historyDays,omitempty" yaml:"historyDays,omitempty"` // 30, 60, or 90
	Issue       string             `json:"issue,omitempty" yaml:"issue,omitempty"`             // current issue shown in the customer pane
	Simulate    *bool              `json:"simulate,omitempty" yaml:"simulate,omitempty"`       // enable scripted customer + test input
	Supervisors []SupervisorConfig `json:"supervisors,omitempty" yaml:"supervisors,omitempty"`
}

// SupervisorConfig is one entry in the transfer roster.
type SupervisorConfig struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Role      string `json:"role" yaml:"role"`
	Status    string `json:"status" yaml:"status"` // available, busy, away
	Specialty string `json:"specialty,omitempty" yaml:"specialty,omitempty"`
}

// AssistConfig tunes the suggestion engine wiring.
type AssistConfig struct {
	SuggestDelayMS int    `json:"suggestDelayMs,omitempty" yaml:"suggestDelayMs,omitempty"` // simulated backend latency
	TypingDelayMS  int    `json:"typingDelayMs,omitempty" yaml:"typingDelayMs,omitempty"`   // simulator typing duration
	DocsDir        string `json:"docsDir,omitempty" yaml:"docsDir,omitempty"`               // extra articles indexed at startup
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `json:"level,omitempty" yaml:"level,omitempty"`   // debug, info, warn, error
	Stdout bool   `json:"stdout,omitempty" yaml:"stdout,omitempty"` // log to stdout
	File   string `json:"file,omitempty" yaml:"file,omitempty"`     // log file path
}

// SimulateEnabled reports whether the customer simulator is on.
func (d DemoConfig) SimulateEnabled() bool {
	return d.Simulate == nil || *d.Simulate
}

// BuildLoggerConfig converts the logging section for logger.Init.
func (c *Config) BuildLoggerConfig() logger.Config {
	return logger.Config{
		Level:  c.Logging.Level,
		Stdout: c.Logging.Stdout,
		File:   c.Logging.File,
	}
}

// Dir returns the config directory, creating nothing.
func Dir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// ConfigPath returns the full path of the config file.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file, applying defaults to missing fields.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config file, creating the config directory if needed.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
