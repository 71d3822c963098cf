package sco

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the settings an embedder typically wants to load from a file
// rather than hard-code: the advisory stack size new Descriptors should use
// when they don't supply their own Stack, and the logging level for the
// scheduler's internal trace messages.
type Config struct {
	StackSize int    `yaml:"stackSize"`
	LogLevel  string `yaml:"logLevel"`
}

// DefaultConfig returns the Config a Scheduler behaves with if none is
// loaded: MinStackSize advisory stacks and logging disabled.
func DefaultConfig() Config {
	return Config{
		StackSize: MinStackSize,
		LogLevel:  "disabled",
	}
}

// LoadConfig reads and parses a YAML-encoded Config from path, filling in
// DefaultConfig for any field left unset.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("sco: load config: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("sco: load config: %w", err)
	}
	if cfg.StackSize < MinStackSize {
		cfg.StackSize = MinStackSize
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "disabled"
	}
	return cfg, nil
}
