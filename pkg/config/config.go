package config

import (
	"fmt"

	"i3-insert-workspace/pkg/logger"
)

// Insertion strategies. The rename strategy depends on the manager moving
// a workspace to the tail of its output's list when it is renamed, which
// holds for i3 but not for sway; sway orders workspaces by attachment and
// needs the container swap. "auto" defers to window manager detection.
const (
	StrategyAuto   = "auto"
	StrategyRename = "rename"
	StrategySwap   = "swap"
)

// Config holds the application configuration.
type Config struct {
	// Configurable via JSON file (private fields to enforce immutability)
	strategy string
	logFile  string
	debug    bool

	log *logger.Logger
}

// New creates a new Config instance with the provided logger.
func New(log *logger.Logger) *Config {
	return &Config{
		strategy: StrategyAuto,
		log:      log,
	}
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig(log *logger.Logger) *Config {
	return New(log)
}

// GetStrategy returns the configured insertion strategy.
func (c *Config) GetStrategy() string {
	return c.strategy
}

// GetLogFile returns the log file path, empty when logging to stderr only.
func (c *Config) GetLogFile() string {
	return c.logFile
}

// GetDebug returns whether debug logging is enabled by configuration.
func (c *Config) GetDebug() bool {
	return c.debug
}

// validate checks the loaded values against the known strategy set.
func (c *Config) validate() error {
	switch c.strategy {
	case StrategyAuto, StrategyRename, StrategySwap:
		return nil
	}
	return fmt.Errorf("unknown strategy %q (expected %q, %q or %q)",
		c.strategy, StrategyAuto, StrategyRename, StrategySwap)
}
