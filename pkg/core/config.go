package core

import (
	"errors"
	"fmt"
	"strings"

	"fileinspect/pkg/logging"
)

// ErrInvalidWorkers is returned for a worker count below one.
var ErrInvalidWorkers = errors.New("workers must be at least 1")

// Config describes one inspection run.
type Config struct {
	Root       string
	Excludes   []string
	IgnoreFile string
	Workers    int
	EXIF       bool
	Progress   bool
	LogFile    string
	LogLevel   string
}

// Validate checks the config and fills in defaults.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return errors.New("a file or directory path is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidWorkers, c.Workers)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
