// Package config provides configuration for fenmove.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/fenmove-go/internal/engine"
	"github.com/lgbarn/fenmove-go/internal/errors"
)

// InitialFEN is the default starting position for replays.
const InitialFEN = engine.InitialFEN

// Config holds all program configuration.
type Config struct {
	// Verbosity selects the log level: 0=warnings, 1=info, 2 or more=debug.
	Verbosity int

	// StartFEN is the position single-line mode replays moves from.
	StartFEN string

	// Sub-configurations
	Output *OutputConfig
	Batch  *BatchConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  0,
		StartFEN:   InitialFEN,
		Output:     NewOutputConfig(),
		Batch:      NewBatchConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration and its sub-configurations.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.StartFEN == "" {
		return fmt.Errorf("empty start position: %w", errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log streams must be set: %w", errors.ErrInvalidConfig)
	}
	if c.Output != nil {
		if err := c.Output.Validate(); err != nil {
			return err
		}
	}
	if c.Batch != nil {
		if err := c.Batch.Validate(); err != nil {
			return err
		}
	}
	return nil
}
