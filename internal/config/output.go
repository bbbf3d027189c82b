package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fenmove-go/internal/errors"
)

// OutputConfig holds settings related to result lines.
type OutputConfig struct {
	// ErrorPrefix starts the line written in place of a failed result
	ErrorPrefix string

	// EchoInput writes the input line before each result, separated by " => "
	EchoInput bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ErrorPrefix: "error: ",
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if strings.ContainsAny(o.ErrorPrefix, "\r\n") {
		return fmt.Errorf("error prefix %q spans lines: %w", o.ErrorPrefix, errors.ErrInvalidConfig)
	}
	return nil
}
