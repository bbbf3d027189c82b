package config

import (
	"fmt"

	"github.com/lgbarn/fenmove-go/internal/errors"
)

// BatchConfig holds settings for processing a file of positions.
type BatchConfig struct {
	// Workers is the number of goroutines replaying lines (0 = one per CPU)
	Workers int

	// StopOnError stops reading input after the first failed line
	StopOnError bool

	// Separator splits a line into its FEN and its moves
	Separator string

	// CommentPrefix marks lines to skip
	CommentPrefix string
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		Separator:     "|",
		CommentPrefix: ";",
	}
}

// Validate checks that the batch configuration is valid.
func (b *BatchConfig) Validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.Separator == "" {
		return fmt.Errorf("empty line separator: %w", errors.ErrInvalidConfig)
	}
	if b.Separator == b.CommentPrefix {
		return fmt.Errorf("separator and comment prefix are both %q: %w", b.Separator, errors.ErrInvalidConfig)
	}
	return nil
}
