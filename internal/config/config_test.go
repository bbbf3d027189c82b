package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/lgbarn/fenmove-go/internal/errors"
	"github.com/lgbarn/fenmove-go/internal/testutil"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 0 {
		t.Errorf("Verbosity = %d, want 0", cfg.Verbosity)
	}
	if cfg.StartFEN != InitialFEN {
		t.Errorf("StartFEN = %q, want %q", cfg.StartFEN, InitialFEN)
	}
	if cfg.OutputFile != os.Stdout {
		t.Error("OutputFile should default to stdout")
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to stderr")
	}
	if cfg.Output == nil || cfg.Batch == nil {
		t.Fatal("sub-configurations should be set")
	}
	testutil.AssertNoError(t, cfg.Validate())
}

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.ErrorPrefix != "error: " {
		t.Errorf("ErrorPrefix = %q, want %q", cfg.ErrorPrefix, "error: ")
	}
	if cfg.EchoInput {
		t.Error("EchoInput should be false by default")
	}
}

// TestBatchConfig_Defaults verifies BatchConfig has sensible defaults
func TestBatchConfig_Defaults(t *testing.T) {
	cfg := NewBatchConfig()

	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
	if cfg.StopOnError {
		t.Error("StopOnError should be false by default")
	}
	if cfg.Separator != "|" {
		t.Errorf("Separator = %q, want |", cfg.Separator)
	}
	if cfg.CommentPrefix != ";" {
		t.Errorf("CommentPrefix = %q, want ;", cfg.CommentPrefix)
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "negative verbosity",
			modify:  func(c *Config) { c.Verbosity = -1 },
			wantErr: true,
		},
		{
			name:    "empty start position",
			modify:  func(c *Config) { c.StartFEN = "" },
			wantErr: true,
		},
		{
			name:    "missing log stream",
			modify:  func(c *Config) { c.LogFile = nil },
			wantErr: true,
		},
		{
			name:    "negative workers",
			modify:  func(c *Config) { c.Batch.Workers = -2 },
			wantErr: true,
		},
		{
			name:    "empty separator",
			modify:  func(c *Config) { c.Batch.Separator = "" },
			wantErr: true,
		},
		{
			name:    "separator equal to comment prefix",
			modify:  func(c *Config) { c.Batch.Separator = ";" },
			wantErr: true,
		},
		{
			name:    "multi-line error prefix",
			modify:  func(c *Config) { c.Output.ErrorPrefix = "error\n" },
			wantErr: true,
		},
		{
			name:    "nil sub-configurations are skipped",
			modify:  func(c *Config) { c.Output, c.Batch = nil, nil },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithStartFEN("8/8/8/8/8/8/8/4K3 w -").
		WithWorkers(4).
		WithStopOnError(true).
		WithSeparator("::").
		WithEchoInput(true).
		WithOutput(out).
		WithVerbosity(2).
		Build()

	if cfg.StartFEN != "8/8/8/8/8/8/8/4K3 w -" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if cfg.Batch.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Batch.Workers)
	}
	if !cfg.Batch.StopOnError {
		t.Error("StopOnError should be true")
	}
	if cfg.Batch.Separator != "::" {
		t.Errorf("Separator = %q, want ::", cfg.Batch.Separator)
	}
	if !cfg.Output.EchoInput {
		t.Error("EchoInput should be true")
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	testutil.AssertNoError(t, cfg.Validate())
}
