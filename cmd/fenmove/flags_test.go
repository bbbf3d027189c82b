package main

import (
	"testing"

	"github.com/lgbarn/fenmove-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.StartFEN != config.InitialFEN {
		t.Errorf("StartFEN = %q; want %q", cfg.StartFEN, config.InitialFEN)
	}
	if cfg.Verbosity != 0 {
		t.Errorf("Verbosity = %d; want 0", cfg.Verbosity)
	}
	if cfg.Batch.Separator != "|" {
		t.Errorf("Separator = %q; want |", cfg.Batch.Separator)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestApplyFlags(t *testing.T) {
	defer saveRestoreString(startFEN, "8/8/8/8/8/8/8/4K3 w -")()
	defer saveRestoreInt(verbosity, 2)()
	defer saveRestoreBool(echoInput, true)()
	defer saveRestoreInt(workers, 3)()
	defer saveRestoreBool(stopOnError, true)()
	defer saveRestoreString(separator, "::")()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.StartFEN != "8/8/8/8/8/8/8/4K3 w -" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d; want 2", cfg.Verbosity)
	}
	if !cfg.Output.EchoInput {
		t.Error("EchoInput = false; want true")
	}
	if cfg.Batch.Workers != 3 {
		t.Errorf("Workers = %d; want 3", cfg.Batch.Workers)
	}
	if !cfg.Batch.StopOnError {
		t.Error("StopOnError = false; want true")
	}
	if cfg.Batch.Separator != "::" {
		t.Errorf("Separator = %q; want ::", cfg.Batch.Separator)
	}
}

func TestApplyFlags_InvalidWorkers(t *testing.T) {
	defer saveRestoreInt(workers, -1)()

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil for negative workers")
	}
}
