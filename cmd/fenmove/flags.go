// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/fenmove-go/internal/config"
)

var (
	// Input options
	startFEN  = flag.String("f", config.InitialFEN, "Start position for moves given as arguments")
	batchFile = flag.String("b", "", "Batch file of '<fen> | <moves>' lines ('-' for stdin)")
	separator = flag.String("sep", "|", "Separator between position and moves in batch lines")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	echoInput    = flag.Bool("e", false, "Echo each input before its result")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", 0, "Verbosity: 0=warnings, 1=summary, 2=every line")

	// Batch processing
	workers     = flag.Int("workers", 0, "Number of batch workers (0 = one per CPU)")
	stopOnError = flag.Bool("stop-on-error", false, "Stop a batch at the first failed line")

	// Info
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.StartFEN = *startFEN
	applyOutputFlags(cfg)
	applyBatchFlags(cfg)
}

// applyOutputFlags configures result line settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.EchoInput = *echoInput
}

// applyBatchFlags configures batch processing settings.
func applyBatchFlags(cfg *config.Config) {
	cfg.Batch.Workers = *workers
	cfg.Batch.StopOnError = *stopOnError
	cfg.Batch.Separator = *separator
}
