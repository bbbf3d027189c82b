// fenmove plays algebraic moves on FEN positions and prints the resulting FEN.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/fenmove-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fenmove version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log := newLogger(cfg)

	var failed int
	if *batchFile != "" {
		var err error
		failed, err = processBatchFile(*batchFile, cfg, log)
		if err != nil {
			log.Error().Err(err).Msg("batch aborted")
			os.Exit(1)
		}
	} else {
		failed = processMoves(flag.Args(), cfg, log)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// newLogger builds the diagnostics logger. Output to stderr is formatted for
// reading; a log file gets one JSON object per line.
func newLogger(cfg *config.Config) zerolog.Logger {
	var w io.Writer = cfg.LogFile
	if cfg.LogFile == os.Stderr {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(logLevel(cfg.Verbosity)).With().Timestamp().Logger()
}

// logLevel maps a verbosity to a log level.
func logLevel(verbosity int) zerolog.Level {
	switch {
	case verbosity >= 2:
		return zerolog.DebugLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.WarnLevel
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if *appendOutput {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	file, err := os.OpenFile(*outputFile, flags, 0644) //nolint:gosec // G302: 0644 is appropriate for user output
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fenmove [options] [moves...]\n")
	fmt.Fprintf(os.Stderr, "       fenmove [options] -b FILE\n\n")
	fmt.Fprintf(os.Stderr, "Plays algebraic moves from a FEN position and prints the resulting FEN.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nBatch lines:\n")
	fmt.Fprintf(os.Stderr, "  <fen> | <move> <move> ...   one result line per input line\n")
	fmt.Fprintf(os.Stderr, "  ; comment                   skipped, as are blank lines\n")
	fmt.Fprintf(os.Stderr, "\nExample:\n")
	fmt.Fprintf(os.Stderr, "  fenmove e4 e5 Nf3\n")
	fmt.Fprintf(os.Stderr, "  rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq\n")
}
