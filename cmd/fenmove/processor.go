package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/fenmove-go/internal/config"
	"github.com/lgbarn/fenmove-go/internal/engine"
	"github.com/lgbarn/fenmove-go/internal/errors"
	"github.com/lgbarn/fenmove-go/internal/worker"
)

// maxLineLength bounds a single batch line.
const maxLineLength = 1024 * 1024

// processMoves replays the moves from the configured start position and
// writes one result line. It returns 1 if the replay failed, else 0.
func processMoves(moves []string, cfg *config.Config, log zerolog.Logger) int {
	result := worker.ProcessResult{
		Text: cfg.StartFEN + " " + cfg.Batch.Separator + " " + strings.Join(moves, " "),
	}
	result.FEN, result.Err = engine.ReplayMoves(cfg.StartFEN, stripMoveNumbers(moves))

	if err := writeResult(cfg.OutputFile, cfg.Output, result); err != nil {
		log.Error().Err(err).Msg("writing result")
		return 1
	}
	if result.Err != nil {
		log.Warn().Err(result.Err).AnErr("kind", errors.Kind(result.Err)).Msg("replay failed")
		return 1
	}
	log.Debug().Str("fen", result.FEN).Int("plies", len(moves)).Msg("replayed")
	return 0
}

// processBatchFile opens name ("-" for stdin) and processes it as batch input.
func processBatchFile(name string, cfg *config.Config, log zerolog.Logger) (int, error) {
	if name == "-" {
		return processInput(os.Stdin, "stdin", cfg, log)
	}

	file, err := os.Open(name) //nolint:gosec // G304: batch file path comes from the command line
	if err != nil {
		return 0, errors.Wrap(err, "opening batch file")
	}
	defer file.Close()

	return processInput(file, name, cfg, log)
}

// processInput replays every batch line read from r on a worker pool and
// writes the results in input order. It returns the number of failed lines.
func processInput(r io.Reader, name string, cfg *config.Config, log zerolog.Logger) (int, error) {
	batch := cfg.Batch
	numWorkers := batch.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}

	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		return replayLine(item, name, batch.Separator)
	}
	pool := worker.NewPool(processFunc, worker.WithWorkers(numWorkers), worker.WithBufferSize(4*numWorkers))
	pool.Start()

	readErr := make(chan error, 1)
	go func() {
		defer pool.Close()

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

		lineNum, index := 0, 0
		for scanner.Scan() {
			lineNum++
			text := scanner.Text()
			if isSkippedLine(text, batch.CommentPrefix) {
				continue
			}
			if pool.IsStopped() {
				break
			}
			pool.Submit(worker.WorkItem{Index: index, Line: lineNum, Text: text})
			index++
		}
		readErr <- scanner.Err()
	}()

	start := time.Now()
	var processed, failed int
	var writeErr error

	// Results are only written from this goroutine.
	worker.InOrder(pool.Results(), func(result worker.ProcessResult) bool {
		processed++
		if result.Err != nil {
			failed++
			log.Warn().Err(result.Err).AnErr("kind", errors.Kind(result.Err)).Str("file", name).Int("line", result.Line).Msg("line failed")
		} else {
			log.Debug().Str("file", name).Int("line", result.Line).Str("fen", result.FEN).Msg("replayed")
		}

		if err := writeResult(cfg.OutputFile, cfg.Output, result); err != nil {
			writeErr = errors.Wrapf(err, "writing result for line %d", result.Line)
			pool.Stop()
			return false
		}
		if result.Err != nil && batch.StopOnError {
			pool.Stop()
			return false
		}
		return true
	})

	if err := <-readErr; err != nil {
		return failed, errors.Wrapf(err, "reading %s", name)
	}
	if writeErr != nil {
		return failed, writeErr
	}

	log.Info().
		Str("file", name).
		Int("lines", processed).
		Int("failed", failed).
		Int("workers", numWorkers).
		Dur("elapsed", time.Since(start)).
		Msg("batch complete")
	return failed, nil
}

// replayLine parses one batch line and replays its moves.
func replayLine(item worker.WorkItem, name, sep string) worker.ProcessResult {
	result := worker.ProcessResult{
		Index: item.Index,
		Line:  item.Line,
		Text:  item.Text,
	}

	fen, moves, err := parseBatchLine(item.Text, item.Line, name, sep)
	if err == nil {
		result.FEN, err = engine.ReplayMoves(fen, moves)
	}
	result.Err = err
	return result
}

// parseBatchLine splits a batch line into its position and its moves.
// Move numbers such as "12." or "12..." are dropped.
func parseBatchLine(text string, lineNum int, name, sep string) (string, []string, error) {
	i := strings.Index(text, sep)
	if i < 0 {
		return "", nil, &errors.ParseError{
			File:     name,
			Line:     lineNum,
			Expected: fmt.Sprintf("%q between position and moves", sep),
			Got:      "end of line",
		}
	}

	fen := strings.TrimSpace(text[:i])
	if fen == "" {
		return "", nil, &errors.ParseError{
			File:     name,
			Line:     lineNum,
			Column:   i + 1,
			Expected: "position",
			Got:      fmt.Sprintf("%q", sep),
		}
	}

	return fen, stripMoveNumbers(strings.Fields(text[i+len(sep):])), nil
}

// stripMoveNumbers drops move number tokens.
func stripMoveNumbers(tokens []string) []string {
	moves := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !isMoveNumber(tok) {
			moves = append(moves, tok)
		}
	}
	return moves
}

// isMoveNumber reports whether tok is digits followed by one or more dots.
func isMoveNumber(tok string) bool {
	digits := strings.TrimRight(tok, ".")
	if digits == "" || digits == tok {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// isSkippedLine reports whether a batch line is blank or a comment.
func isSkippedLine(text, commentPrefix string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed == "" || (commentPrefix != "" && strings.HasPrefix(trimmed, commentPrefix))
}

// writeResult writes one result line: the FEN, or the error prefixed.
func writeResult(w io.Writer, out *config.OutputConfig, result worker.ProcessResult) error {
	var sb strings.Builder
	if out.EchoInput {
		sb.WriteString(result.Text)
		sb.WriteString(" => ")
	}
	if result.Err != nil {
		sb.WriteString(out.ErrorPrefix)
		sb.WriteString(result.Err.Error())
	} else {
		sb.WriteString(result.FEN)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}
