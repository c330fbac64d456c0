package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/lgbarn/pgn-stream-go/internal/config"
	pgnerrors "github.com/lgbarn/pgn-stream-go/internal/errors"
	"github.com/lgbarn/pgn-stream-go/internal/pgn"
	"github.com/lgbarn/pgn-stream-go/internal/worker"
)

// fileResult is the per-file outcome recorded for a processFiles run.
type fileResult struct {
	path  string
	err   error
	lines string // one-line summary for this file, printed in submission order
}

// streamAll reads every game in r, dispatching to v, recovering from a
// structural parse error (an unterminated tag or comment) instead of
// aborting the rest of the file — spec.md §7's recovery discipline: the
// reader has already advanced past the bad construct, so the next
// ReadGame call can succeed on a later game in the same stream. Each
// recovered error is reported as a GameError through cfg.LogFile, gated by
// cfg.Verbosity (0 silences them, as documented on Config.Verbosity). A
// visitor error or a genuine I/O failure still stops the file; both are
// wrapped with file context before being returned.
func streamAll(r *pgn.Reader, v pgn.Visitor, cfg *config.Config, path string) error {
	gameNum := 0
	for {
		more, err := r.ReadGame(v)
		if more {
			gameNum++
		}
		if err != nil {
			var vErr *pgn.VisitorError
			if errors.As(err, &vErr) {
				return &pgnerrors.GameError{Err: vErr, GameNum: gameNum, ByteOffset: -1, File: path}
			}
			if errors.Is(err, pgnerrors.ErrUnterminatedTag) || errors.Is(err, pgnerrors.ErrUnterminatedComment) {
				logRecoverable(cfg, &pgnerrors.GameError{Err: err, GameNum: gameNum, ByteOffset: -1, File: path})
				continue
			}
			return &pgnerrors.ParseError{Err: err, File: path}
		}
		if !more {
			return nil
		}
	}
}

// logRecoverable writes a recovered per-game error to cfg.LogFile, unless
// cfg.Verbosity silences it.
func logRecoverable(cfg *config.Config, gerr *pgnerrors.GameError) {
	if cfg == nil || cfg.Verbosity < 1 {
		return
	}
	out := cfg.LogFile
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintln(out, gerr.Error())
}

// processFiles streams each path in files through process, running up to
// numWorkers files concurrently across a worker.Pool (one goroutine per
// input file, never splitting a single stream across goroutines). Results
// print in the original file order once every file has finished, since the
// pool itself delivers them as they complete.
func processFiles(files []string, numWorkers int, process func(path string) fileResult) int {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	results := make([]fileResult, len(files))

	pool := worker.NewPool(numWorkers, len(files), func(item worker.WorkItem) worker.ProcessResult {
		r := process(item.Path)
		return worker.ProcessResult{Path: item.Path, Index: item.Index, Error: r.err, Summary: r}
	})
	pool.Start()

	go func() {
		for i, f := range files {
			pool.Submit(worker.WorkItem{Path: f, Index: i})
		}
		pool.Close()
	}()

	exitCode := 0
	for pr := range pool.Results() {
		r, _ := pr.Summary.(fileResult)
		results[pr.Index] = r
		if pr.Error != nil {
			exitCode = 1
		}
	}

	for _, r := range results {
		if r.err != nil {
			// r.err is already file-qualified (a *pgnerrors.GameError/ParseError
			// from streamAll, or an *os.PathError from a failed open).
			fmt.Fprintln(os.Stderr, r.err)
			continue
		}
		if r.lines != "" {
			fmt.Println(r.lines)
		}
	}

	return exitCode
}

// openInput opens path, or returns os.Stdin for "-" and the empty string.
func openInput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
}
