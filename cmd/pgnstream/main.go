// pgnstream streams chess games in Portable Game Notation, dispatching
// structured callbacks as it reads rather than building an in-memory game
// tree. It never holds more than one game in memory at a time.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/pgn-stream-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "count":
		os.Exit(runCount(os.Args[2:]))
	case "validate":
		os.Exit(runValidate(os.Args[2:]))
	case "rewrite":
		os.Exit(runRewrite(os.Args[2:]))
	case "json":
		os.Exit(runJSON(os.Args[2:]))
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	case "-version", "--version", "version":
		fmt.Printf("pgnstream version %s\n", programVersion)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "pgnstream: unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: pgnstream <command> [options] [input-files...]

Commands:
  count     report game, ply, and tag counts per file
  validate  check that every game is well formed
  rewrite   canonicalize tags and movetext, writing PGN
  json      stream each game as a JSON object

Run "pgnstream <command> -h" for command-specific options.
`)
}

// newConfigFromFlags builds a Config from the common -tagmax/-commentmax/-q
// flags, shared by every subcommand's flag set.
func newConfigFromFlags(maxTagLen, maxCommentLen int, quiet bool) *config.Config {
	cfg := config.NewConfig()
	if maxTagLen > 0 {
		cfg.MaxTagLineLength = maxTagLen
	}
	if maxCommentLen > 0 {
		cfg.MaxCommentLength = maxCommentLen
	}
	if quiet {
		cfg.Verbosity = 0
	}
	return cfg
}

// commonFlags registers the flags shared by every subcommand and returns
// pointers to their values.
func commonFlags(fs *flag.FlagSet) (workers, maxTagLen, maxCommentLen *int, outFile *string, quiet *bool) {
	workers = fs.Int("j", 0, "number of files to process concurrently (0 = NumCPU)")
	maxTagLen = fs.Int("tagmax", 0, "maximum tag line length in bytes (0 = default)")
	maxCommentLen = fs.Int("commentmax", 0, "maximum comment length in bytes (0 = default)")
	outFile = fs.String("o", "", "output file (default: stdout)")
	quiet = fs.Bool("q", false, "silence diagnostics for recovered (skipped) malformed games")
	return
}

func openOutput(path string) (*os.File, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path) //nolint:gosec // G304: CLI tool opens user-specified files
}
