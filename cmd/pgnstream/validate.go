package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/pgn-stream-go/internal/pgn"
)

func runValidate(args []string) int {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	workers, maxTagLen, maxCommentLen, _, quiet := commonFlags(fs)
	fs.Parse(args) //nolint:errcheck // flag.ExitOnError already handles parse failures

	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	exit := processFiles(files, *workers, func(path string) fileResult {
		f, err := openInput(path)
		if err != nil {
			return fileResult{path: path, err: err}
		}
		if path != "-" && path != "" {
			defer f.Close() //nolint:errcheck,gosec // G104: read-only cleanup
		}

		cfg := newConfigFromFlags(*maxTagLen, *maxCommentLen, *quiet)
		r := pgn.NewReaderWithConfig(f, cfg)
		v := &validateVisitor{}
		if err := streamAll(r, v, cfg, path); err != nil {
			return fileResult{path: path, err: err}
		}

		return fileResult{path: path, lines: fmt.Sprintf("%s: success (%d game(s))", path, v.games)}
	})

	return exit
}
