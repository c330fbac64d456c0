package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/pgn-stream-go/internal/output"
	"github.com/lgbarn/pgn-stream-go/internal/pgn"
)

// runJSON streams each game as its own JSON object as soon as it finishes
// parsing. Like rewrite, this writes one interleaved output stream, so
// files are processed one at a time rather than through the worker pool.
func runJSON(args []string) int {
	fs := flag.NewFlagSet("json", flag.ExitOnError)
	_, maxTagLen, maxCommentLen, outFile, quiet := commonFlags(fs)
	fs.Parse(args) //nolint:errcheck // flag.ExitOnError already handles parse failures

	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	out, err := openOutput(*outFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *outFile != "" {
		defer out.Close() //nolint:errcheck,gosec // G104: best-effort cleanup on exit
	}
	bw := bufio.NewWriter(out)
	defer bw.Flush() //nolint:errcheck,gosec // G104: best-effort flush on exit

	exit := 0
	for _, path := range files {
		f, err := openInput(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exit = 1
			continue
		}

		cfg := newConfigFromFlags(*maxTagLen, *maxCommentLen, *quiet)
		r := pgn.NewReaderWithConfig(f, cfg)
		v := output.NewJSONVisitor(bw)
		if err := streamAll(r, v, cfg, path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			exit = 1
		}
		if v.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, v.Err)
			exit = 1
		}
		if path != "-" && path != "" {
			f.Close() //nolint:errcheck,gosec // G104: read-only cleanup
		}
	}

	return exit
}
