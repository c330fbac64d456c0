package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/pgn-stream-go/internal/output"
	"github.com/lgbarn/pgn-stream-go/internal/pgn"
)

// runRewrite processes files sequentially: like json and unlike
// count/validate, its
// output is one interleaved stream, so the worker pool's per-file
// concurrency (see processFiles) would garble output from two files
// writing through the same writer at once. The -j flag is accepted for a
// consistent CLI surface but has no effect here.
func runRewrite(args []string) int {
	fs := flag.NewFlagSet("rewrite", flag.ExitOnError)
	_, maxTagLen, maxCommentLen, outFile, quiet := commonFlags(fs)
	lineLength := fs.Int("w", 80, "maximum output line length")
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
		v := output.NewRewriteVisitor(bw, *lineLength)
		if err := streamAll(r, v, cfg, path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			exit = 1
		}
		if path != "-" && path != "" {
			f.Close() //nolint:errcheck,gosec // G104: read-only cleanup
		}
	}

	return exit
}
