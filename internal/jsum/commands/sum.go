// Package commands contains the top-level drivers for the jsum CLI.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"jsum/internal/jsum/lib"
	"jsum/internal/jsum/types"
)

// StdinName is the display name used for the standard input stream.
const StdinName = "-"

// Sum processes every named input in order, writing digest records to
// stdout and diagnostics to stderr. A path of "-" (or no paths at
// all) reads the stdin stream. Inputs are independent: a failure to
// open, read or hash one input is reported and the remaining inputs
// are still processed. The returned error is non-nil if any input
// failed, which the caller turns into a nonzero exit status.
func Sum(cfg types.Config, paths []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if !cfg.Width.Valid() {
		return fmt.Errorf("unsupported digest width %d (want 16, 32 or 64)", cfg.Width)
	}

	// One engine, and therefore one scratch buffer, for the whole run.
	engine := lib.NewEngine(cfg, stdout)

	if len(paths) == 0 {
		paths = []string{StdinName}
	}

	failed := 0
	for _, path := range paths {
		if err := sumOne(engine, path, stdin, stderr); err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(paths))
	}
	return nil
}

// sumOne opens a single input, drains it through the engine, and
// writes the diagnostic for whichever stage failed.
func sumOne(engine *lib.Engine, path string, stdin io.Reader, stderr io.Writer) error {
	var in io.Reader
	if path == StdinName {
		in = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "error: cannot open: %s\n", path)
			return err
		}
		defer f.Close()
		in = f
	}

	if err := engine.Process(path, in); err != nil {
		if errors.Is(err, lib.ErrHash) {
			fmt.Fprintf(stderr, "error hashing file: %s\n", path)
		} else {
			fmt.Fprintf(stderr, "error reading file: %s\n", path)
		}
		return err
	}
	return nil
}
