package iojson

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNoInput is returned when no path is given and stdin is an interactive
// terminal.
var ErrNoInput = errors.New("no input provided (stdin is a terminal); pass a file or pipe input")

// Open returns a reader for path, or for stdin when path is "" or "-".
// The caller closes the returned reader.
func Open(path string) (io.ReadCloser, error) {
	return open(path, os.Stdin)
}

func open(path string, stdin *os.File) (io.ReadCloser, error) {
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		return f, nil
	}

	if term.IsTerminal(int(stdin.Fd())) {
		return nil, ErrNoInput
	}
	return io.NopCloser(stdin), nil
}
