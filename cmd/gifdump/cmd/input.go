package cmd

import (
	"fmt"
	"io"
	"os"
)

// readInput reads the named file, or stdin if path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// displayName returns the name to show for a source path: the path
// itself, or "<stdin>" when reading from standard input.
func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}

func requireOneArg(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected exactly one input file (or \"-\" for stdin)")
	}
	return args[0], nil
}
