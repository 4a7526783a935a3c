// Command gifdump inspects GIF images from the command line.
//
// Usage:
//
//	gifdump info <file.gif>                  Summarize a GIF stream
//	gifdump frames <file.gif>                 List per-frame metadata
//	gifdump extract [--frame N] <file.gif>    Write one frame out as a PNG
//
// "-" may be given in place of a file name to read from stdin.
package main

import (
	"fmt"
	"os"

	"github.com/deepteams/gif/cmd/gifdump/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gifdump: %v\n", err)
		os.Exit(1)
	}
}
