package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deepteams/gif"
)

// DefineInfoCommand builds the "info" subcommand: a summary of a GIF
// stream's screen geometry, version, and frame count.
func DefineInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.gif>",
		Short: "Display summary information about a GIF file",
		Args:  cobra.ExactArgs(1),
		RunE:  RunInfo,
	}
}

func RunInfo(cmd *cobra.Command, args []string) error {
	path, err := requireOneArg(args)
	if err != nil {
		return err
	}

	data, err := readInput(path)
	if err != nil {
		return fmt.Errorf("info: reading %s: %w", path, err)
	}

	g, err := gif.Parse(data)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "File:       %s\n", displayName(path))
	fmt.Fprintf(w, "Version:    GIF%s\n", g.Version)
	fmt.Fprintf(w, "Dimensions: %d x %d\n", g.Width, g.Height)
	fmt.Fprintf(w, "Frames:     %d\n", len(g.Images))
	if g.GlobalColorTable != nil {
		fmt.Fprintf(w, "Palette:    %d colors (global)\n", g.GlobalColorTable.NumColors())
	} else {
		fmt.Fprintf(w, "Palette:    none (global)\n")
	}

	if path != "-" {
		if fi, err := os.Stat(path); err == nil {
			fmt.Fprintf(w, "File size:  %d bytes\n", fi.Size())
		}
	}

	return nil
}
