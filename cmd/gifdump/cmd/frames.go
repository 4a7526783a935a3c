package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deepteams/gif"
)

// DefineFramesCommand builds the "frames" subcommand: a per-frame table
// of geometry, disposal, delay, and transparency metadata.
func DefineFramesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "frames <file.gif>",
		Short: "List per-frame metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  RunFrames,
	}
}

func RunFrames(cmd *cobra.Command, args []string) error {
	path, err := requireOneArg(args)
	if err != nil {
		return err
	}

	data, err := readInput(path)
	if err != nil {
		return fmt.Errorf("frames: reading %s: %w", path, err)
	}

	g, err := gif.Parse(data)
	if err != nil {
		return fmt.Errorf("frames: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tLEFT,TOP\tSIZE\tINTERLACED\tDISPOSAL\tDELAY (cs)\tTRANSPARENT")
	for i := range g.Images {
		im := &g.Images[i]
		transparent := "-"
		disposal := "none"
		delay := "-"
		if im.Control != nil {
			disposal = im.Control.Disposal.String()
			delay = fmt.Sprintf("%d", im.Control.DelayCentisecs)
			if im.Control.HasTransparency {
				transparent = fmt.Sprintf("%d", im.Control.TransparentIndex)
			}
		}
		fmt.Fprintf(w, "%d\t%d,%d\t%dx%d\t%v\t%s\t%s\t%s\n",
			i, im.Left, im.Top, im.Width, im.Height, im.Interlaced, disposal, delay, transparent)
	}
	return w.Flush()
}
