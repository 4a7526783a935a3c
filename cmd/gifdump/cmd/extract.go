package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/deepteams/gif"
)

// DefineExtractCommand builds the "extract" subcommand: decode one frame
// of a GIF and write it out as a PNG, applying that frame's effective
// palette (its own local table, or the stream's global one).
func DefineExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file.gif>",
		Short: "Write one decoded frame out as a PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  RunExtract,
	}
	cmd.Flags().Int("frame", 0, "index of the frame to extract")
	cmd.Flags().StringP("out", "o", "", `output PNG path ("-" for stdout; default: frame<N>.png for frame N)`)
	return cmd
}

func RunExtract(cmd *cobra.Command, args []string) error {
	path, err := requireOneArg(args)
	if err != nil {
		return err
	}
	frameIdx, err := cmd.Flags().GetInt("frame")
	if err != nil {
		return err
	}
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	data, err := readInput(path)
	if err != nil {
		return fmt.Errorf("extract: reading %s: %w", path, err)
	}

	g, err := gif.Parse(data)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	if frameIdx < 0 || frameIdx >= len(g.Images) {
		return fmt.Errorf("extract: frame %d out of range (file has %d frame(s))", frameIdx, len(g.Images))
	}

	im := &g.Images[frameIdx]
	pal := im.ColorModel(g)
	img := image.NewPaletted(image.Rect(im.Left, im.Top, im.Left+im.Width, im.Top+im.Height), pal)
	copy(img.Pix, im.Indices)

	if out == "-" {
		return png.Encode(cmd.OutOrStdout(), img)
	}
	if out == "" {
		out = fmt.Sprintf("frame%d.png", frameIdx)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(out)
		return fmt.Errorf("extract: encoding %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote frame %d of %s -> %s\n", frameIdx, displayName(path), out)
	return nil
}
