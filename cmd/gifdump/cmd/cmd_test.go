package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// minimalGIF is a 1x1 GIF87a, 2-color global palette, one pixel at index 1.
func minimalGIF() []byte {
	var b []byte
	b = append(b, "GIF87a"...)
	b = append(b, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00)
	b = append(b, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF)
	b = append(b, 0x2C)
	b = append(b, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00)
	b = append(b, 0x02, 0x02, 0x4C, 0x01, 0x00)
	b = append(b, 0x3B)
	return b
}

func writeTempGIF(t *testing.T, data []byte) string {
	t.Helper()
	path := t.TempDir() + "/test.gif"
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRunInfo(t *testing.T) {
	path := writeTempGIF(t, minimalGIF())

	c := DefineInfoCommand()
	var out bytes.Buffer
	c.SetOut(&out)

	require.NoError(t, RunInfo(c, []string{path}))

	got := out.String()
	require.Contains(t, got, "Version:    GIF87a")
	require.Contains(t, got, "Dimensions: 1 x 1")
	require.Contains(t, got, "Frames:     1")
	require.Contains(t, got, "Palette:    2 colors (global)")
}

func TestRunInfo_BadInput(t *testing.T) {
	path := writeTempGIF(t, []byte("not a gif"))
	c := DefineInfoCommand()
	err := RunInfo(c, []string{path})
	require.Error(t, err)
}

func TestRunInfo_MissingArg(t *testing.T) {
	c := DefineInfoCommand()
	err := RunInfo(c, nil)
	require.Error(t, err)
}

func TestRunFrames(t *testing.T) {
	path := writeTempGIF(t, minimalGIF())

	c := DefineFramesCommand()
	var out bytes.Buffer
	c.SetOut(&out)

	require.NoError(t, RunFrames(c, []string{path}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2) // header + one frame
	require.Contains(t, lines[1], "1x1")
}

func TestRunExtract(t *testing.T) {
	path := writeTempGIF(t, minimalGIF())
	outPath := t.TempDir() + "/out.png"

	c := DefineExtractCommand()
	require.NoError(t, c.Flags().Set("out", outPath))
	var errBuf bytes.Buffer
	c.SetErr(&errBuf)

	require.NoError(t, RunExtract(c, []string{path}))

	data, err := readInput(outPath)
	require.NoError(t, err)
	require.True(t, len(data) > 8)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestRunExtract_FrameOutOfRange(t *testing.T) {
	path := writeTempGIF(t, minimalGIF())
	c := DefineExtractCommand()
	require.NoError(t, c.Flags().Set("frame", "5"))
	err := RunExtract(c, []string{path})
	require.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "<stdin>", displayName("-"))
	require.Equal(t, "foo.gif", displayName("foo.gif"))
}

func TestExecuteUnknownCommand(t *testing.T) {
	// Execute() builds the real root command against os.Args; exercise the
	// subcommand constructors directly instead to keep this hermetic, and
	// just check a fresh cobra.Command rejects an unregistered verb.
	root := &cobra.Command{Use: AppName}
	root.AddCommand(DefineInfoCommand())
	root.SetArgs([]string{"bogus"})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SilenceErrors = true
	root.SilenceUsage = true
	err := root.Execute()
	require.Error(t, err)
}
