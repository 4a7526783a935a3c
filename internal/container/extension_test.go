package container

import (
	"strings"
	"testing"

	"github.com/deepteams/gif/internal/lzw"
)

// appendSubblocks writes s out as a chain of length-prefixed sub-blocks
// (255 bytes per block, as a real encoder would) followed by the
// zero-length terminator.
func appendSubblocks(b []byte, s string) []byte {
	data := []byte(s)
	for len(data) > 0 {
		n := len(data)
		if n > 255 {
			n = 255
		}
		b = append(b, byte(n))
		b = append(b, data[:n]...)
		data = data[n:]
	}
	return append(b, 0x00)
}

func baseHeader() []byte {
	var b []byte
	b = append(b, "GIF89a"...)
	b = append(b, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00)
	b = append(b, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF)
	return b
}

// Comment, Plain Text, and Application extensions are all skipped
// sub-block by sub-block and never surfaced on Document (§4.5); these
// tests assert that Parse succeeds and produces no image frames, without
// inspecting any extension content.

func TestParseCommentExtensionSkipped(t *testing.T) {
	b := baseHeader()
	b = append(b, 0x21, 0xFE)
	b = appendSubblocks(b, "hello gif")
	b = append(b, 0x3B)

	doc, err := Parse(b, lzw.NewDecoder())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Images) != 0 {
		t.Fatalf("Images = %+v, want none", doc.Images)
	}
}

func TestParseCommentSpanningManySubblocksSkipped(t *testing.T) {
	// Long enough to force multiple 255-byte sub-blocks, exercising the
	// skip loop across a sub-block boundary.
	long := strings.Repeat("x", 600)

	b := baseHeader()
	b = append(b, 0x21, 0xFE)
	b = appendSubblocks(b, long)
	b = append(b, 0x3B)

	if _, err := Parse(b, lzw.NewDecoder()); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}

func TestParsePlainTextExtensionSkipped(t *testing.T) {
	b := baseHeader()
	b = append(b, 0x21, 0x01, 0x0C)
	b = append(b, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x08, 0x08, 0x00, 0x01)
	b = appendSubblocks(b, "hi")
	b = append(b, 0x3B)

	if _, err := Parse(b, lzw.NewDecoder()); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}

// A first sub-block size other than the conventional 12-byte Plain Text
// descriptor must not fail parsing: §4.5 forbids failing on content, and
// the skip path treats every sub-block alike rather than validating a
// fixed-size descriptor the way a Graphic Control Extension does.
func TestParsePlainTextOddFirstSubblockSizeStillSkipped(t *testing.T) {
	b := baseHeader()
	b = append(b, 0x21, 0x01, 0x05)
	b = append(b, "short"...)
	b = append(b, 0x00)
	b = append(b, 0x3B)

	if _, err := Parse(b, lzw.NewDecoder()); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}

func TestParseApplicationExtensionSkipped(t *testing.T) {
	b := baseHeader()
	b = append(b, 0x21, 0xFF, 0x0B)
	b = append(b, "NETSCAPE"...)
	b = append(b, "2.0"...)
	b = appendSubblocks(b, "\x01\x00\x00")
	b = append(b, 0x3B)

	if _, err := Parse(b, lzw.NewDecoder()); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}

func TestParseUnknownExtensionLabelSkipped(t *testing.T) {
	b := baseHeader()
	b = append(b, 0x21, 0x42) // unrecognized label
	b = appendSubblocks(b, "ignored")
	b = append(b, 0x3B)

	if _, err := Parse(b, lzw.NewDecoder()); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}

func TestParseGraphicControlBadSize(t *testing.T) {
	b := baseHeader()
	b = append(b, 0x21, 0xF9, 0x03, 0x00, 0x00, 0x00) // size must be 4
	b = append(b, 0x3B)

	if _, err := Parse(b, lzw.NewDecoder()); err != ErrBadData {
		t.Fatalf("Parse: got %v, want ErrBadData", err)
	}
}

func TestParseGraphicControlMissingTerminator(t *testing.T) {
	b := baseHeader()
	b = append(b, 0x21, 0xF9, 0x04, 0x00, 0x00, 0x00, 0x00, 0x01) // terminator must be 0x00
	b = append(b, 0x3B)

	if _, err := Parse(b, lzw.NewDecoder()); err != ErrBadData {
		t.Fatalf("Parse: got %v, want ErrBadData", err)
	}
}
