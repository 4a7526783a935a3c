package container

import (
	"github.com/deepteams/gif/internal/cursor"
	"github.com/deepteams/gif/internal/interlace"
	"github.com/deepteams/gif/internal/lzw"
	"github.com/deepteams/gif/internal/subblock"
)

const imageDescriptorSize = 9 // x, y, width, height, packed

// maxImagePixels bounds the raster allocation parseImage is willing to
// make for a single frame. GIF's width/height fields are each 16-bit, so
// a maliciously declared screen can demand a multi-gigabyte allocation
// with 13 bytes of input; this is the synthetic stand-in for the
// allocation-failure path a manually-memory-managed decoder would take.
const maxImagePixels = 64 << 20 // 64 Mpixels, ~64MB for an 8-bit raster

// parseImage parses an image descriptor, its optional local color table,
// and its LZW-compressed data, de-interlacing if needed (§4.4). pending,
// if non-nil, is attached to the resulting Image and ownership of it
// transfers to the caller (the dispatcher clears its own pending slot).
func parseImage(c *cursor.Cursor, doc *Document, pending *FrameControl, dec *lzw.Decoder) error {
	if err := c.Require(imageDescriptorSize); err != nil {
		return err
	}
	left := int(c.U16LEAt(0))
	top := int(c.U16LEAt(2))
	width := int(c.U16LEAt(4))
	height := int(c.U16LEAt(6))
	packed := c.U8At(8)
	if err := c.Advance(imageDescriptorSize); err != nil {
		return err
	}

	if width <= 0 || height <= 0 {
		return ErrBadData
	}
	if left+width > doc.Width || top+height > doc.Height {
		return ErrBadData
	}
	if width*height > maxImagePixels {
		return ErrResourceLimit
	}

	var localCT *ColorTable
	if packed&colorTableFlag != 0 {
		n := colorTableSize(packed)
		ct, err := readColorTable(c, n)
		if err != nil {
			return err
		}
		localCT = ct
	}
	if localCT == nil && doc.GlobalColorTable == nil {
		return ErrBadData
	}

	var numColors int
	if localCT != nil {
		numColors = len(localCT.Entries)
	} else {
		numColors = len(doc.GlobalColorTable.Entries)
	}

	if err := c.Require(1); err != nil {
		return err
	}
	minCodeSize := c.U8At(0)
	if err := c.Advance(1); err != nil {
		return err
	}

	raster := make([]byte, width*height)
	src := subblock.New(c)
	if err := dec.Decode(src, minCodeSize, numColors, raster); err != nil {
		return err
	}

	interlaced := packed&interlaceFlag != 0
	if interlaced {
		out := make([]byte, width*height)
		interlace.Deinterlace(out, raster, height, width)
		raster = out
	}

	doc.Images = append(doc.Images, Image{
		Left:            left,
		Top:             top,
		Width:           width,
		Height:          height,
		Interlaced:      interlaced,
		LocalColorTable: localCT,
		Control:         pending,
		Pixels:          raster,
	})
	return nil
}
