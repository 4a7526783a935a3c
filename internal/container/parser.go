package container

import (
	"github.com/deepteams/gif/internal/cursor"
	"github.com/deepteams/gif/internal/lzw"
)

// Parse runs the block dispatcher (§4.3) over data: the header and global
// color table, then a loop over image descriptors and extensions until
// the trailer. Trailing bytes after the trailer are ignored, matching
// original_source's behavior.
//
// dec is the caller's LZW decoder, reused across every image in data so a
// multi-frame animation decodes without per-frame table/stack allocation.
func Parse(data []byte, dec *lzw.Decoder) (*Document, error) {
	c := cursor.New(data)
	doc, err := parseHeader(c)
	if err != nil {
		return nil, err
	}

	var pending *FrameControl

	for {
		if err := c.Require(1); err != nil {
			return nil, err
		}
		tag := c.U8At(0)
		if err := c.Advance(1); err != nil {
			return nil, err
		}

		switch tag {
		case blockTrailer:
			return doc, nil

		case blockImageDescriptor:
			if err := parseImage(c, doc, pending, dec); err != nil {
				return nil, err
			}
			pending = nil

		case blockExtension:
			fc, err := parseExtension(c, doc)
			if err != nil {
				return nil, err
			}
			if fc != nil {
				pending = fc
			}

		default:
			return nil, ErrBadData
		}
	}
}
