package container

import "github.com/deepteams/gif/internal/cursor"

const signatureSize = 6
const screenDescriptorSize = 7 // width, height, packed, bg index, aspect ratio

// parseHeader parses the 6-byte signature, the 7-byte logical screen
// descriptor (13 bytes total, per the 13-byte requirement in §4.2), and
// (if present) the global color table, from the start of c. It returns a
// Document with everything but Images populated.
func parseHeader(c *cursor.Cursor) (*Document, error) {
	if err := c.Require(signatureSize + screenDescriptorSize); err != nil {
		return nil, err
	}
	sig := c.BytesAt(0, signatureSize)
	var version string
	switch {
	case string(sig[:4]) == "GIF8" && sig[4] == '7' && sig[5] == 'a':
		version = "87a"
	case string(sig[:4]) == "GIF8" && sig[4] == '9' && sig[5] == 'a':
		version = "89a"
	default:
		return nil, ErrBadData
	}
	if err := c.Advance(signatureSize); err != nil {
		return nil, err
	}

	width := int(c.U16LEAt(0))
	height := int(c.U16LEAt(2))
	packed := c.U8At(4)
	bgIndex := c.U8At(5)
	aspect := c.U8At(6)
	if err := c.Advance(screenDescriptorSize); err != nil {
		return nil, err
	}

	doc := &Document{
		Version:          version,
		Width:            width,
		Height:           height,
		BackgroundIndex:  bgIndex,
		PixelAspectRatio: aspect,
	}

	if packed&colorTableFlag != 0 {
		n := colorTableSize(packed)
		if int(bgIndex) >= n {
			return nil, ErrBadData
		}
		gct, err := readColorTable(c, n)
		if err != nil {
			return nil, err
		}
		doc.GlobalColorTable = gct
	}

	return doc, nil
}
