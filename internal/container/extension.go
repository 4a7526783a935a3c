package container

import (
	"github.com/deepteams/gif/internal/cursor"
	"github.com/deepteams/gif/internal/subblock"
)

// parseExtension dispatches on the extension label following a 0x21
// introducer byte (§4.5). It returns a non-nil *FrameControl when the
// extension was a Graphic Control Extension; every other label — known
// (Comment, Plain Text, Application) or not — is skipped sub-block by
// sub-block without ever inspecting its content, per §4.5: "Never fail
// on content."
func parseExtension(c *cursor.Cursor, doc *Document) (*FrameControl, error) {
	if err := c.Require(1); err != nil {
		return nil, err
	}
	label := c.U8At(0)
	if err := c.Advance(1); err != nil {
		return nil, err
	}

	if label == extGraphicControl {
		return parseGraphicControl(c)
	}
	if err := subblock.SkipAll(c); err != nil {
		return nil, err
	}
	return nil, nil
}

func parseGraphicControl(c *cursor.Cursor) (*FrameControl, error) {
	if err := c.Require(1); err != nil {
		return nil, err
	}
	size := int(c.U8At(0))
	if err := c.Advance(1); err != nil {
		return nil, err
	}
	if size != gceBlockSize {
		return nil, ErrBadData
	}
	if err := c.Require(gceBlockSize); err != nil {
		return nil, err
	}
	packed := c.U8At(0)
	delay := c.U16LEAt(1)
	transparentIndex := c.U8At(3)
	if err := c.Advance(gceBlockSize); err != nil {
		return nil, err
	}

	// The required terminating zero-length sub-block.
	if err := c.Require(1); err != nil {
		return nil, err
	}
	if c.U8At(0) != 0 {
		return nil, ErrBadData
	}
	if err := c.Advance(1); err != nil {
		return nil, err
	}

	return &FrameControl{
		Disposal:         normalizeDisposal((packed & gceDisposalMask) >> gceDisposalShift),
		UserInput:        packed&gceUserInputFlag != 0,
		HasTransparency:  packed&gceTransparentFlag != 0,
		TransparentIndex: transparentIndex,
		DelayCentisecs:   delay,
	}, nil
}
