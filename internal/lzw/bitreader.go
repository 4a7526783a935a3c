// Package lzw implements the variable-width LZW decompressor used by GIF
// image data: a 4096-entry code table arena, a code width that starts at
// minimum code size + 1 and grows up to 12 bits, CLEAR/EOI handling, and
// the KwKwK self-referential case.
package lzw

import (
	"errors"
	"io"

	"github.com/deepteams/gif/internal/subblock"
)

// ErrEmptyChain is returned by NewBitReader when the sub-block chain feeding
// the bit reader has no data at all (its very first sub-block is the
// zero-length terminator). The caller (Decode) turns this into ErrBadData.
var ErrEmptyChain = errors.New("lzw: empty sub-block chain")

// BitReader packs codes of a caller-supplied width out of a sub-block
// byte stream, LSB-first within each byte, straddling byte boundaries
// freely.
type BitReader struct {
	src      *subblock.Reader
	bitBuf   uint32
	bitCount int
}

// NewBitReader creates a BitReader over src. It eagerly reads the first
// byte so that an entirely empty chain is detected up front, before any
// code is decoded.
func NewBitReader(src *subblock.Reader) (*BitReader, error) {
	b, err := src.ReadByte()
	if err == io.EOF {
		return nil, ErrEmptyChain
	}
	if err != nil {
		return nil, err
	}
	return &BitReader{src: src, bitBuf: uint32(b), bitCount: 8}, nil
}

// ReadCode reads the next code of the given width (3..12 bits). It returns
// io.EOF if the sub-block chain's terminator is reached before width bits
// could be assembled (a properly closed chain missing an EOI code), or
// src's underlying error (always a truncation) otherwise.
func (br *BitReader) ReadCode(width int) (uint16, error) {
	for br.bitCount < width {
		b, err := br.src.ReadByte()
		if err != nil {
			return 0, err
		}
		br.bitBuf |= uint32(b) << uint(br.bitCount)
		br.bitCount += 8
	}
	code := uint16(br.bitBuf & ((1 << uint(width)) - 1))
	br.bitBuf >>= uint(width)
	br.bitCount -= width
	return code, nil
}

// Drain discards the remainder of the underlying sub-block chain. Called
// after an EOI code so that the cursor ends up positioned past the chain's
// terminator even though not all of its bytes were consumed as code bits.
func (br *BitReader) Drain() error {
	for {
		_, err := br.src.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
