package lzw

import (
	"errors"
	"io"

	"github.com/deepteams/gif/internal/subblock"
)

// ErrBadData and ErrFault are this package's error taxonomy; truncation is
// reported as cursor.ErrEOF directly (propagated unchanged from subblock.Reader,
// which is itself backed by a cursor.Cursor), so there is exactly one EOF
// sentinel across every layer of the decoder.
var (
	ErrBadData = errors.New("lzw: malformed LZW stream")
	ErrFault   = errors.New("lzw: internal invariant violation")
)

// Decoder holds the reusable scratch state for one LZW decode: the
// 4096-entry code table and the prefix-walk stack. Both are arena-shaped
// (indices, not allocations) so a Decoder can be pooled and reused across
// many images without allocating.
type Decoder struct {
	table table
	stack [4096]byte
}

// NewDecoder allocates a Decoder. Callers that decode many images (the
// common case for an animated GIF) should keep one Decoder and call
// Decode repeatedly rather than allocating a new one per image.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads a chain of length-prefixed sub-blocks from src (the caller
// has already read the minimum code size byte that precedes it and passes
// it as rawMinCodeSize), LZW-decompresses it, and writes exactly
// width*height palette indices into dst. dst must already have length
// width*height; Decode never grows or shrinks it.
//
// rawMinCodeSize must be in [2, 8] and numColors must be
// <= 1<<rawMinCodeSize, or ErrBadData is returned before any byte of the
// sub-block chain is consumed.
func (d *Decoder) Decode(src *subblock.Reader, rawMinCodeSize byte, numColors int, dst []byte) error {
	m := int(rawMinCodeSize)
	if m < 2 || m > 8 {
		return ErrBadData
	}
	if numColors > (1 << uint(m)) {
		return ErrBadData
	}

	clear := 1 << uint(m)
	eoi := clear + 1

	br, err := NewBitReader(src)
	if err != nil {
		if errors.Is(err, ErrEmptyChain) {
			return ErrBadData
		}
		return err
	}

	d.table.reset(numColors)

	width := m + 1
	next := clear + 2
	var prevCode uint16
	firstSinceClear := true
	numOut := 0

	for {
		code, err := br.ReadCode(width)
		if err != nil {
			if err == io.EOF {
				// Chain terminated before an EOI code ever appeared.
				return ErrBadData
			}
			return err
		}

		switch {
		case code == uint16(clear):
			width = m + 1
			next = clear + 2
			d.table.reset(numColors)
			firstSinceClear = true
			continue

		case code == uint16(eoi):
			if err := br.Drain(); err != nil {
				return err
			}
			if numOut != len(dst) {
				return ErrBadData
			}
			return nil
		}

		if firstSinceClear {
			if int(code) >= numColors {
				return ErrBadData
			}
			numOut = emit(dst, numOut, []byte{byte(code)})
			prevCode = code
			firstSinceClear = false
			continue
		}

		var n int
		var newSuffix byte
		switch {
		case d.table.inUse(code):
			n, err = d.table.unpack(code, d.stack[:])
			if err != nil {
				return err
			}
			newSuffix = d.table.first(code)

		case code == uint16(next):
			// KwKwK: the code being referenced is the one about to be
			// assigned. Its string is previous's string followed by
			// previous's own first index.
			pn, err := d.table.unpack(prevCode, d.stack[:])
			if err != nil {
				return err
			}
			if pn >= len(d.stack) {
				return ErrFault
			}
			d.stack[pn] = d.table.first(prevCode)
			n = pn + 1
			newSuffix = d.table.first(prevCode)

		default:
			// code > next: references a table slot not yet assigned.
			return ErrBadData
		}

		numOut = emit(dst, numOut, d.stack[:n])

		if next < len(d.table.entries) {
			d.table.add(next, prevCode, newSuffix, d.table.length(prevCode)+1)
			next++
			if next == (1<<uint(width)) && width < 12 {
				width++
			}
		}

		prevCode = code
	}
}

// emit appends src to dst starting at offset pos, stopping early (without
// error) if dst would overflow. The chosen semantics per spec: an overrun
// is truncation, caught by the numOut != len(dst) check once EOI arrives.
func emit(dst []byte, pos int, src []byte) int {
	n := len(dst) - pos
	if n <= 0 {
		return pos
	}
	if n > len(src) {
		n = len(src)
	}
	copy(dst[pos:pos+n], src[:n])
	return pos + n
}

