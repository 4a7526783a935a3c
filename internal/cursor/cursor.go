// Package cursor provides a bounds-checked view over a remaining byte slice.
//
// It is the lowest-level primitive of the GIF decoder pipeline: every other
// stage (header parsing, block dispatch, sub-block chaining) reads through a
// Cursor so that a length check happens before any fixed-width read, never
// after.
package cursor

import "errors"

// ErrEOF is returned whenever a read or advance would run past the end of
// the remaining input.
var ErrEOF = errors.New("gif: unexpected end of data")

// Cursor is a read-only view over the tail of an input buffer.
//
// It never mutates or retains the backing slice beyond the view itself;
// the original buffer may be freely reused by the caller once the Cursor is
// dropped.
type Cursor struct {
	buf []byte
}

// New creates a Cursor over buf.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Len returns the number of bytes remaining.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// Require fails with ErrEOF if fewer than n bytes remain. Callers must call
// Require before any cluster of *At reads, then Advance past them.
func (c *Cursor) Require(n int) error {
	if len(c.buf) < n {
		return ErrEOF
	}
	return nil
}

// U8At returns the byte at offset, which must have been covered by a prior
// Require call.
func (c *Cursor) U8At(offset int) byte {
	return c.buf[offset]
}

// U16LEAt returns the little-endian uint16 starting at offset, which must
// have been covered by a prior Require call.
func (c *Cursor) U16LEAt(offset int) uint16 {
	return uint16(c.buf[offset]) | uint16(c.buf[offset+1])<<8
}

// BytesAt returns a (non-copied) slice of n bytes starting at offset, which
// must have been covered by a prior Require call.
func (c *Cursor) BytesAt(offset, n int) []byte {
	return c.buf[offset : offset+n]
}

// Advance drops the first n bytes from the view. It fails with ErrEOF if
// fewer than n bytes remain, rather than silently clamping.
func (c *Cursor) Advance(n int) error {
	if len(c.buf) < n {
		return ErrEOF
	}
	c.buf = c.buf[n:]
	return nil
}

// Remaining returns the unconsumed tail of the input, for components (like
// the sub-block reader) that need to scan ahead themselves.
func (c *Cursor) Remaining() []byte {
	return c.buf
}
