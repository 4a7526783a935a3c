// Package subblock iterates GIF's chained length-prefixed sub-blocks.
//
// A sub-block chain is a sequence of (1-byte length, length bytes) pairs,
// terminated by a zero-length block. It appears twice in the format: as the
// payload of most extension blocks, and as the LZW-compressed image data
// following an image descriptor. Reader serves both: ReadByte feeds the LZW
// bit reader a flat logical byte stream across sub-block boundaries, and
// SkipAll fast-forwards past a chain whose content the caller doesn't care
// about (plain text, comment, application, and unrecognized extensions).
package subblock

import (
	"io"

	"github.com/deepteams/gif/internal/cursor"
)

// Reader walks one sub-block chain to completion.
type Reader struct {
	c        *cursor.Cursor
	cur      []byte // unread tail of the current sub-block
	done     bool   // the zero-length terminator has been consumed
	consumed bool   // at least one byte of the logical stream has been returned
}

// New creates a Reader over the chain starting at c's current position.
// The chain's bytes (and only those bytes) are consumed from c.
func New(c *cursor.Cursor) *Reader {
	return &Reader{c: c}
}

// ReadByte returns the next byte of the logical stream. It returns io.EOF
// once the zero-length terminator has been read (a properly terminated,
// possibly empty, chain) and any other error (always cursor.ErrEOF) if the
// input runs out before a terminator is seen.
func (r *Reader) ReadByte() (byte, error) {
	for len(r.cur) == 0 {
		if r.done {
			return 0, io.EOF
		}
		if err := r.c.Require(1); err != nil {
			return 0, err
		}
		n := int(r.c.U8At(0))
		_ = r.c.Advance(1)
		if n == 0 {
			r.done = true
			return 0, io.EOF
		}
		if err := r.c.Require(n); err != nil {
			return 0, err
		}
		r.cur = r.c.BytesAt(0, n)
		_ = r.c.Advance(n)
	}
	b := r.cur[0]
	r.cur = r.cur[1:]
	r.consumed = true
	return b, nil
}

// AtChainStart reports whether no byte has been consumed from the logical
// stream yet and the terminator has not been reached (the chain may still
// be entirely unread).
func (r *Reader) AtChainStart() bool {
	return !r.consumed && !r.done
}

// SkipAll discards the remainder of the chain up to and including the
// terminator, without copying any payload bytes out.
func SkipAll(c *cursor.Cursor) error {
	for {
		if err := c.Require(1); err != nil {
			return err
		}
		n := int(c.U8At(0))
		if err := c.Advance(1); err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		if err := c.Require(n); err != nil {
			return err
		}
		if err := c.Advance(n); err != nil {
			return err
		}
	}
}
