package gif

import (
	"errors"

	"github.com/deepteams/gif/internal/container"
	"github.com/deepteams/gif/internal/cursor"
	"github.com/deepteams/gif/internal/lzw"
)

// Kind classifies the failure mode of a decode, mirroring the error
// taxonomy a C decoder would return as an integer status code.
type Kind int

const (
	// KindEOF means the input was truncated relative to what a length
	// field or block structure demanded.
	KindEOF Kind = iota
	// KindBadData means the input was structurally malformed: a bad
	// signature, invalid geometry, an out-of-range color index, a
	// reserved value violated, or any other rule in §4 broken.
	KindBadData
	// KindNoMem means a well-formed field combination would require an
	// unreasonably large allocation. Go has no recoverable
	// allocation-failure path (make panics rather than erroring), so this
	// is raised synthetically by a resource-limit check ahead of the
	// allocation it would otherwise force, rather than by an actual
	// failed allocation.
	KindNoMem
	// KindFault means an internal invariant was violated — a guard that
	// should be unreachable on any input tripped. Its presence indicates
	// a bug in this package, not a malformed file.
	KindFault
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "unexpected end of data"
	case KindBadData:
		return "malformed data"
	case KindNoMem:
		return "resource limit exceeded"
	case KindFault:
		return "internal invariant violation"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by Parse, and by Decode and
// DecodeConfig for every failure except an error while reading from their
// io.Reader (that one is returned wrapped with fmt.Errorf, not as *Error).
// Kind classifies the failure for programmatic handling; the wrapped error
// (if any) carries additional detail for humans.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "gif: " + e.Kind.String() + ": " + e.Err.Error()
	}
	return "gif: " + e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// classify maps an error from internal/cursor, internal/subblock,
// internal/lzw, or internal/container into a *Error with the right Kind.
// Those packages each carry their own small sentinel set rather than
// depending on this one; classify is the single place that translates
// between the two layers.
func classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, cursor.ErrEOF):
		return &Error{Kind: KindEOF, Err: err}
	case errors.Is(err, container.ErrFault), errors.Is(err, lzw.ErrFault):
		return &Error{Kind: KindFault, Err: err}
	case errors.Is(err, container.ErrResourceLimit):
		return &Error{Kind: KindNoMem, Err: err}
	case errors.Is(err, container.ErrBadData), errors.Is(err, lzw.ErrBadData):
		return &Error{Kind: KindBadData, Err: err}
	default:
		return &Error{Kind: KindBadData, Err: err}
	}
}
