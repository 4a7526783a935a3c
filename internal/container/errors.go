package container

import "errors"

// ErrBadData, ErrFault, and ErrResourceLimit are this package's error
// taxonomy; truncation is reported as cursor.ErrEOF, propagated unchanged
// from whichever internal package first hit the short read.
var (
	ErrBadData = errors.New("gif: malformed data")
	ErrFault   = errors.New("gif: internal invariant violation")

	// ErrResourceLimit is returned when a well-formed field combination
	// would require an unreasonably large allocation (the synthetic
	// stand-in for a C decoder's allocation-failure path: Go's make
	// panics rather than returning an error, so this package rejects the
	// input before ever attempting the allocation).
	ErrResourceLimit = errors.New("gif: image dimensions exceed the resource limit")
)
