package earlyalloc

import "errors"

var (
	// ErrNoMemory is returned when an allocation cannot be satisfied:
	// the free gap between the byte and page bump pointers is exhausted,
	// the size arithmetic overflows, or zero pages were requested.
	ErrNoMemory = errors.New("no memory")

	// ErrInvalidParam is returned for unsupported operations or malformed
	// arguments, e.g. adding a memory region after construction or a
	// non-power-of-two alignment.
	ErrInvalidParam = errors.New("invalid parameter")
)
