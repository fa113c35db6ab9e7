package earlyalloc

import (
	"fmt"
	"unsafe"
)

// region is the contiguous backing buffer the allocator hands memory out
// of. buf is the usable window; for the heap backend it is a PageSize-aligned
// sub-slice of a slightly larger allocation, for the mmap backend it is the
// mapping itself (already page aligned by the OS). mapped is non-nil only
// for the mmap backend and holds the slice to unmap on release.
type region struct {
	buf    []byte
	mapped []byte
}

// newHeapRegion allocates a capacity-sized region on the Go heap.
// The base is aligned up to PageSize so page allocations return addresses
// that satisfy their alignment, same as the mmap backend.
func newHeapRegion(capacity int) (region, error) {
	if capacity <= 0 {
		return region{}, fmt.Errorf("capacity %d must be positive: %w", capacity, ErrInvalidParam)
	}
	raw := make([]byte, capacity+PageSize)
	base := uintptr(unsafe.Pointer(&raw[0]))
	off := AlignUp(base, PageSize) - base
	return region{buf: raw[off : off+uintptr(capacity)]}, nil
}

// base returns a pointer to the first byte of the region.
func (r *region) base() unsafe.Pointer {
	return unsafe.Pointer(&r.buf[0])
}

// size returns the region capacity in bytes.
func (r *region) size() uintptr {
	return uintptr(len(r.buf))
}
