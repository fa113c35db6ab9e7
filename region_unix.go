//go:build unix

package earlyalloc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// newMmapRegion maps an anonymous private region of capacity bytes.
// The kernel returns a page-aligned base, so no manual base alignment
// is needed.
func newMmapRegion(capacity int) (region, error) {
	if capacity <= 0 {
		return region{}, fmt.Errorf("capacity %d must be positive: %w", capacity, ErrInvalidParam)
	}
	buf, err := unix.Mmap(-1, 0, capacity,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return region{}, fmt.Errorf("mmap %d bytes: %w", capacity, err)
	}
	return region{buf: buf, mapped: buf}, nil
}

// release unmaps an mmap-backed region. Heap-backed regions are left to
// the garbage collector.
func (r *region) release() error {
	if r.mapped == nil {
		return nil
	}
	return unix.Munmap(r.mapped)
}
