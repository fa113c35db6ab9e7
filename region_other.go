//go:build !unix

package earlyalloc

import "fmt"

// newMmapRegion is unavailable without mmap support.
func newMmapRegion(capacity int) (region, error) {
	return region{}, fmt.Errorf("mmap-backed region not supported on this platform: %w", ErrInvalidParam)
}

// release is a no-op for heap-backed regions.
func (r *region) release() error {
	return nil
}
