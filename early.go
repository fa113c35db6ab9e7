package earlyalloc

import (
	"fmt"
	"unsafe"
)

// PageSize is the granularity of page allocations (4 KiB).
const PageSize = 4096

// EarlyAllocator is a fixed-capacity, double-ended bump allocator for
// system bring-up: byte allocations grow forward from the low end, page
// allocations grow backward from the high end, out of one contiguous
// arena.
//
//	[ bytes-used | avail-area | pages-used ]
//	|            | -->    <-- |            |
//	bStart      bPos         pPos         pEnd
//
// bCount tracks live byte allocations; when it drops to zero the whole
// byte area is reclaimed at once. The page area is never reclaimed.
//
// Not goroutine-safe. Use SafeAllocator for concurrent access.
type EarlyAllocator struct {
	region region
	bStart uintptr
	bPos   uintptr
	pPos   uintptr
	pEnd   uintptr
	bCount uintptr
}

// New creates an EarlyAllocator backed by a capacity-sized heap region.
// The full arena starts free.
func New(capacity int) (*EarlyAllocator, error) {
	r, err := newHeapRegion(capacity)
	if err != nil {
		return nil, err
	}
	a := &EarlyAllocator{region: r}
	a.reset(0, r.size())
	return a, nil
}

// NewMmap creates an EarlyAllocator backed by an anonymous mmap region.
// Fails with ErrInvalidParam on platforms without mmap. Call Close to
// unmap the region once the allocator is retired.
func NewMmap(capacity int) (*EarlyAllocator, error) {
	r, err := newMmapRegion(capacity)
	if err != nil {
		return nil, err
	}
	a := &EarlyAllocator{region: r}
	a.reset(0, r.size())
	return a, nil
}

// reset re-establishes the bump pointers over [start, end).
func (a *EarlyAllocator) reset(start, end uintptr) {
	a.bStart = start
	a.bPos = start
	a.pPos = end
	a.pEnd = end
	a.bCount = 0
}

// Init establishes the managed range [start, start+size) within the
// arena. Calling Init on an allocator that has already served requests
// acts as a fresh reset: all outstanding allocations are forgotten and
// both bump pointers return to their bounds. Fails with ErrInvalidParam
// if the range does not fit the arena.
func (a *EarlyAllocator) Init(start, size uintptr) error {
	a.panicIfClosed()
	end := start + size
	if end < start || end > a.region.size() {
		return fmt.Errorf("init range [%d, %d+%d) exceeds arena size %d: %w",
			start, start, size, a.region.size(), ErrInvalidParam)
	}
	a.reset(start, end)
	return nil
}

// AddMemory always fails with ErrInvalidParam: the allocator manages
// exactly one static region and precedes the memory-discovery phase
// that would supply more.
func (a *EarlyAllocator) AddMemory(start, size uintptr) error {
	return fmt.Errorf("adding memory region [%d, %d) is not supported: %w",
		start, start+size, ErrInvalidParam)
}

// Alloc serves a byte allocation of the given layout from the low end
// of the arena. The returned pointer is aligned to layout.Align and the
// memory is uninitialized. Fails with ErrNoMemory when the free gap
// between the two bump pointers is exhausted or the arithmetic would
// overflow; a failed call leaves the allocator unchanged.
func (a *EarlyAllocator) Alloc(layout Layout) (unsafe.Pointer, error) {
	a.panicIfClosed()
	align := layout.Align
	if align == 0 {
		align = 1
	}
	if !isPowerOfTwo(align) {
		return nil, fmt.Errorf("alignment %d is not a power of two: %w", align, ErrInvalidParam)
	}

	aligned, ok := alignUpChecked(a.bPos, align)
	if !ok {
		return nil, ErrNoMemory
	}
	newPos := aligned + layout.Size
	if newPos < aligned {
		// size addition wrapped
		return nil, ErrNoMemory
	}
	// Collision check against the page bump pointer.
	if newPos > a.pPos {
		return nil, fmt.Errorf("%d bytes align %d with %d available: %w",
			layout.Size, align, a.AvailableBytes(), ErrNoMemory)
	}

	a.bPos = newPos
	a.bCount++
	return unsafe.Add(a.region.base(), aligned), nil
}

// Dealloc releases one byte allocation. Individual regions are not
// tracked: the live count is decremented and only when it reaches zero
// is the whole byte area reclaimed in one step. A Dealloc with no live
// allocations is a silent no-op (double-free is tolerated, not
// detected). ptr and layout are accepted for interface conformance and
// do not affect the reclaim decision.
func (a *EarlyAllocator) Dealloc(ptr unsafe.Pointer, layout Layout) {
	a.panicIfClosed()
	if a.bCount == 0 {
		return
	}
	a.bCount--
	if a.bCount == 0 {
		a.bPos = a.bStart
	}
}

// AllocPages serves numPages pages from the high end of the arena,
// aligned to max(PageSize, alignPow2). The candidate position is aligned
// downward, which may consume slightly more than the requested size; the
// page bump pointer never moves upward past previously committed pages.
// Returns the absolute address of the first page. Requesting zero pages
// fails with ErrNoMemory. A failed call leaves the allocator unchanged.
func (a *EarlyAllocator) AllocPages(numPages, alignPow2 uintptr) (uintptr, error) {
	a.panicIfClosed()
	if numPages == 0 {
		return 0, fmt.Errorf("zero pages requested: %w", ErrNoMemory)
	}
	if numPages > ^uintptr(0)/PageSize {
		return 0, ErrNoMemory
	}
	totalSize := numPages * PageSize

	align := alignPow2
	if align < PageSize {
		align = PageSize
	}
	if !isPowerOfTwo(align) {
		return 0, fmt.Errorf("alignment %d is not a power of two: %w", alignPow2, ErrInvalidParam)
	}

	if totalSize > a.pPos {
		// subtraction would wrap below zero
		return 0, ErrNoMemory
	}
	newPos := AlignDown(a.pPos-totalSize, align)
	// Collision check against the byte bump pointer.
	if newPos < a.bPos {
		return 0, fmt.Errorf("%d pages align %d with %d available: %w",
			numPages, align, a.AvailablePages(), ErrNoMemory)
	}

	a.pPos = newPos
	return uintptr(a.region.base()) + newPos, nil
}

// DeallocPages is a deliberate no-op: pages handed out by this allocator
// become permanent structures (early page tables and the like) and are
// never returned.
func (a *EarlyAllocator) DeallocPages(addr, numPages uintptr) {
}

// Close retires the allocator, unmapping the region if mmap-backed.
// Any subsequent operation panics. Close is optional for heap-backed
// allocators, which may simply be abandoned.
func (a *EarlyAllocator) Close() error {
	if a.region.buf == nil {
		return nil
	}
	err := a.region.release()
	a.region = region{}
	return err
}

// panicIfClosed panics if the allocator has been closed.
func (a *EarlyAllocator) panicIfClosed() {
	if a.region.buf == nil {
		panic("earlyalloc: use after Close()")
	}
}
