package earlyalloc

import (
	"sync"
	"unsafe"
)

// SafeAllocator is a mutex-protected wrapper around EarlyAllocator for
// concurrent access. The allocator itself carries no synchronization by
// contract; callers that must share one instance across goroutines wrap
// it in this scoped-lock wrapper instead.
type SafeAllocator struct {
	mu sync.Mutex
	a  *EarlyAllocator
}

// NewSafe creates a thread-safe allocator backed by a heap region.
func NewSafe(capacity int) (*SafeAllocator, error) {
	a, err := New(capacity)
	if err != nil {
		return nil, err
	}
	return &SafeAllocator{a: a}, nil
}

// NewSafeMmap creates a thread-safe allocator backed by an mmap region.
func NewSafeMmap(capacity int) (*SafeAllocator, error) {
	a, err := NewMmap(capacity)
	if err != nil {
		return nil, err
	}
	return &SafeAllocator{a: a}, nil
}

// Init thread-safely re-establishes the managed range.
func (s *SafeAllocator) Init(start, size uintptr) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Init(start, size)
}

// AddMemory thread-safely fails with ErrInvalidParam.
func (s *SafeAllocator) AddMemory(start, size uintptr) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AddMemory(start, size)
}

// Alloc thread-safely serves a byte allocation.
func (s *SafeAllocator) Alloc(layout Layout) (unsafe.Pointer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(layout)
}

// Dealloc thread-safely releases one byte allocation.
func (s *SafeAllocator) Dealloc(ptr unsafe.Pointer, layout Layout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Dealloc(ptr, layout)
}

// AllocPages thread-safely serves a page allocation.
func (s *SafeAllocator) AllocPages(numPages, alignPow2 uintptr) (uintptr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocPages(numPages, alignPow2)
}

// DeallocPages thread-safely does nothing, like the wrapped method.
func (s *SafeAllocator) DeallocPages(addr, numPages uintptr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.DeallocPages(addr, numPages)
}

// Close thread-safely retires the allocator.
func (s *SafeAllocator) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Close()
}

// Metrics thread-safely returns a snapshot of allocator statistics.
func (s *SafeAllocator) Metrics() AllocatorMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// TotalBytes thread-safely returns the managed capacity in bytes.
func (s *SafeAllocator) TotalBytes() uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TotalBytes()
}

// UsedBytes thread-safely returns the bytes consumed by the byte area.
func (s *SafeAllocator) UsedBytes() uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.UsedBytes()
}

// AvailableBytes thread-safely returns the size of the free gap.
func (s *SafeAllocator) AvailableBytes() uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AvailableBytes()
}

// TotalPages thread-safely returns the managed capacity in whole pages.
func (s *SafeAllocator) TotalPages() uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TotalPages()
}

// UsedPages thread-safely returns the pages consumed by the page area.
func (s *SafeAllocator) UsedPages() uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.UsedPages()
}

// AvailablePages thread-safely returns the whole pages left in the gap.
func (s *SafeAllocator) AvailablePages() uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AvailablePages()
}

// SafeMake thread-safely returns a pointer to a zeroed T inside the arena.
func SafeMake[T any](s *SafeAllocator) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Make[T](s.a)
}

// SafeMakeSlice thread-safely allocates a slice of n elements of type T.
func SafeMakeSlice[T any](s *SafeAllocator, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MakeSlice[T](s.a, n)
}
