package earlyalloc

import "unsafe"

// Make returns a pointer to a zeroed T stored inside the arena.
// The returned pointer is valid until the byte area is bulk-reclaimed
// or the allocator is closed. Release it with a.Dealloc and LayoutOf[T].
func Make[T any](a *EarlyAllocator) (*T, error) {
	layout := LayoutOf[T]()
	p, err := a.Alloc(layout)
	if err != nil {
		return nil, err
	}
	if layout.Size > 0 {
		clear(unsafe.Slice((*byte)(p), layout.Size))
	}
	return (*T)(p), nil
}

// MakeUninit returns a *T located in the arena without zeroing memory.
// Faster than Make, but the contents are undefined until written.
func MakeUninit[T any](a *EarlyAllocator) (*T, error) {
	p, err := a.Alloc(LayoutOf[T]())
	if err != nil {
		return nil, err
	}
	return (*T)(p), nil
}

// MakeSlice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized. Fails with ErrInvalidParam if n is
// negative; n == 0 yields a nil slice without consuming arena space.
func MakeSlice[T any](a *EarlyAllocator, n int) ([]T, error) {
	if n < 0 {
		return nil, ErrInvalidParam
	}
	if n == 0 {
		return nil, nil
	}
	elem := LayoutOf[T]()
	if elem.Size > 0 && uintptr(n) > ^uintptr(0)/elem.Size {
		return nil, ErrNoMemory
	}
	p, err := a.Alloc(Layout{Size: elem.Size * uintptr(n), Align: elem.Align})
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(p), n), nil
}

// MakeSliceZeroed allocates a slice of n elements of type T with zeroed
// memory.
func MakeSliceZeroed[T any](a *EarlyAllocator, n int) ([]T, error) {
	s, err := MakeSlice[T](a, n)
	if err != nil {
		return nil, err
	}
	clear(s)
	return s, nil
}

// SliceLayout returns the Layout covering a slice of n elements of T,
// for handing back to Dealloc.
func SliceLayout[T any](n int) Layout {
	elem := LayoutOf[T]()
	return Layout{Size: elem.Size * uintptr(n), Align: elem.Align}
}
