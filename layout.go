package earlyalloc

import "unsafe"

// Layout describes the size and alignment of a byte allocation request.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// NewLayout builds a Layout, validating that align is a power of two.
// An align of zero is treated as one.
func NewLayout(size, align uintptr) (Layout, error) {
	if align == 0 {
		align = 1
	}
	if !isPowerOfTwo(align) {
		return Layout{}, ErrInvalidParam
	}
	return Layout{Size: size, Align: align}, nil
}

// LayoutOf returns the Layout of T, matching the compiler's size and
// alignment for the type.
func LayoutOf[T any]() Layout {
	var zero T
	return Layout{
		Size:  unsafe.Sizeof(zero),
		Align: unsafe.Alignof(zero),
	}
}
