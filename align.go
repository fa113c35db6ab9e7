package earlyalloc

// AlignUp rounds pos up to the next multiple of align.
// align must be a power of two.
func AlignUp(pos, align uintptr) uintptr {
	return (pos + align - 1) &^ (align - 1)
}

// AlignDown rounds pos down to the previous multiple of align.
// align must be a power of two.
func AlignDown(pos, align uintptr) uintptr {
	return pos &^ (align - 1)
}

// alignUpChecked is AlignUp with overflow detection. ok is false when
// pos + align - 1 wraps around.
func alignUpChecked(pos, align uintptr) (aligned uintptr, ok bool) {
	sum := pos + align - 1
	if sum < pos {
		return 0, false
	}
	return sum &^ (align - 1), true
}

// isPowerOfTwo reports whether v is a power of two. Zero is not.
func isPowerOfTwo(v uintptr) bool {
	return v != 0 && v&(v-1) == 0
}
