package earlyalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignUp(t *testing.T) {
	tests := []struct {
		pos, align, want uintptr
	}{
		{0, 1, 0},
		{0, 4096, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{4095, 4096, 4096},
		{4097, 4096, 8192},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AlignUp(tt.pos, tt.align), "AlignUp(%d, %d)", tt.pos, tt.align)
	}
}

func TestAlignDown(t *testing.T) {
	tests := []struct {
		pos, align, want uintptr
	}{
		{0, 1, 0},
		{7, 8, 0},
		{8, 8, 8},
		{4095, 4096, 0},
		{8191, 4096, 4096},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AlignDown(tt.pos, tt.align), "AlignDown(%d, %d)", tt.pos, tt.align)
	}
}

func TestAlignUpCheckedOverflow(t *testing.T) {
	_, ok := alignUpChecked(^uintptr(0)-2, 8)
	assert.False(t, ok)

	aligned, ok := alignUpChecked(16, 8)
	assert.True(t, ok)
	assert.Equal(t, uintptr(16), aligned)
}

func TestIsPowerOfTwo(t *testing.T) {
	assert.False(t, isPowerOfTwo(0))
	assert.True(t, isPowerOfTwo(1))
	assert.True(t, isPowerOfTwo(2))
	assert.False(t, isPowerOfTwo(3))
	assert.True(t, isPowerOfTwo(4096))
	assert.False(t, isPowerOfTwo(4097))
}
