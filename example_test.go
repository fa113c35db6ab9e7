package earlyalloc

import (
	"fmt"
	"sync"
	"unsafe"
)

// Example demonstrates the double-ended allocation pattern.
func Example() {
	a, err := New(8192)
	if err != nil {
		panic(err)
	}

	// Byte allocations grow from the low end.
	layout := Layout{Size: 64, Align: 8}
	p, err := a.Alloc(layout)
	if err != nil {
		panic(err)
	}
	fmt.Printf("used bytes: %d\n", a.UsedBytes())

	// Page allocations grow from the high end.
	if _, err := a.AllocPages(1, PageSize); err != nil {
		panic(err)
	}
	fmt.Printf("used pages: %d\n", a.UsedPages())
	fmt.Printf("available bytes: %d\n", a.AvailableBytes())

	// Releasing the last live byte allocation reclaims the byte area.
	a.Dealloc(p, layout)
	fmt.Printf("after dealloc, used bytes: %d\n", a.UsedBytes())

	// Output:
	// used bytes: 64
	// used pages: 1
	// available bytes: 4032
	// after dealloc, used bytes: 0
}

// ExampleMake demonstrates typed allocation from the arena.
func ExampleMake() {
	a, err := New(4096)
	if err != nil {
		panic(err)
	}

	type frame struct {
		addr uintptr
		refs uint32
	}

	f, err := Make[frame](a)
	if err != nil {
		panic(err)
	}
	f.addr = 0x1000
	f.refs = 1
	fmt.Printf("frame: addr=%#x refs=%d\n", f.addr, f.refs)

	a.Dealloc(unsafe.Pointer(f), LayoutOf[frame]())

	// Output:
	// frame: addr=0x1000 refs=1
}

// ExampleSafeAllocator demonstrates sharing one allocator across goroutines.
func ExampleSafeAllocator() {
	s, err := NewSafe(1 << 16)
	if err != nil {
		panic(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Alloc(Layout{Size: 128, Align: 8}); err != nil {
				panic(err)
			}
		}()
	}
	wg.Wait()

	fmt.Printf("live allocations: %d\n", s.Metrics().LiveAllocations)

	// Output:
	// live allocations: 4
}
