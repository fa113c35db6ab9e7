// Package earlyalloc implements a fixed-capacity, double-ended bump
// allocator for the earliest phase of system bring-up, before a full
// heap and physical-page allocator exist.
//
// # Overview
//
// One contiguous arena serves two independent allocation disciplines:
//
//   - Byte allocations (arbitrary size and alignment) grow forward
//     from the low end, for bootstrap data structures.
//   - Page allocations (fixed 4 KiB granularity) grow backward from
//     the high end, for early page-table frames and similar objects.
//
// The layout at any point in time is
//
//	[ bytes-used | avail-area | pages-used ]
//	|            | -->    <-- |            |
//	start       bPos         pPos         end
//
// An allocation fails with ErrNoMemory once the two bump pointers
// would collide.
//
// # Basic Usage
//
//	a, err := earlyalloc.New(1 << 20)
//	if err != nil {
//		// handle error
//	}
//
//	// Byte allocations
//	ptr, err := a.Alloc(earlyalloc.Layout{Size: 64, Align: 8})
//	node, err := earlyalloc.Make[Node](a)
//
//	// Page allocations
//	addr, err := a.AllocPages(1, earlyalloc.PageSize)
//
// # Reclamation Policy
//
// Byte allocations are reclaimed in bulk: the allocator keeps only a
// count of live allocations, and Dealloc rewinds the whole byte area
// once that count reaches zero. Individual freed regions are never
// reused before then. Page allocations are permanent; DeallocPages is
// a no-op. This trades fine-grained reuse for O(1) operations and zero
// per-allocation metadata, which fits a short-lived bootstrap phase
// whose allocations are collectively retired together.
//
// # Thread Safety
//
// EarlyAllocator is single-threaded by contract and carries no internal
// synchronization. For concurrent access, use SafeAllocator:
//
//	s, err := earlyalloc.NewSafe(1 << 20)
//	ptr, err := s.Alloc(earlyalloc.Layout{Size: 64, Align: 8})
//
// # Backing Region
//
// New backs the arena with a Go heap buffer whose base is aligned up to
// PageSize. NewMmap backs it with an anonymous private mapping (unix
// only), which Close unmaps. Either way page allocations return
// addresses satisfying their requested alignment up to PageSize.
//
// # Important Notes
//
//   - Returned memory is uninitialized unless using Make or
//     MakeSliceZeroed.
//   - Double-free is a silent no-op; use-after-reclaim is not detected.
//     Callers of a bootstrap allocator are assumed correct.
//   - AddMemory always fails: the allocator manages exactly one static
//     region.
//   - Failed calls never mutate allocator state.
package earlyalloc
