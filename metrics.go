package earlyalloc

// TotalBytes returns the capacity of the managed range in bytes.
func (a *EarlyAllocator) TotalBytes() uintptr {
	return a.pEnd - a.bStart
}

// UsedBytes returns the number of bytes consumed by the byte area,
// including internal fragmentation due to alignment.
func (a *EarlyAllocator) UsedBytes() uintptr {
	return a.bPos - a.bStart
}

// AvailableBytes returns the size of the free gap between the byte and
// page bump pointers. Never negative.
func (a *EarlyAllocator) AvailableBytes() uintptr {
	if a.pPos < a.bPos {
		return 0
	}
	return a.pPos - a.bPos
}

// TotalPages returns the capacity of the managed range in whole pages.
func (a *EarlyAllocator) TotalPages() uintptr {
	return (a.pEnd - a.bStart) / PageSize
}

// UsedPages returns the number of pages consumed by the page area.
func (a *EarlyAllocator) UsedPages() uintptr {
	return (a.pEnd - a.pPos) / PageSize
}

// AvailablePages returns the number of whole pages that fit in the free
// gap. Never negative.
func (a *EarlyAllocator) AvailablePages() uintptr {
	return a.AvailableBytes() / PageSize
}

// LiveAllocations returns the count of outstanding byte allocations.
// The byte area is reclaimed when this reaches zero.
func (a *EarlyAllocator) LiveAllocations() uintptr {
	return a.bCount
}

// Metrics returns a snapshot of allocator statistics.
func (a *EarlyAllocator) Metrics() AllocatorMetrics {
	used := a.UsedBytes() + (a.pEnd - a.pPos)
	var utilization float64
	if total := a.TotalBytes(); total > 0 {
		utilization = float64(used) / float64(total)
	}
	return AllocatorMetrics{
		TotalBytes:      a.TotalBytes(),
		UsedBytes:       a.UsedBytes(),
		AvailableBytes:  a.AvailableBytes(),
		TotalPages:      a.TotalPages(),
		UsedPages:       a.UsedPages(),
		AvailablePages:  a.AvailablePages(),
		LiveAllocations: a.LiveAllocations(),
		Utilization:     utilization,
	}
}

// AllocatorMetrics contains statistical information about an allocator.
type AllocatorMetrics struct {
	TotalBytes      uintptr // Capacity of the managed range
	UsedBytes       uintptr // Bytes consumed by the byte area
	AvailableBytes  uintptr // Free gap between the bump pointers
	TotalPages      uintptr // Capacity in whole pages
	UsedPages       uintptr // Pages consumed by the page area
	AvailablePages  uintptr // Whole pages that fit in the free gap
	LiveAllocations uintptr // Outstanding byte allocations
	Utilization     float64 // Ratio of both used areas to capacity (0.0-1.0)
}
