package vbuf

// Storage capacity policy.
//
// Growth and shrink thresholds are deliberately asymmetric: storage grows
// only when completely full and shrinks only when occupancy falls below
// 1/decreaseThreshold of capacity. The gap between the two thresholds
// forms a hysteresis band, preventing the buffer from rapidly thrashing
// (growing and shrinking storage) when adds and removals alternate near a
// capacity boundary.
const (
	// DefaultCapacity is the storage capacity after Clear. Clearing to a
	// small non-zero capacity lets a following burst of Add calls skip the
	// first few growth reallocations.
	DefaultCapacity = 8

	// increaseNum and increaseDen define the 3/2 growth factor.
	increaseNum = 3
	increaseDen = 2

	// decreaseThreshold is the occupancy divisor below which the storage
	// shrinks: a shrink triggers when size < capacity/decreaseThreshold.
	decreaseThreshold = 4

	// decreaseFactor is the divisor applied to capacity when shrinking.
	decreaseFactor = 2
)

// nextCapacity returns the storage capacity to grow to from old.
// It computes ceil(old * 3/2) in pure integer arithmetic.
//
// Callers pass the current capacity for single-element growth; the result
// always exceeds old by at least one. Bulk operations that splice many
// elements at once pass the required total instead, so a single
// reallocation always suffices.
func nextCapacity(old int) int {
	if old == 0 {
		return 1
	}
	return (old*increaseNum + 1) / increaseDen
}

// realloc replaces the storage array with one of exactly capacity slots,
// copying the occupied prefix. Callers must guarantee capacity >= size.
func (b *Buffer[T]) realloc(capacity int) {
	next := make([]slot[T], capacity)
	copy(next, b.slots[:b.size])
	switch {
	case capacity > len(b.slots):
		b.stats.Grows++
	case capacity < len(b.slots):
		b.stats.Shrinks++
	}
	b.slots = next
}
