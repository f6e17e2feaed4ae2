// Package vbuf implements a generic growable-array container.
// It supports efficient indexed access, shift-based insertion and removal,
// stable in-place sorting and subsequence search.
package vbuf

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

var (
	ErrIndexOutOfBounds = errors.New("index is out of bounds")
	ErrCapacityTooSmall = errors.New("capacity is smaller than the buffer size")
	ErrMalformedState   = errors.New("buffer state is malformed")
)

// slot is a single storage cell. The occupied flag makes an empty cell
// representable without reserving a sentinel value of T.
type slot[T any] struct {
	val      T
	occupied bool
}

// Stats represents buffer reallocation stats.
type Stats struct {
	Grows   uint64 // Number of reallocations to a larger storage array.
	Shrinks uint64 // Number of reallocations to a smaller storage array.
}

// Reset resets stats for re-use.
func (s *Stats) Reset() {
	s.Grows = 0
	s.Shrinks = 0
}

// Buffer represents a growable in-memory container of elements of type T.
// Its storage is a single array of optionally-occupied slots: the first
// Len slots are occupied, the remaining Cap-Len slots are empty. The
// occupied prefix never has holes.
//
// The buffer exclusively owns its storage; no method exposes a slot, only
// element values. It is a single-owner value and is not safe for concurrent
// use: access from multiple goroutines must be serialized by the caller.
type Buffer[T any] struct {
	logger *slog.Logger // Default logger, used only on unrecoverable faults.
	slots  []slot[T]    // Storage array; len(slots) is the capacity.
	size   int          // Number of occupied slots.
	stats  Stats        // Reallocation counters.
}

// New creates a new, empty Buffer with the given initial capacity.
// A capacity of 0 is valid; the first Add grows the storage.
// It panics if capacity is negative.
func New[T any](capacity int) *Buffer[T] {
	return NewWithLogger[T](capacity, slog.Default())
}

// NewWithLogger creates a new, empty Buffer that reports unrecoverable
// internal faults to the given logger.
func NewWithLogger[T any](capacity int, logger *slog.Logger) *Buffer[T] {
	if capacity < 0 {
		panic(fmt.Errorf("negative buffer capacity: %d", capacity))
	}
	return &Buffer[T]{
		logger: logger,
		slots:  make([]slot[T], capacity),
	}
}

// Len returns the number of occupied elements.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Cap returns the length of the underlying storage array.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// Stats returns the buffer's aggregated reallocation stats.
func (b *Buffer[T]) Stats() Stats {
	return b.stats
}

// Add appends x after the last occupied slot, growing the storage when
// full. Amortized O(1); the growing call is O(Len).
func (b *Buffer[T]) Add(x T) {
	if b.size == len(b.slots) {
		b.realloc(nextCapacity(len(b.slots)))
	}
	b.slots[b.size] = slot[T]{val: x, occupied: true}
	b.size++
}

// Get returns the element at index i.
func (b *Buffer[T]) Get(i int) (T, error) {
	if i < 0 || i >= b.size {
		var zero T
		return zero, b.boundsErr(i)
	}
	return b.slots[i].val, nil
}

// GetOpt returns the element at index i.
// The ok result is false instead of an error when i is out of bounds.
func (b *Buffer[T]) GetOpt(i int) (T, bool) {
	if i < 0 || i >= b.size {
		var zero T
		return zero, false
	}
	return b.slots[i].val, true
}

// Put overwrites the element at index i in place.
func (b *Buffer[T]) Put(i int, x T) error {
	if i < 0 || i >= b.size {
		return b.boundsErr(i)
	}
	b.slots[i].val = x
	return nil
}

// RemoveLast removes and returns the last element.
// The ok result is false when the buffer is empty.
// Shrinks the storage when occupancy falls below the shrink threshold.
// Amortized O(1).
func (b *Buffer[T]) RemoveLast() (T, bool) {
	if b.size == 0 {
		var zero T
		return zero, false
	}
	b.size--
	x := b.slots[b.size].val
	b.slots[b.size] = slot[T]{} // Unreference the vacated slot.
	if c := len(b.slots); b.size < c/decreaseThreshold {
		b.realloc(c / decreaseFactor)
	}
	return x, true
}

// Remove removes and returns the element at index i, shifting all later
// elements left by one. When the removal trips the shrink threshold, the
// shift and the reallocation are combined into a single copy pass instead
// of shifting first and reallocating second. O(Len) worst case.
func (b *Buffer[T]) Remove(i int) (T, error) {
	if i < 0 || i >= b.size {
		var zero T
		return zero, b.boundsErr(i)
	}
	x := b.slots[i].val
	newSize := b.size - 1
	if c := len(b.slots); newSize < c/decreaseThreshold {
		// Copy the kept elements straight into the smaller array, skipping i.
		next := make([]slot[T], c/decreaseFactor)
		copy(next, b.slots[:i])
		copy(next[i:], b.slots[i+1:b.size])
		b.slots = next
		b.stats.Shrinks++
	} else {
		copy(b.slots[i:], b.slots[i+1:b.size])
		b.slots[newSize] = slot[T]{} // Unreference the vacated tail slot.
	}
	b.size = newSize
	return x, nil
}

// Insert places x at index i, shifting elements from i onward right by
// one. Inserting at i == Len is equivalent to Add. When growth is required
// the reallocation and the splice are combined into a single copy pass.
// O(Len) worst case.
func (b *Buffer[T]) Insert(i int, x T) error {
	if i < 0 || i > b.size {
		return b.boundsErr(i)
	}
	if b.size == len(b.slots) {
		next := make([]slot[T], nextCapacity(len(b.slots)))
		copy(next, b.slots[:i])
		copy(next[i+1:], b.slots[i:b.size])
		b.slots = next
		b.stats.Grows++
	} else {
		copy(b.slots[i+1:b.size+1], b.slots[i:b.size])
	}
	b.slots[i] = slot[T]{val: x, occupied: true}
	b.size++
	return nil
}

// InsertBuffer splices all of other's elements at index i, shifting
// elements from i onward right by other.Len. Growth takes at most one
// reallocation, sized for the combined total and combined with the splice
// into a single copy pass. Splicing a buffer into itself is not supported.
func (b *Buffer[T]) InsertBuffer(i int, other *Buffer[T]) error {
	if i < 0 || i > b.size {
		return b.boundsErr(i)
	}
	n := other.size
	if n == 0 {
		return nil
	}
	required := b.size + n
	if required > len(b.slots) {
		next := make([]slot[T], nextCapacity(required))
		copy(next, b.slots[:i])
		copy(next[i:], other.slots[:n])
		copy(next[i+n:], b.slots[i:b.size])
		b.slots = next
		b.stats.Grows++
	} else {
		copy(b.slots[i+n:required], b.slots[i:b.size])
		copy(b.slots[i:i+n], other.slots[:n])
	}
	b.size = required
	return nil
}

// FilterEntries keeps only the elements for which keep returns true,
// preserving relative order. The predicate runs exactly once per element
// and sees the index and value as they were before any removal. Freed tail
// slots are cleared; the storage shrinks when the surviving count falls
// below the shrink threshold. O(Len).
func (b *Buffer[T]) FilterEntries(keep func(i int, x T) bool) {
	kept := 0
	for i := range b.size {
		if keep(i, b.slots[i].val) {
			if kept != i {
				b.slots[kept] = b.slots[i]
			}
			kept++
		}
	}
	for i := kept; i < b.size; i++ {
		b.slots[i] = slot[T]{} // Unreference the freed tail slots.
	}
	b.size = kept
	if c := len(b.slots); kept < c/decreaseThreshold {
		b.realloc(c / decreaseFactor)
	}
}

// Append adds all of other's elements after the last occupied slot in
// order, reserving the required capacity in at most one reallocation.
// Appending a buffer to itself is supported. O(other.Len) amortized.
func (b *Buffer[T]) Append(other *Buffer[T]) {
	n := other.size
	if n == 0 {
		return
	}
	required := b.size + n
	if required > len(b.slots) {
		b.realloc(nextCapacity(required))
	}
	copy(b.slots[b.size:required], other.slots[:n])
	b.size = required
}

// Reserve reallocates the storage array to exactly the given capacity,
// preserving all occupied elements in order. It returns
// ErrCapacityTooSmall when capacity is below the current size, leaving the
// buffer unchanged. O(capacity).
func (b *Buffer[T]) Reserve(capacity int) error {
	if capacity < b.size {
		return fmt.Errorf("%w: capacity %d, size %d", ErrCapacityTooSmall, capacity, b.size)
	}
	b.realloc(capacity)
	return nil
}

// Clear removes all elements and resets the storage to DefaultCapacity
// rather than zero, so a burst of Add calls right after clearing skips the
// first few tiny growth reallocations. Idempotent.
func (b *Buffer[T]) Clear() {
	b.slots = make([]slot[T], DefaultCapacity)
	b.size = 0
}

// String renders the occupied elements, e.g. "[1 2 3]".
func (b *Buffer[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range b.size {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", b.slots[i].val)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Print outputs a visual representation of the buffer for debugging
// purposes. It prints each storage slot as a row, empty slots included.
func (b *Buffer[T]) Print(w io.Writer) {
	if b == nil {
		return
	}
	fmt.Fprintf(w, "size=%d cap=%d\n", b.size, len(b.slots))

	// Calculate the padding width needed to align all slot indexes.
	// The width is the number of digits in the highest slot index.
	paddingWidth := 1
	if len(b.slots) > 1 {
		paddingWidth = len(strconv.Itoa(len(b.slots) - 1))
	}

	for i, s := range b.slots {
		if !s.occupied {
			fmt.Fprintf(w, "%*d: [empty]\n", paddingWidth, i)
			continue
		}
		fmt.Fprintf(w, "%*d: %v\n", paddingWidth, i, s.val)
	}
}

func (b *Buffer[T]) boundsErr(i int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, b.size)
}

// malformed reports an expected-occupied slot found empty inside the
// occupied prefix. This signals a bug in the engine itself, not a caller
// error, and is unrecoverable: it logs and panics with ErrMalformedState.
func (b *Buffer[T]) malformed(i int) {
	err := fmt.Errorf("%w: expected occupied slot at index %d, size %d", ErrMalformedState, i, b.size)
	b.logger.Error(
		"Unrecoverable buffer corruption detected",
		"error", err,
	)
	panic(err)
}
