package vbuf

import "iter"

// All returns a forward iterator over index/element pairs in order.
//
// The iterator is non-snapshotting: it holds only a numeric cursor and
// reads through the live buffer, and the size observed at creation time is
// not re-validated. Mutating the buffer while iterating is unsupported and
// can skip, repeat or yield stale elements.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(i, b.slots[i].val) {
				return
			}
		}
	}
}

// Values returns a forward iterator over elements in order.
// It has the same non-snapshotting contract as All.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(b.slots[i].val) {
				return
			}
		}
	}
}
