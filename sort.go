package vbuf

// Sort sorts the buffer in place using a bottom-up iterative merge sort.
//
// cmp must return a negative value when a orders before b, zero when they
// are equal and a positive value otherwise. The sort is stable: elements
// comparing equal keep their original relative order.
//
// A single scratch array of length Len is used for merging.
// O(Len * log Len) time, O(Len) auxiliary space.
func (b *Buffer[T]) Sort(cmp func(a, b T) int) {
	n := b.size
	if n == 0 {
		return
	}
	scratch := make([]slot[T], n)

	// Merge adjacent runs of doubling width until one run covers everything.
	for width := 1; width < n; width *= 2 {
		for leftStart := 0; leftStart < n-width; leftStart += 2 * width {
			mid := leftStart + width - 1
			rightEnd := min(leftStart+2*width-1, n-1)
			b.merge(scratch, leftStart, mid, rightEnd, cmp)
		}
	}
}

// merge merges the adjacent sorted runs [leftStart, mid] and
// [mid+1, rightEnd] into scratch, then copies the merged range back into
// storage. The left run's element wins ties, which is what keeps the sort
// stable. An empty slot inside the occupied prefix is unrecoverable
// corruption and panics via malformed.
func (b *Buffer[T]) merge(scratch []slot[T], leftStart, mid, rightEnd int, cmp func(a, b T) int) {
	l, r := leftStart, mid+1
	out := leftStart
	for l <= mid && r <= rightEnd {
		if !b.slots[l].occupied {
			b.malformed(l)
		}
		if !b.slots[r].occupied {
			b.malformed(r)
		}
		if cmp(b.slots[l].val, b.slots[r].val) <= 0 {
			scratch[out] = b.slots[l]
			l++
		} else {
			scratch[out] = b.slots[r]
			r++
		}
		out++
	}
	for ; l <= mid; l++ {
		if !b.slots[l].occupied {
			b.malformed(l)
		}
		scratch[out] = b.slots[l]
		out++
	}
	for ; r <= rightEnd; r++ {
		if !b.slots[r].occupied {
			b.malformed(r)
		}
		scratch[out] = b.slots[r]
		out++
	}
	copy(b.slots[leftStart:rightEnd+1], scratch[leftStart:rightEnd+1])
}
