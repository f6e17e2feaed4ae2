package vbuf

// IndexOf returns the index of the first element equal to x under eq.
// The ok result is false when no element matches. O(Len).
func (b *Buffer[T]) IndexOf(x T, eq func(a, b T) bool) (int, bool) {
	for i := range b.size {
		if eq(x, b.slots[i].val) {
			return i, true
		}
	}
	return 0, false
}

// LastIndexOf returns the index of the last element equal to x under eq.
// The ok result is false when no element matches. O(Len).
func (b *Buffer[T]) LastIndexOf(x T, eq func(a, b T) bool) (int, bool) {
	for i := b.size - 1; i >= 0; i-- {
		if eq(x, b.slots[i].val) {
			return i, true
		}
	}
	return 0, false
}

// BinarySearch returns an index whose element compares equal to x under
// cmp. The buffer must already be sorted ascending per cmp; the result is
// undefined otherwise. When duplicates exist the returned index is some
// matching index, not necessarily the first or last. O(log Len).
func (b *Buffer[T]) BinarySearch(x T, cmp func(a, b T) int) (int, bool) {
	lo, hi := 0, b.size-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch r := cmp(x, b.slots[mid].val); {
		case r == 0:
			return mid, true
		case r > 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}

// IndexOfBuffer returns the starting offset of the first occurrence of
// sub's elements as a contiguous subsequence of b, using the
// Knuth-Morris-Pratt algorithm. An empty sub never matches, and neither
// does a sub longer than the buffer. O(Len + sub.Len) time, O(sub.Len)
// space for the prefix table.
func (b *Buffer[T]) IndexOfBuffer(sub *Buffer[T], eq func(a, b T) bool) (int, bool) {
	m := sub.size
	if m == 0 || m > b.size {
		return 0, false
	}
	lps := longestPrefixSuffix(sub, eq)

	matched := 0 // Length of the sub prefix matched so far.
	for i := range b.size {
		// On mismatch, fall back along the prefix table instead of
		// re-comparing the already-matched prefix.
		for matched > 0 && !eq(b.slots[i].val, sub.slots[matched].val) {
			matched = lps[matched-1]
		}
		if eq(b.slots[i].val, sub.slots[matched].val) {
			matched++
		}
		if matched == m {
			return i - m + 1, true
		}
	}
	return 0, false
}

// longestPrefixSuffix builds sub's KMP prefix table: lps[i] is the length
// of the longest proper prefix of sub[:i+1] that is also a suffix of it.
// O(sub.Len).
func longestPrefixSuffix[T any](sub *Buffer[T], eq func(a, b T) bool) []int {
	lps := make([]int, sub.size)
	length := 0
	for i := 1; i < sub.size; i++ {
		for length > 0 && !eq(sub.slots[i].val, sub.slots[length].val) {
			length = lps[length-1]
		}
		if eq(sub.slots[i].val, sub.slots[length].val) {
			length++
		}
		lps[i] = length
	}
	return lps
}
