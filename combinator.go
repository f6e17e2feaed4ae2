package vbuf

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Derived helpers built purely on the Buffer's public contract: Len,
// Get/GetOpt, Add, Put, FilterEntries, Sort and the forward iterators.
// None of them reach into storage directly. They are package-level
// functions because Go methods cannot introduce new type parameters.

// Pair holds two positionally related values, as produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Map returns a new buffer holding f applied to every element, in order.
func Map[A, B any](b *Buffer[A], f func(A) B) *Buffer[B] {
	out := New[B](b.Len())
	for x := range b.Values() {
		out.Add(f(x))
	}
	return out
}

// FilterMap returns a new buffer holding f applied to every element for
// which f reports ok, preserving order.
func FilterMap[A, B any](b *Buffer[A], f func(A) (B, bool)) *Buffer[B] {
	out := New[B](0)
	for x := range b.Values() {
		if y, ok := f(x); ok {
			out.Add(y)
		}
	}
	return out
}

// FoldLeft reduces the buffer front to back: f(f(f(init, e0), e1), ...).
func FoldLeft[A, B any](b *Buffer[A], init B, f func(acc B, x A) B) B {
	acc := init
	for x := range b.Values() {
		acc = f(acc, x)
	}
	return acc
}

// FoldRight reduces the buffer back to front: f(e0, f(e1, ... init)).
func FoldRight[A, B any](b *Buffer[A], init B, f func(x A, acc B) B) B {
	acc := init
	for i := b.Len() - 1; i >= 0; i-- {
		x, _ := b.GetOpt(i)
		acc = f(x, acc)
	}
	return acc
}

// Zip pairs elements positionally, stopping at the shorter buffer.
func Zip[A, B any](a *Buffer[A], b *Buffer[B]) *Buffer[Pair[A, B]] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{First: x, Second: y}
	})
}

// ZipWith combines elements positionally with f, stopping at the shorter
// buffer.
func ZipWith[A, B, C any](a *Buffer[A], b *Buffer[B], f func(A, B) C) *Buffer[C] {
	n := min(a.Len(), b.Len())
	out := New[C](n)
	for i := range n {
		x, _ := a.GetOpt(i)
		y, _ := b.GetOpt(i)
		out.Add(f(x, y))
	}
	return out
}

// Partition splits b into the elements satisfying pred and the rest, both
// preserving order.
func Partition[T any](b *Buffer[T], pred func(T) bool) (yes, no *Buffer[T]) {
	yes, no = New[T](0), New[T](0)
	for x := range b.Values() {
		if pred(x) {
			yes.Add(x)
		} else {
			no.Add(x)
		}
	}
	return yes, no
}

// SplitAt returns copies of the first n elements and the remainder.
// n is clamped to [0, Len].
func SplitAt[T any](b *Buffer[T], n int) (head, tail *Buffer[T]) {
	n = max(0, min(n, b.Len()))
	head, tail = New[T](n), New[T](b.Len()-n)
	for i, x := range b.All() {
		if i < n {
			head.Add(x)
		} else {
			tail.Add(x)
		}
	}
	return head, tail
}

// ChunkBy splits b into consecutive chunks of n elements each; the final
// chunk may be shorter. It panics if n is not positive.
func ChunkBy[T any](b *Buffer[T], n int) *Buffer[*Buffer[T]] {
	if n <= 0 {
		panic(fmt.Errorf("non-positive chunk length: %d", n))
	}
	out := New[*Buffer[T]](0)
	var chunk *Buffer[T]
	for i, x := range b.All() {
		if i%n == 0 {
			chunk = New[T](min(n, b.Len()-i))
			out.Add(chunk)
		}
		chunk.Add(x)
	}
	return out
}

// GroupBy buckets elements by key, preserving encounter order within each
// bucket.
func GroupBy[T any, K comparable](b *Buffer[T], key func(T) K) map[K]*Buffer[T] {
	groups := make(map[K]*Buffer[T])
	for x := range b.Values() {
		k := key(x)
		g, ok := groups[k]
		if !ok {
			g = New[T](0)
			groups[k] = g
		}
		g.Add(x)
	}
	return groups
}

// Flatten concatenates a buffer of buffers into a single buffer, outer
// order first.
func Flatten[T any](b *Buffer[*Buffer[T]]) *Buffer[T] {
	total := 0
	for inner := range b.Values() {
		total += inner.Len()
	}
	out := New[T](total)
	for inner := range b.Values() {
		for x := range inner.Values() {
			out.Add(x)
		}
	}
	return out
}

// HasPrefix reports whether b starts with prefix under eq.
// An empty prefix is a prefix of every buffer.
func HasPrefix[T any](b, prefix *Buffer[T], eq func(a, b T) bool) bool {
	if prefix.Len() > b.Len() {
		return false
	}
	for i, x := range prefix.All() {
		y, _ := b.GetOpt(i)
		if !eq(x, y) {
			return false
		}
	}
	return true
}

// HasSuffix reports whether b ends with suffix under eq.
// An empty suffix is a suffix of every buffer.
func HasSuffix[T any](b, suffix *Buffer[T], eq func(a, b T) bool) bool {
	offset := b.Len() - suffix.Len()
	if offset < 0 {
		return false
	}
	for i, x := range suffix.All() {
		y, _ := b.GetOpt(offset + i)
		if !eq(x, y) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T any](a, b *Buffer[T], eq func(x, y T) bool) bool {
	return a.Len() == b.Len() && HasPrefix(a, b, eq)
}

// Compare orders a and b lexicographically under cmp: the first unequal
// element pair decides, otherwise the shorter buffer orders first.
func Compare[T any](a, b *Buffer[T], cmp func(x, y T) int) int {
	n := min(a.Len(), b.Len())
	for i := range n {
		x, _ := a.GetOpt(i)
		y, _ := b.GetOpt(i)
		if r := cmp(x, y); r != 0 {
			return r
		}
	}
	switch {
	case a.Len() < b.Len():
		return -1
	case a.Len() > b.Len():
		return 1
	}
	return 0
}

// Hash returns a 64-bit xxHash digest of the elements in order. write
// feeds each element's identity into the digest; two buffers hash equal
// whenever they are Equal under the element identity write encodes.
func Hash[T any](b *Buffer[T], write func(d *xxhash.Digest, x T)) uint64 {
	d := xxhash.New()
	for x := range b.Values() {
		write(d, x)
	}
	return d.Sum64()
}

// Dedup removes duplicate elements under cmp in place, keeping the first
// occurrence of each and preserving the original order of the survivors.
// It stably sorts an index/value view of the buffer, marks every non-first
// member of each equal run, then filters the originals by position.
// O(Len * log Len).
func Dedup[T any](b *Buffer[T], cmp func(a, b T) int) {
	n := b.Len()
	if n < 2 {
		return
	}
	view := New[Pair[int, T]](n)
	for i, x := range b.All() {
		view.Add(Pair[int, T]{First: i, Second: x})
	}
	// Stability keeps equal elements ordered by original index, so the
	// head of each equal run is the first occurrence.
	view.Sort(func(p, q Pair[int, T]) int {
		return cmp(p.Second, q.Second)
	})
	dup := make([]bool, n)
	for i := 1; i < n; i++ {
		prev, _ := view.GetOpt(i - 1)
		curr, _ := view.GetOpt(i)
		if cmp(prev.Second, curr.Second) == 0 {
			dup[curr.First] = true
		}
	}
	b.FilterEntries(func(i int, _ T) bool {
		return !dup[i]
	})
}

// MergeSorted merges two buffers already sorted ascending per cmp into a
// new sorted buffer. Elements from a order before equal elements from b.
func MergeSorted[T any](a, b *Buffer[T], cmp func(x, y T) int) *Buffer[T] {
	out := New[T](a.Len() + b.Len())
	i, j := 0, 0
	for i < a.Len() && j < b.Len() {
		x, _ := a.GetOpt(i)
		y, _ := b.GetOpt(j)
		if cmp(x, y) <= 0 {
			out.Add(x)
			i++
		} else {
			out.Add(y)
			j++
		}
	}
	for ; i < a.Len(); i++ {
		x, _ := a.GetOpt(i)
		out.Add(x)
	}
	for ; j < b.Len(); j++ {
		y, _ := b.GetOpt(j)
		out.Add(y)
	}
	return out
}
