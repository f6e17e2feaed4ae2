package testutils

import "slices"

// RefSeq is a plain slice-backed sequence used as the reference model when
// cross-checking buffer mutation order semantics in tests.
type RefSeq[T any] struct {
	elems []T
}

func (s *RefSeq[T]) Len() int {
	return len(s.elems)
}

func (s *RefSeq[T]) Add(x T) {
	s.elems = append(s.elems, x)
}

func (s *RefSeq[T]) Put(i int, x T) {
	s.elems[i] = x
}

func (s *RefSeq[T]) Insert(i int, x T) {
	s.elems = slices.Insert(s.elems, i, x)
}

func (s *RefSeq[T]) Remove(i int) T {
	x := s.elems[i]
	s.elems = slices.Delete(s.elems, i, i+1)
	return x
}

func (s *RefSeq[T]) RemoveLast() (T, bool) {
	if len(s.elems) == 0 {
		var zero T
		return zero, false
	}
	x := s.elems[len(s.elems)-1]
	s.elems = s.elems[:len(s.elems)-1]
	return x, true
}

// Elems returns a copy of the sequence contents. The result is always
// non-nil so it compares equal under reflect.DeepEqual to other empty
// non-nil slices when the sequence is empty.
func (s *RefSeq[T]) Elems() []T {
	out := make([]T, len(s.elems))
	copy(out, s.elems)
	return out
}
