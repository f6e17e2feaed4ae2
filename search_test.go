package vbuf

import (
	"cmp"
	"testing"
)

func intEq(a, b int) bool { return a == b }

func TestIndexOf(t *testing.T) {
	b := newTestBuffer(t, 0, 1, 2, 3, 2)

	if i, ok := b.IndexOf(2, intEq); !ok || i != 1 {
		t.Errorf("expected (1, true), got (%d, %t)", i, ok)
	}
	if i, ok := b.LastIndexOf(2, intEq); !ok || i != 3 {
		t.Errorf("expected (3, true), got (%d, %t)", i, ok)
	}
	if _, ok := b.IndexOf(9, intEq); ok {
		t.Error("expected absent for missing element")
	}
	if _, ok := b.LastIndexOf(9, intEq); ok {
		t.Error("expected absent for missing element")
	}
	if _, ok := newTestBuffer(t, 0).IndexOf(1, intEq); ok {
		t.Error("expected absent on empty buffer")
	}
}

func TestBinarySearch(t *testing.T) {
	b := newTestBuffer(t, 0, 1, 4, 5, 6)

	testCases := []struct {
		name  string
		x     int
		want  int
		found bool
	}{
		{"Middle hit", 5, 2, true},
		{"First element", 1, 0, true},
		{"Last element", 6, 3, true},
		{"Missing between", 3, 0, false},
		{"Below range", 0, 0, false},
		{"Above range", 9, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			i, found := b.BinarySearch(tc.x, cmp.Compare[int])
			if found != tc.found {
				t.Fatalf("expected found=%t, got %t", tc.found, found)
			}
			if found && i != tc.want {
				t.Errorf("expected index %d, got %d", tc.want, i)
			}
		})
	}

	if _, found := newTestBuffer(t, 0).BinarySearch(1, cmp.Compare[int]); found {
		t.Error("expected absent on empty buffer")
	}
}

func TestBinarySearchDuplicates(t *testing.T) {
	b := newTestBuffer(t, 0, 1, 2, 2, 2, 3)
	i, found := b.BinarySearch(2, cmp.Compare[int])
	if !found {
		t.Fatal("expected to find a duplicate element")
	}
	// Any matching index is acceptable.
	if x, _ := b.Get(i); x != 2 {
		t.Errorf("expected element 2 at returned index %d, got %d", i, x)
	}
}

func TestIndexOfBuffer(t *testing.T) {
	main := []int{1, 2, 3, 4, 5, 6}

	testCases := []struct {
		name  string
		main  []int
		sub   []int
		want  int
		found bool
	}{
		{"Suffix match", main, []int{4, 5, 6}, 3, true},
		{"Prefix match", main, []int{1, 2}, 0, true},
		{"Single element", main, []int{6}, 5, true},
		{"Whole buffer", main, main, 0, true},
		{"Empty pattern never matches", main, nil, 0, false},
		{"Pattern longer than buffer", main, []int{1, 2, 3, 4, 5, 6, 7}, 0, false},
		{"No occurrence", main, []int{3, 5}, 0, false},
		{"Empty buffer", nil, []int{1}, 0, false},
		{"Repeated prefix fallback", []int{1, 1, 2, 1, 1, 1, 2}, []int{1, 1, 1, 2}, 3, true},
		{"Near miss then match", []int{1, 2, 1, 2, 3}, []int{1, 2, 3}, 2, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBuffer(t, 0, tc.main...)
			sub := newTestBuffer(t, 0, tc.sub...)
			i, found := b.IndexOfBuffer(sub, intEq)
			if found != tc.found {
				t.Fatalf("expected found=%t, got %t", tc.found, found)
			}
			if found && i != tc.want {
				t.Errorf("expected offset %d, got %d", tc.want, i)
			}
		})
	}
}

func TestLongestPrefixSuffix(t *testing.T) {
	testCases := []struct {
		name string
		sub  []int
		want []int
	}{
		{"No repetition", []int{1, 2, 3}, []int{0, 0, 0}},
		{"Full repetition", []int{1, 1, 1}, []int{0, 1, 2}},
		{"Partial", []int{1, 2, 1, 2, 3}, []int{0, 0, 1, 2, 0}},
		{"Single", []int{7}, []int{0}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sub := newTestBuffer(t, 0, tc.sub...)
			got := longestPrefixSuffix(sub, intEq)
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("expected table %v, got %v", tc.want, got)
				}
			}
		})
	}
}
