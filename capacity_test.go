package vbuf

import "testing"

func TestNextCapacity(t *testing.T) {
	testCases := []struct {
		old  int
		want int
	}{
		{0, 1},
		{1, 2},
		{2, 3},
		{3, 5},
		{4, 6},
		{5, 8},
		{7, 11},
		{8, 12},
		{100, 150},
	}
	for _, tc := range testCases {
		if got := nextCapacity(tc.old); got != tc.want {
			t.Errorf("nextCapacity(%d): expected %d, got %d", tc.old, tc.want, got)
		}
	}
}

func TestNextCapacityAlwaysGrows(t *testing.T) {
	// Single-element growth relies on the result exceeding the old
	// capacity by at least one.
	for old := range 10000 {
		if got := nextCapacity(old); got <= old {
			t.Fatalf("nextCapacity(%d): expected > %d, got %d", old, old, got)
		}
	}
}
