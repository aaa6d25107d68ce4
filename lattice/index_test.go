package lattice

import (
	"errors"
	"testing"
)

func TestCoordIndexRoundTrip(t *testing.T) {
	dimsets := [][]int{
		{1},
		{7},
		{3, 4},
		{5, 5},
		{2, 3, 4},
		{3, 3, 3, 3},
	}

	for _, dims := range dimsets {
		size := 1
		for _, e := range dims {
			size *= e
		}
		seen := make([]bool, size)

		coords := make([]int, len(dims))
		for {
			idx, err := CoordsToIndex(coords, dims)
			if err != nil {
				t.Fatalf("dims %v coords %v: %v", dims, coords, err)
			}
			if idx < 0 || idx >= size {
				t.Fatalf("dims %v coords %v: index %d out of range", dims, coords, idx)
			}
			if seen[idx] {
				t.Fatalf("dims %v: index %d hit twice", dims, idx)
			}
			seen[idx] = true

			back := IndexToCoords(idx, dims)
			for axis := range coords {
				if back[axis] != coords[axis] {
					t.Fatalf("dims %v: round trip %v -> %d -> %v", dims, coords, idx, back)
				}
			}
			if !nextCoord(coords, dims) {
				break
			}
		}
		for idx, ok := range seen {
			if !ok {
				t.Fatalf("dims %v: index %d never produced", dims, idx)
			}
		}
	}
}

func TestCoordsToIndexArityMismatch(t *testing.T) {
	if _, err := CoordsToIndex([]int{1, 2}, []int{3, 3, 3}); !errors.Is(err, ErrCoordinate) {
		t.Errorf("got %v, want ErrCoordinate", err)
	}
	if _, err := CoordsToIndex([]int{1, 2, 3}, []int{4, 4}); !errors.Is(err, ErrCoordinate) {
		t.Errorf("got %v, want ErrCoordinate", err)
	}
}

func TestCoordsToIndexWraps(t *testing.T) {
	dims := []int{4, 6}
	tests := []struct {
		coords []int
		same   []int
	}{
		{[]int{-1, 0}, []int{3, 0}},
		{[]int{0, -1}, []int{0, 5}},
		{[]int{4, 6}, []int{0, 0}},
		{[]int{-5, 13}, []int{3, 1}},
	}
	for _, tt := range tests {
		got, err := CoordsToIndex(tt.coords, dims)
		if err != nil {
			t.Fatalf("coords %v: %v", tt.coords, err)
		}
		want, err := CoordsToIndex(tt.same, dims)
		if err != nil {
			t.Fatalf("coords %v: %v", tt.same, err)
		}
		if got != want {
			t.Errorf("coords %v wrapped to index %d, want %d (%v)", tt.coords, got, want, tt.same)
		}
	}
}
