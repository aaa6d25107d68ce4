package lattice

import "fmt"

// The lattice addresses cells by a least-significant-first mixed-radix
// encoding: index = c[0] + c[1]*d[0] + c[2]*d[0]*d[1] + ... so the first
// axis varies fastest. The same convention is used for construction,
// wiring, and lookup; never mix it with the opposite digit order.

// CoordsToIndex maps a coordinate vector to its linear cell index.
// Coordinates outside an axis's extent wrap periodically, negatives
// included. The coordinate vector's length must match the dimension
// vector's.
func CoordsToIndex(coords, dims []int) (int, error) {
	if len(coords) != len(dims) {
		return 0, fmt.Errorf("%w: got %d coordinates for %d axes",
			ErrCoordinate, len(coords), len(dims))
	}
	index := 0
	stride := 1
	for axis, c := range coords {
		extent := dims[axis]
		index += wrap(c, extent) * stride
		stride *= extent
	}
	return index, nil
}

// IndexToCoords inverts CoordsToIndex. Indices outside the lattice wrap
// around its cardinality.
func IndexToCoords(index int, dims []int) []int {
	size := 1
	for _, extent := range dims {
		size *= extent
	}
	if size > 0 {
		index = wrap(index, size)
	}
	coords := make([]int, len(dims))
	for axis, extent := range dims {
		coords[axis] = index % extent
		index /= extent
	}
	return coords
}

// wrap applies toroidal wrapping to a single coordinate.
func wrap(c, extent int) int {
	return (c%extent + extent) % extent
}

// nextCoord advances coords one step in index order, incrementing the first
// axis and carrying into later axes on overflow. Returns false once the
// odometer wraps back to the origin.
func nextCoord(coords, dims []int) bool {
	for axis := range coords {
		coords[axis]++
		if coords[axis] < dims[axis] {
			return true
		}
		coords[axis] = 0
	}
	return false
}
