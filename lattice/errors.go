package lattice

import "errors"

// Construction and lookup failures. They are wrapped with context at the
// call site; match with errors.Is. Rule errors are opaque to the substrate
// and propagate unchanged.
var (
	// ErrDimension reports a malformed dimension vector.
	ErrDimension = errors.New("lattice: invalid dimensions")

	// ErrTopology reports a dimension vector the selected tiling cannot wire.
	ErrTopology = errors.New("lattice: tiling incompatible with dimensions")

	// ErrCoordinate reports a coordinate vector whose length disagrees with
	// the lattice's dimensionality.
	ErrCoordinate = errors.New("lattice: coordinate arity mismatch")

	// ErrNilCell reports an attempt to join a cell to a nil peer.
	ErrNilCell = errors.New("lattice: nil cell")
)
