package lattice

import "fmt"

// Tiling selects the neighbor adjacency scheme used to wire a torus.
type Tiling int

const (
	// Orthogonal joins each cell to the two cells at coordinate +1 and -1
	// along every axis (von Neumann neighborhood, periodic).
	Orthogonal Tiling = iota

	// OrthoDiagonal extends Orthogonal with the 2^n hypercube-corner cells
	// obtained by offsetting every coordinate by +1 or -1 at once (Moore
	// neighborhood generalized to n dimensions).
	OrthoDiagonal

	// Hexagonal wires a two-dimensional brick packing that renders as a
	// hexagonal tiling. Requires exactly two axes, both with even extents.
	Hexagonal

	// Moore is the legacy two-dimensional 3x3 neighborhood, wraparound,
	// excluding the cell itself.
	Moore
)

var tilingNames = map[Tiling]string{
	Orthogonal:    "orthogonal",
	OrthoDiagonal: "orthodiagonal",
	Hexagonal:     "hexagonal",
	Moore:         "moore",
}

func (t Tiling) String() string {
	if name, ok := tilingNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tiling(%d)", int(t))
}

// ParseTiling resolves a tiling by its configuration name.
func ParseTiling(name string) (Tiling, error) {
	for t, n := range tilingNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tiling %q", name)
}
