package lattice

// Generation is a discrete simulation time step. Generations are totally
// ordered and advance strictly through Next; cell state is versioned by them.
type Generation uint64

// Next returns the successor generation.
func (g Generation) Next() Generation { return g + 1 }
