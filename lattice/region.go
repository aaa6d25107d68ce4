package lattice

// Region is the minimal read interface over a set of locations: it answers
// what the state of a location is at a generation without exposing how
// locations are stored. A rule written against Region and Cell.Neighbors
// runs unmodified over any topology.
type Region[S any] interface {
	// Locations returns the locations the region owns, in a fixed order.
	// Callers must not modify the returned slice.
	Locations() []*Cell[S]

	// State returns the location's value at the generation, if computed.
	State(loc *Cell[S], gen Generation) (S, bool)
}

// Space owns the full collection of locations and exposes them as one or
// more regions.
type Space[S any] interface {
	Regions() []Region[S]
}

// Reduce folds f over every (region, location) pair the space owns. The
// visitation order is fixed but unspecified; rely on it only for
// commutative, associative folds such as sums or global extrema.
func Reduce[S, A any](sp Space[S], init A, f func(Region[S], *Cell[S], A) A) A {
	acc := init
	for _, region := range sp.Regions() {
		for _, loc := range region.Locations() {
			acc = f(region, loc, acc)
		}
	}
	return acc
}

// CellRegion is a region over free-standing cells: it owns no locations and
// answers state lookups straight from the cell itself. It drives cells that
// are not part of a Space, and tests.
type CellRegion[S any] struct{}

func (CellRegion[S]) Locations() []*Cell[S] { return nil }

func (CellRegion[S]) State(loc *Cell[S], gen Generation) (S, bool) {
	return loc.State(gen)
}
