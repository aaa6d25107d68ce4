package lattice

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
)

// Torus is an n-dimensional periodic lattice of cells: the concrete Space.
// The cell array and the neighbor relations are built once, at construction,
// and never mutated afterwards; only per-cell state accumulates as
// generations advance.
type Torus[S any] struct {
	rule   Rule[S]
	tiling Tiling
	dims   []int
	cells  []*Cell[S]
}

// NewTorus builds a periodic lattice with one cell per coordinate vector,
// each seeded with init(coords) at the starting generation, then wired into
// neighbor relations by the tiling. Construction does not partially succeed:
// a malformed dimension vector fails before any cell is created.
func NewTorus[S any](rule Rule[S], tiling Tiling, dims []int, gen Generation, init func(coords []int) S) (*Torus[S], error) {
	if rule == nil {
		return nil, fmt.Errorf("lattice: nil rule")
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: empty dimension vector", ErrDimension)
	}
	size := 1
	for axis, extent := range dims {
		if extent < 1 {
			return nil, fmt.Errorf("%w: extent %d on axis %d", ErrDimension, extent, axis)
		}
		size *= extent
	}
	switch tiling {
	case Hexagonal:
		if len(dims) != 2 {
			return nil, fmt.Errorf("%w: hexagonal tiling needs 2 axes, got %d", ErrTopology, len(dims))
		}
		if dims[0]%2 != 0 || dims[1]%2 != 0 {
			return nil, fmt.Errorf("%w: hexagonal tiling needs even extents, got %v", ErrTopology, dims)
		}
	case Moore:
		if len(dims) != 2 {
			return nil, fmt.Errorf("%w: moore tiling needs 2 axes, got %d", ErrTopology, len(dims))
		}
	}

	t := &Torus[S]{
		rule:   rule,
		tiling: tiling,
		dims:   append([]int(nil), dims...),
		cells:  make([]*Cell[S], 0, size),
	}
	coords := make([]int, len(t.dims))
	for {
		t.cells = append(t.cells, NewCell(gen, init(coords)))
		if !nextCoord(coords, t.dims) {
			break
		}
	}
	if err := t.wire(); err != nil {
		return nil, err
	}
	slog.Debug("torus built",
		"tiling", t.tiling.String(),
		"dims", t.dims,
		"cells", len(t.cells),
	)
	return t, nil
}

// Dims returns a copy of the dimension vector.
func (t *Torus[S]) Dims() []int { return append([]int(nil), t.dims...) }

// Len returns the number of cells, product of the dimension vector.
func (t *Torus[S]) Len() int { return len(t.cells) }

// Tiling returns the adjacency scheme the torus was wired with.
func (t *Torus[S]) Tiling() Tiling { return t.tiling }

// At returns the cell at the coordinate vector, wrapping periodically.
func (t *Torus[S]) At(coords ...int) (*Cell[S], error) {
	i, err := CoordsToIndex(coords, t.dims)
	if err != nil {
		return nil, err
	}
	return t.cells[i], nil
}

// UpdateAll computes generation gen.Next() for every cell, sweeping in index
// order. A failure on any cell aborts the sweep and surfaces that cell's
// error.
func (t *Torus[S]) UpdateAll(gen Generation) error {
	for _, c := range t.cells {
		if err := c.Update(t.rule, t, gen); err != nil {
			return err
		}
	}
	return nil
}

// UpdateAllParallel sweeps like UpdateAll with the cells chunked across
// worker goroutines. The per-cell write-once discipline makes this safe:
// every cell commits only its own gen+1 entry and rules read only committed
// generations. workers <= 0 uses runtime.NumCPU(). On failure one of the
// failing cells' errors is returned; some cells of the sweep may already
// have committed.
func (t *Torus[S]) UpdateAllParallel(gen Generation, workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(t.cells) {
		workers = len(t.cells)
	}
	if workers <= 1 {
		return t.UpdateAll(gen)
	}
	chunk := (len(t.cells) + workers - 1) / workers
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, len(t.cells))
		if start >= end {
			break
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			for _, c := range t.cells[start:end] {
				if err := c.Update(t.rule, t, gen); err != nil {
					errs[w] = err
					return
				}
			}
		}(w, start, end)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Locations returns the torus's cells in index order. Torus is its own sole
// region.
func (t *Torus[S]) Locations() []*Cell[S] { return t.cells }

// State returns the location's value at the generation, if computed.
func (t *Torus[S]) State(loc *Cell[S], gen Generation) (S, bool) {
	return loc.State(gen)
}

// Regions exposes the torus as a Space with itself as the only region.
func (t *Torus[S]) Regions() []Region[S] { return []Region[S]{t} }

func (t *Torus[S]) wire() error {
	switch t.tiling {
	case Orthogonal:
		return t.wireOrthogonal(false)
	case OrthoDiagonal:
		return t.wireOrthogonal(true)
	case Hexagonal:
		return t.wireHexagonal()
	case Moore:
		return t.wireMoore()
	default:
		return fmt.Errorf("%w: unknown tiling %d", ErrTopology, int(t.tiling))
	}
}

// wireOrthogonal joins every cell to its +1/-1 neighbor along each axis,
// modulo that axis's extent. With diagonals it additionally joins the 2^n
// hypercube-corner cells reached by offsetting every coordinate at once.
func (t *Torus[S]) wireOrthogonal(diagonals bool) error {
	coords := make([]int, len(t.dims))
	scratch := make([]int, len(t.dims))
	for i := range t.cells {
		for axis, extent := range t.dims {
			copy(scratch, coords)
			scratch[axis] = (coords[axis] + 1) % extent
			if err := t.joinAt(i, scratch); err != nil {
				return err
			}
			scratch[axis] = (coords[axis] + extent - 1) % extent
			if err := t.joinAt(i, scratch); err != nil {
				return err
			}
		}
		if diagonals {
			for mask := 0; mask < 1<<len(t.dims); mask++ {
				for axis, extent := range t.dims {
					off := 1
					if mask&(1<<axis) != 0 {
						off = extent - 1
					}
					scratch[axis] = (coords[axis] + off) % extent
				}
				if err := t.joinAt(i, scratch); err != nil {
					return err
				}
			}
		}
		nextCoord(coords, t.dims)
	}
	return nil
}

// wireHexagonal wires the brick-like packing: each cell at row r, column c
// joins the next column in its own row plus two cells in row r+1 at columns
// shifted by an offset alternating with the row's parity. Symmetric joins
// give every cell its six hexagonal neighbors.
func (t *Torus[S]) wireHexagonal() error {
	height, width := t.dims[0], t.dims[1]
	for r := 0; r < height; r++ {
		offset := width - (r % 2)
		below := (r + 1) % height
		for c := 0; c < width; c++ {
			if err := t.join2(r, c, r, (c+1)%width); err != nil {
				return err
			}
			if err := t.join2(r, c, below, (c+offset)%width); err != nil {
				return err
			}
			if err := t.join2(r, c, below, (c+offset+1)%width); err != nil {
				return err
			}
		}
	}
	return nil
}

// wireMoore wires the legacy two-dimensional 3x3 wraparound neighborhood.
func (t *Torus[S]) wireMoore() error {
	height, width := t.dims[0], t.dims[1]
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if err := t.join2(r, c, (r+dr+height)%height, (c+dc+width)%width); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func (t *Torus[S]) join2(r, c, nr, nc int) error {
	i, err := CoordsToIndex([]int{r, c}, t.dims)
	if err != nil {
		return err
	}
	j, err := CoordsToIndex([]int{nr, nc}, t.dims)
	if err != nil {
		return err
	}
	if i == j {
		return nil
	}
	return t.cells[i].Join(t.cells[j])
}

func (t *Torus[S]) joinAt(i int, coords []int) error {
	j, err := CoordsToIndex(coords, t.dims)
	if err != nil {
		return err
	}
	if i == j {
		// Degenerate extents fold the offset back onto the cell itself; a
		// cell is never its own neighbor.
		return nil
	}
	return t.cells[i].Join(t.cells[j])
}
