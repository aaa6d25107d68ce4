// Package conway implements Conway's Game of Life as a lattice rule.
package conway

import (
	"math/rand"

	"quanta/lattice"
)

// Cell is the per-location payload: alive or dead.
type Cell struct {
	Alive bool
}

// Rule advances the life rule: a cell lives in the next generation when it
// has exactly three live neighbors, or is alive with exactly two.
type Rule struct{}

// Update implements lattice.Rule.
func (Rule) Update(region lattice.Region[Cell], loc *lattice.Cell[Cell], gen lattice.Generation) (Cell, error) {
	this, _ := region.State(loc, gen)
	count := 0
	for _, n := range loc.Neighbors() {
		if s, ok := region.State(n, gen); ok && s.Alive {
			count++
		}
	}
	return Cell{Alive: count == 3 || (this.Alive && count == 2)}, nil
}

// Glyph renders live cells as '#'.
func (c Cell) Glyph() rune {
	if c.Alive {
		return '#'
	}
	return ' '
}

// GrayValue maps the cell to full white or black. The normalization context
// is unused.
func (c Cell) GrayValue(float64) uint8 {
	if c.Alive {
		return 255
	}
	return 0
}

// RandomInit seeds the board with the given live-cell density. Initializers
// run once per coordinate in index order, so the same seed reproduces the
// same board.
func RandomInit(seed int64, fill float64) func(coords []int) Cell {
	rng := rand.New(rand.NewSource(seed))
	return func([]int) Cell {
		return Cell{Alive: rng.Float64() < fill}
	}
}
