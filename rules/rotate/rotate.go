// Package rotate implements an angle-diffusion rule: every cell nudges its
// angle toward the symmetric mean of its neighborhood.
package rotate

import (
	"math"

	"quanta/lattice"
)

// Cell is the per-location payload, an unbounded angle in radians.
type Cell struct {
	Angle float64
}

// Rule holds the diffusion rate as a read-only field.
type Rule struct {
	Rate float64 // divisor applied to the neighborhood-mean nudge
}

// Update implements lattice.Rule.
func (r Rule) Update(region lattice.Region[Cell], loc *lattice.Cell[Cell], gen lattice.Generation) (Cell, error) {
	this, _ := region.State(loc, gen)
	count := 0
	sum := 0.0
	for _, n := range loc.Neighbors() {
		count++
		if s, ok := region.State(n, gen); ok {
			sum += Normalize(s.Angle) + 2*math.Pi
		}
	}
	if count == 0 {
		return this, nil
	}
	return Cell{Angle: this.Angle + Symmetric(sum/float64(count))/r.Rate}, nil
}

// Normalize maps an angle into [0, 2π).
func Normalize(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Symmetric maps an angle into (-π, π].
func Symmetric(angle float64) float64 {
	a := Normalize(angle)
	if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// Glyph renders the angle's sector as a stroke direction.
func (c Cell) Glyph() rune {
	a := Normalize(c.Angle)
	sector := math.Pi / 3
	switch {
	case a < sector:
		return '-'
	case a < math.Pi:
		return '\\'
	case a < 5*sector:
		return '/'
	default:
		return '-'
	}
}

// GrayValue maps the normalized angle across the gray range. The
// normalization context is unused.
func (c Cell) GrayValue(float64) uint8 {
	return uint8(Normalize(c.Angle) / (2 * math.Pi) * 255)
}

// RadialInit angles each cell by the inner product of its unit offset from
// the lattice center with the unit diagonal, scaled to ±π.
func RadialInit(dims []int) func(coords []int) Cell {
	diag := 1 / math.Sqrt(float64(len(dims)))
	return func(coords []int) Cell {
		offsets := make([]float64, len(coords))
		var sumSquares float64
		for axis, c := range coords {
			offsets[axis] = float64(c) - float64(dims[axis])/2
			sumSquares += offsets[axis] * offsets[axis]
		}
		radius := math.Sqrt(sumSquares)
		if radius == 0 {
			return Cell{}
		}
		var inner float64
		for _, off := range offsets {
			inner += off / radius * diag
		}
		return Cell{Angle: inner * math.Pi}
	}
}
