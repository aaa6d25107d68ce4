// Package wave implements a wave-propagation rule: one driving cell forces
// a sinusoidal amplitude, and every other cell integrates a velocity pulled
// toward its neighbors' amplitudes.
package wave

import (
	"math"

	"quanta/lattice"
)

// Cell is the per-location payload. NeighborCount is zero until the first
// sweep records the cell's degree; coupling only applies between cells whose
// degrees are known.
type Cell struct {
	Amplitude     float64
	Velocity      float64
	Center        bool
	NeighborCount int
}

// Rule holds the tuning parameters as read-only fields.
type Rule struct {
	Period   float64 // generations per radian of the driving oscillator
	Gain     float64 // driving amplitude
	Coupling float64 // neighbor pull per amplitude delta
}

// Update implements lattice.Rule. Amplitude integrates the previous
// velocity before any coupling, the driving cell overrides both from the
// oscillator, and every cell re-records its degree.
func (r Rule) Update(region lattice.Region[Cell], loc *lattice.Cell[Cell], gen lattice.Generation) (Cell, error) {
	this, _ := region.State(loc, gen)
	neighbors := loc.Neighbors()

	amp := this.Amplitude + this.Velocity
	vel := this.Velocity

	switch {
	case this.Center:
		angle := float64(gen) / r.Period
		amp = math.Sin(angle) * r.Gain
		vel = math.Cos(angle)
	case this.NeighborCount > 0:
		for _, n := range neighbors {
			other, ok := region.State(n, gen)
			if !ok || other.NeighborCount == 0 {
				continue
			}
			maxCount := this.NeighborCount
			if other.NeighborCount > maxCount {
				maxCount = other.NeighborCount
			}
			vel += (other.Amplitude - this.Amplitude) * r.Coupling / float64(maxCount)
		}
	}

	return Cell{
		Amplitude:     amp,
		Velocity:      vel,
		Center:        this.Center,
		NeighborCount: len(neighbors),
	}, nil
}

// Glyph renders the amplitude's sign.
func (c Cell) Glyph() rune {
	switch {
	case c.Amplitude > 0:
		return '^'
	case c.Amplitude < 0:
		return 'v'
	default:
		return '0'
	}
}

// GrayValue maps the amplitude onto [0, 255] around mid-gray, compressed
// through atan and normalized by the context amplitude (typically the
// board's smallest local maximum).
func (c Cell) GrayValue(context float64) uint8 {
	magnitude := c.Amplitude / context
	value := math.Atan(magnitude) * 2 / math.Pi
	return uint8(127*value + 128)
}

// CenterInit seeds a quiescent board whose driving cells sit in the block
// where every halved coordinate equals the quartered extent.
func CenterInit(dims []int) func(coords []int) Cell {
	return func(coords []int) Cell {
		center := true
		for axis, c := range coords {
			if c/2 != dims[axis]/4 {
				center = false
				break
			}
		}
		return Cell{Center: center}
	}
}

// SmallestLocalMaximum folds the space for the smallest amplitude that is a
// local maximum of its neighborhood at the generation. Returns 1 when the
// board has no positive local maxima, so the result stays usable as a
// normalization divisor.
func SmallestLocalMaximum(sp lattice.Space[Cell], gen lattice.Generation) float64 {
	result := lattice.Reduce[Cell, float64](sp, math.MaxFloat64,
		func(region lattice.Region[Cell], loc *lattice.Cell[Cell], acc float64) float64 {
			amp, ok := localMaximum(region, loc, gen)
			if ok && amp < acc {
				return amp
			}
			return acc
		})
	if result <= 0 || result == math.MaxFloat64 {
		return 1
	}
	return result
}

// localMaximum reports the location's absolute amplitude when it is
// positive and no neighbor exceeds it.
func localMaximum(region lattice.Region[Cell], loc *lattice.Cell[Cell], gen lattice.Generation) (float64, bool) {
	this, ok := region.State(loc, gen)
	if !ok {
		return 0, false
	}
	amp := math.Abs(this.Amplitude)
	if amp <= 0 {
		return 0, false
	}
	for _, n := range loc.Neighbors() {
		if other, ok := region.State(n, gen); ok && math.Abs(other.Amplitude) > amp {
			return 0, false
		}
	}
	return amp, true
}
