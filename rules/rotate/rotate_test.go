package rotate

import (
	"math"
	"testing"

	"quanta/lattice"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		angle, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{3 * math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{-5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		if got := Normalize(tt.angle); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Normalize(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestSymmetric(t *testing.T) {
	tests := []struct {
		angle, want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-math.Pi / 2, -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := Symmetric(tt.angle); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Symmetric(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestUpdateNudgesTowardNeighborMean(t *testing.T) {
	rule := Rule{Rate: 12}
	region := lattice.CellRegion[Cell]{}
	a := lattice.NewCell(0, Cell{Angle: 0})
	b := lattice.NewCell(0, Cell{Angle: math.Pi / 2})
	if err := a.Join(b); err != nil {
		t.Fatal(err)
	}

	if err := a.Update(rule, region, 0); err != nil {
		t.Fatal(err)
	}
	s, _ := a.State(1)
	// Single neighbor at π/2: symmetric mean is π/2, nudge is (π/2)/12.
	want := math.Pi / 2 / 12
	if math.Abs(s.Angle-want) > 1e-12 {
		t.Errorf("angle = %v, want %v", s.Angle, want)
	}
}

func TestUpdateIsolatedCellHoldsAngle(t *testing.T) {
	rule := Rule{Rate: 12}
	c := lattice.NewCell(0, Cell{Angle: 1.5})
	if err := c.Update(rule, lattice.CellRegion[Cell]{}, 0); err != nil {
		t.Fatal(err)
	}
	s, _ := c.State(1)
	if s.Angle != 1.5 {
		t.Errorf("isolated cell drifted to %v", s.Angle)
	}
}

func TestRadialInit(t *testing.T) {
	dims := []int{5, 5, 5}
	init := RadialInit(dims)

	// Angles are bounded by ±π and antipodal coordinates get opposite signs.
	a := init([]int{4, 4, 4}).Angle
	b := init([]int{0, 0, 0}).Angle
	if math.Abs(a) > math.Pi || math.Abs(b) > math.Pi {
		t.Errorf("angles out of range: %v, %v", a, b)
	}
	if a <= 0 || b >= 0 {
		t.Errorf("antipodal signs wrong: %v, %v", a, b)
	}
}

func TestDiffusionOnTorus(t *testing.T) {
	dims := []int{5, 5, 5}
	torus, err := lattice.NewTorus(Rule{Rate: 12}, lattice.Orthogonal, dims, 0, RadialInit(dims))
	if err != nil {
		t.Fatal(err)
	}
	gen := lattice.Generation(0)
	for i := 0; i < 3; i++ {
		if err := torus.UpdateAll(gen); err != nil {
			t.Fatal(err)
		}
		gen = gen.Next()
	}
	for _, c := range torus.Locations() {
		s, ok := c.State(gen)
		if !ok {
			t.Fatal("missing state after sweeps")
		}
		if math.IsNaN(s.Angle) || math.IsInf(s.Angle, 0) {
			t.Fatalf("angle diverged: %v", s.Angle)
		}
	}
}
