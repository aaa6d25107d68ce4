package wave

import (
	"fmt"
	"image"

	"quanta/config"
	"quanta/lattice"
	"quanta/render"
	"quanta/sim"
)

type runner struct {
	torus   *lattice.Torus[Cell]
	rule    Rule
	gen     lattice.Generation
	workers int
}

func init() {
	sim.Register("wave", build)
}

func build(cfg *config.Config, seed int64) (sim.Runner, error) {
	tiling, err := lattice.ParseTiling(cfg.Run.Tiling)
	if err != nil {
		return nil, fmt.Errorf("wave: %w", err)
	}
	rule := Rule{
		Period:   cfg.Wave.Period,
		Gain:     cfg.Wave.Gain,
		Coupling: cfg.Wave.Coupling,
	}
	torus, err := lattice.NewTorus(rule, tiling, cfg.Run.Dimensions, 0,
		CenterInit(cfg.Run.Dimensions))
	if err != nil {
		return nil, fmt.Errorf("wave: %w", err)
	}
	return &runner{torus: torus, rule: rule, workers: cfg.Run.Workers}, nil
}

func (r *runner) Name() string { return "wave" }
func (r *runner) Generation() lattice.Generation { return r.gen }

func (r *runner) Step() error {
	if err := r.torus.UpdateAllParallel(r.gen, r.workers); err != nil {
		return err
	}
	r.gen = r.gen.Next()
	return nil
}

func (r *runner) Sample() []float64 {
	out := make([]float64, 0, r.torus.Len())
	for _, c := range r.torus.Locations() {
		s, _ := c.State(r.gen)
		out = append(out, s.Amplitude)
	}
	return out
}

// Frame normalizes against the smallest local amplitude maximum, so the
// faintest crest still spans the gray range.
func (r *runner) Frame() (*image.Gray, error) {
	return render.Gray(r.torus, r.gen, SmallestLocalMaximum(r.torus, r.gen))
}

func (r *runner) Lines() ([]string, error) {
	return render.Text(r.torus, r.gen)
}
