package rotate

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
	gen     lattice.Generation
	workers int
}

func init() {
	sim.Register("rotate", build)
}

func build(cfg *config.Config, seed int64) (sim.Runner, error) {
	tiling, err := lattice.ParseTiling(cfg.Run.Tiling)
	if err != nil {
		return nil, fmt.Errorf("rotate: %w", err)
	}
	torus, err := lattice.NewTorus(Rule{Rate: cfg.Rotate.Rate}, tiling,
		cfg.Run.Dimensions, 0, RadialInit(cfg.Run.Dimensions))
	if err != nil {
		return nil, fmt.Errorf("rotate: %w", err)
	}
	return &runner{torus: torus, workers: cfg.Run.Workers}, nil
}

func (r *runner) Name() string { return "rotate" }
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
		out = append(out, Symmetric(s.Angle))
	}
	return out
}

func (r *runner) Frame() (*image.Gray, error) {
	return render.Gray(r.torus, r.gen, 1)
}

func (r *runner) Lines() ([]string, error) {
	return render.Text(r.torus, r.gen)
}
