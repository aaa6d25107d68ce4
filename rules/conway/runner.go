package conway

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
	sim.Register("conway", build)
}

func build(cfg *config.Config, seed int64) (sim.Runner, error) {
	tiling, err := lattice.ParseTiling(cfg.Run.Tiling)
	if err != nil {
		return nil, fmt.Errorf("conway: %w", err)
	}
	torus, err := lattice.NewTorus(Rule{}, tiling, cfg.Run.Dimensions, 0,
		RandomInit(seed, cfg.Conway.Fill))
	if err != nil {
		return nil, fmt.Errorf("conway: %w", err)
	}
	return &runner{torus: torus, workers: cfg.Run.Workers}, nil
}

func (r *runner) Name() string { return "conway" }
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
		v := 0.0
		if s, ok := c.State(r.gen); ok && s.Alive {
			v = 1
		}
		out = append(out, v)
	}
	return out
}

func (r *runner) Frame() (*image.Gray, error) {
	return render.Gray(r.torus, r.gen, 1)
}

func (r *runner) Lines() ([]string, error) {
	return render.Text(r.torus, r.gen)
}
