// Package sim holds the rule registry and the runner contract the driver
// consumes. Rule packages register a builder in their init; the driver picks
// one by name from the configuration.
package sim

import (
	"fmt"
	"image"
	"sort"

	"quanta/config"
	"quanta/lattice"
)

// Runner drives one rule's lattice a generation at a time.
type Runner interface {
	Name() string
	Generation() lattice.Generation
	// Step sweeps every cell to the next generation.
	Step() error
	// Sample returns one scalar per location at the current generation,
	// for telemetry.
	Sample() []float64
}

// Framer is implemented by runners over two-dimensional lattices that can
// render the current generation as a grayscale frame.
type Framer interface {
	Frame() (*image.Gray, error)
}

// Liner is implemented by runners that can dump the current generation as
// text lines.
type Liner interface {
	Lines() ([]string, error)
}

// Builder constructs a runner from the loaded configuration and a seed.
type Builder func(cfg *config.Config, seed int64) (Runner, error)

var builders = map[string]Builder{}

// Register adds a rule's builder under the provided name.
func Register(name string, b Builder) {
	if name == "" || b == nil {
		return
	}
	builders[name] = b
}

// Build constructs the named runner.
func Build(name string, cfg *config.Config, seed int64) (Runner, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("sim: unknown rule %q (registered: %v)", name, Names())
	}
	return b(cfg, seed)
}

// Names lists the registered rules, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
