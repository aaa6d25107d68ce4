// Package config provides configuration loading and access for the
// simulation driver.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Run       RunConfig       `yaml:"run"`
	Conway    ConwayConfig    `yaml:"conway"`
	Wave      WaveConfig      `yaml:"wave"`
	Rotate    RotateConfig    `yaml:"rotate"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Export    ExportConfig    `yaml:"export"`
	Screen    ScreenConfig    `yaml:"screen"`
}

// RunConfig selects the rule, the lattice shape, and the sweep schedule.
type RunConfig struct {
	Rule        string `yaml:"rule"`        // conway, wave, rotate
	Tiling      string `yaml:"tiling"`      // orthogonal, orthodiagonal, hexagonal, moore
	Dimensions  []int  `yaml:"dimensions"`  // one extent per axis
	Generations int    `yaml:"generations"` // generations to sweep
	Workers     int    `yaml:"workers"`     // sweep goroutines (0 = NumCPU)
}

// ConwayConfig holds the life rule's seeding parameters.
type ConwayConfig struct {
	Fill float64 `yaml:"fill"` // initial live-cell density in [0, 1]
}

// WaveConfig holds the wave rule's tuning parameters.
type WaveConfig struct {
	Period   float64 `yaml:"period"`   // generations per radian of the driving oscillator
	Gain     float64 `yaml:"gain"`     // driving amplitude
	Coupling float64 `yaml:"coupling"` // neighbor pull per amplitude delta
}

// RotateConfig holds the angle-diffusion rule's tuning parameters.
type RotateConfig struct {
	Rate float64 `yaml:"rate"` // divisor applied to the neighborhood-mean nudge
}

// TelemetryConfig holds stats collection settings.
type TelemetryConfig struct {
	Every int `yaml:"every"` // collect stats every N generations (0 = every generation)
}

// ExportConfig holds grayscale frame export settings.
type ExportConfig struct {
	Every int `yaml:"every"` // export a PNG every N generations
}

// ScreenConfig holds viewer window settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present
		// in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects configurations the driver could not run.
func (c *Config) validate() error {
	if c.Run.Rule == "" {
		return fmt.Errorf("config: run.rule must name a rule")
	}
	if len(c.Run.Dimensions) == 0 {
		return fmt.Errorf("config: run.dimensions must list at least one axis")
	}
	for axis, extent := range c.Run.Dimensions {
		if extent < 1 {
			return fmt.Errorf("config: run.dimensions axis %d has extent %d", axis, extent)
		}
	}
	if c.Run.Generations < 1 {
		return fmt.Errorf("config: run.generations must be positive")
	}
	if c.Conway.Fill < 0 || c.Conway.Fill > 1 {
		return fmt.Errorf("config: conway.fill must be in [0, 1]")
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
