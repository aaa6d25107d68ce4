package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"quanta/config"
	"quanta/render"
	"quanta/sim"
	"quanta/telemetry"

	// Rules self-register with the sim registry.
	_ "quanta/rules/conway"
	_ "quanta/rules/rotate"
	_ "quanta/rules/wave"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	rule := flag.String("rule", "", "Rule to run (empty = use config)")
	headless := flag.Bool("headless", false, "Run without graphics")
	generations := flag.Int("generations", 0, "Generations to sweep (0 = use config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV stats and config snapshot")
	exportDir := flag.String("export-dir", "", "Directory for PNG frames (empty = no export)")
	logStats := flag.Bool("log-stats", false, "Log per-generation stats via slog")
	logGrid := flag.Bool("log-grid", false, "Log each generation's text grid (small boards only)")

	flag.Parse()

	// Set up slog first (JSON to stdout) so even config failures log
	// structured.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	name := cfg.Run.Rule
	if *rule != "" {
		name = *rule
	}
	runner, err := sim.Build(name, cfg, rngSeed)
	if err != nil {
		slog.Error("failed to build runner", "rule", name, "error", err)
		os.Exit(1)
	}

	gens := cfg.Run.Generations
	if *generations > 0 {
		gens = *generations
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to open output directory", "dir", *outputDir, "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to snapshot config", "error", err)
		os.Exit(1)
	}

	opts := runOptions{
		generations: gens,
		exportDir:   *exportDir,
		exportEvery: cfg.Export.Every,
		statsEvery:  cfg.Telemetry.Every,
		logStats:    *logStats,
		logGrid:     *logGrid,
	}

	slog.Info("starting simulation",
		"rule", runner.Name(),
		"tiling", cfg.Run.Tiling,
		"dims", cfg.Run.Dimensions,
		"generations", gens,
		"seed", rngSeed,
		"headless", *headless,
	)

	if *headless {
		if err := runHeadless(runner, out, opts); err != nil {
			slog.Error("simulation failed", "error", err)
			os.Exit(1)
		}
		return
	}
	if err := runViewer(runner, out, cfg, opts); err != nil {
		slog.Error("viewer failed", "error", err)
		os.Exit(1)
	}
}

type runOptions struct {
	generations int
	exportDir   string
	exportEvery int
	statsEvery  int
	logStats    bool
	logGrid     bool
}

// afterStep collects stats, logs, and exports for the runner's current
// generation; shared by the headless loop and the viewer.
func afterStep(runner sim.Runner, out *telemetry.OutputManager, opts runOptions) error {
	gen := runner.Generation()

	if opts.statsEvery < 1 || uint64(gen)%uint64(opts.statsEvery) == 0 {
		stats := telemetry.Collect(gen, runner.Sample())
		if opts.logStats {
			stats.LogStats()
		}
		if err := out.WriteStats(stats); err != nil {
			return err
		}
	}

	if opts.logGrid {
		if liner, ok := runner.(sim.Liner); ok {
			lines, err := liner.Lines()
			if err != nil {
				return err
			}
			slog.Info("generation", "gen", uint64(gen))
			for _, line := range lines {
				slog.Info("line", "row", line)
			}
		}
	}

	if opts.exportDir != "" && opts.exportEvery > 0 && uint64(gen)%uint64(opts.exportEvery) == 0 {
		framer, ok := runner.(sim.Framer)
		if !ok {
			return nil
		}
		frame, err := framer.Frame()
		if err != nil {
			return err
		}
		path, err := render.WritePNG(opts.exportDir, gen, frame)
		if err != nil {
			return err
		}
		slog.Debug("frame exported", "gen", uint64(gen), "path", path)
	}
	return nil
}

func runHeadless(runner sim.Runner, out *telemetry.OutputManager, opts runOptions) error {
	for i := 0; i < opts.generations; i++ {
		if err := runner.Step(); err != nil {
			return err
		}
		if err := afterStep(runner, out, opts); err != nil {
			return err
		}
	}
	slog.Info("simulation finished", "generations", uint64(runner.Generation()))
	return nil
}
