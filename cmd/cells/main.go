package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cells/internal/app"
	"cells/internal/config"
	"cells/internal/sims/elementary"
)

var (
	configFile string
	presetName string
	rule       int
	width      int
	height     int
	seedMode   string
	boundary   string
	seed       int64
	scale      int
	tps        int
	cycle      bool
	cycleDelay float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cells",
		Short: "Wolfram's elementary cellular automata",
		Long: "cells computes and renders Wolfram's elementary cellular automata:\n" +
			"a one-dimensional binary automaton whose generations are stacked as\n" +
			"rows to form triangular and fractal patterns. Without a subcommand it\n" +
			"opens the GUI (requires the 'ebiten' build tag).",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			board, err := elementary.New(cfg.BoardConfig())
			if err != nil {
				return err
			}
			return app.Run(board, app.Options{
				Scale:      cfg.Scale,
				TPS:        cfg.TPS,
				Seed:       cfg.Seed,
				Cycle:      cfg.Cycle,
				CycleDelay: delayDuration(cfg),
			})
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "yaml config file")
	pf.StringVar(&presetName, "preset", "", "start from a named preset ("+strings.Join(config.PresetNames(), ", ")+")")
	pf.IntVar(&rule, "rule", config.DefaultRule, "rule number in [0,255], or -1 for a random curated rule")
	pf.IntVar(&width, "width", config.DefaultWidth, "cells per generation")
	pf.IntVar(&height, "height", config.DefaultHeight, "generations per board")
	pf.StringVar(&seedMode, "seed-mode", string(elementary.SeedCenter), "generation zero seeding: center, random or sparse")
	pf.StringVar(&boundary, "boundary", "zero", "edge convention: zero or wrap")
	pf.Int64Var(&seed, "seed", config.DefaultSeed, "seed for deterministic runs")
	pf.IntVar(&scale, "scale", config.DefaultScale, "pixel scale multiplier")
	pf.IntVar(&tps, "tps", config.DefaultTPS, "generations per second")
	pf.BoolVar(&cycle, "cycle", false, "restart with a new rule once the board is full")
	pf.Float64Var(&cycleDelay, "cycle-delay", config.DefaultCycleDelay, "seconds to linger on a finished board in cycle mode")

	rootCmd.AddCommand(
		traceCmd(),
		liveCmd(),
		densityCmd(),
		surveyCmd(),
		exportCmd(),
		rulesCmd(),
		presetCmd(),
		configCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cells:", err)
		os.Exit(1)
	}
}

// resolveConfig layers preset < file < explicit flags over the
// defaults, then validates the result once. Commands receive a
// configuration they can trust.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if presetName != "" {
		preset := config.GetPreset(presetName)
		if preset == nil {
			return nil, fmt.Errorf("unknown preset %q (have: %s)",
				presetName, strings.Join(config.PresetNames(), ", "))
		}
		cfg = preset
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("rule") {
		cfg.Rule = rule
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("seed-mode") {
		cfg.SeedMode = seedMode
	}
	if flags.Changed("boundary") {
		cfg.Boundary = boundary
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("tps") {
		cfg.TPS = tps
	}
	if flags.Changed("cycle") {
		cfg.Cycle = cycle
	}
	if flags.Changed("cycle-delay") {
		cfg.CycleDelay = cycleDelay
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newBoard(cmd *cobra.Command) (*elementary.Board, *config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	board, err := elementary.New(cfg.BoardConfig())
	if err != nil {
		return nil, nil, err
	}
	return board, cfg, nil
}

func runToFull(board *elementary.Board) {
	for !board.Full() {
		board.Step()
	}
}

func delayDuration(cfg *config.Config) time.Duration {
	return time.Duration(cfg.CycleDelay * float64(time.Second))
}
