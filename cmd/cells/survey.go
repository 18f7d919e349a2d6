package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cells/internal/core"
	"cells/internal/sims/elementary"
	"cells/pkg/wolfram"
)

type surveyResult struct {
	rule         int
	activity     float64 // mean fraction of cells that change per step
	meanDensity  float64
	finalDensity float64
}

func surveyCmd() *cobra.Command {
	steps := 128
	workers := runtime.NumCPU()
	top := 20
	all := false

	cmd := &cobra.Command{
		Use:   "survey",
		Short: "rank rules by activity across many boards",
		Long: "survey evolves one board per rule in parallel and ranks the rules\n" +
			"by how many cells keep changing from one generation to the next.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if steps <= 0 {
				return fmt.Errorf("steps must be positive: got %d", steps)
			}
			if workers <= 0 {
				workers = 1
			}

			rules := elementary.CuratedRules
			if all {
				rules = make([]int, 256)
				for i := range rules {
					rules[i] = i
				}
			}

			jobs := make(chan int, len(rules))
			results := make(chan surveyResult, len(rules))

			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for rule := range jobs {
						results <- evaluateRule(cfg.BoardConfig(), rule, steps)
					}
				}()
			}
			for _, rule := range rules {
				jobs <- rule
			}
			close(jobs)
			wg.Wait()
			close(results)

			ranked := make([]surveyResult, 0, len(rules))
			for res := range results {
				ranked = append(ranked, res)
			}
			sort.Slice(ranked, func(i, j int) bool {
				if ranked[i].activity != ranked[j].activity {
					return ranked[i].activity > ranked[j].activity
				}
				return ranked[i].rule < ranked[j].rule
			})
			if top > 0 && top < len(ranked) {
				ranked = ranked[:top]
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RULE\tACTIVITY\tMEAN DENSITY\tFINAL DENSITY")
			for _, res := range ranked {
				fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\n",
					res.rule, res.activity, res.meanDensity, res.finalDensity)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&steps, "steps", steps, "generations to evolve per rule")
	cmd.Flags().IntVar(&workers, "workers", workers, "number of worker goroutines")
	cmd.Flags().IntVar(&top, "top", top, "rows to print (0 for all)")
	cmd.Flags().BoolVar(&all, "all", all, "survey all 256 rules instead of the curated pool")
	return cmd
}

// evaluateRule evolves a single generation for the given number of
// steps, tracking how lively the rule is. It operates on the pure
// engine directly; no display frame is needed.
func evaluateRule(cfg elementary.Config, rule, steps int) surveyResult {
	rs, err := wolfram.NewRuleset(rule)
	if err != nil {
		// Callers only pass rules in [0,255].
		panic(err)
	}

	rng := core.NewRNG(cfg.Seed).Source()
	var gen wolfram.Generation
	switch cfg.SeedMode {
	case elementary.SeedRandom:
		gen, _ = wolfram.NewRandomSeeded(cfg.Width, rng)
	case elementary.SeedSparse:
		gen, _ = wolfram.NewSparseSeeded(cfg.Width, rng)
	default:
		gen, _ = wolfram.NewCenterSeeded(cfg.Width)
	}

	w := float64(cfg.Width)
	res := surveyResult{rule: rule}
	densitySum := float64(gen.Population()) / w
	changedSum := 0.0
	for s := 0; s < steps; s++ {
		next := gen.Next(rs, cfg.Boundary)
		changed := 0
		for i := range next {
			if next[i] != gen[i] {
				changed++
			}
		}
		changedSum += float64(changed) / w
		densitySum += float64(next.Population()) / w
		gen = next
	}

	res.activity = changedSum / float64(steps)
	res.meanDensity = densitySum / float64(steps+1)
	res.finalDensity = float64(gen.Population()) / w
	return res
}
