package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"cells/internal/config"
	"cells/internal/export"
	"cells/internal/sims/elementary"
	"cells/internal/tui"
	"cells/internal/viz"
)

func traceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace",
		Short: "run a full board and print it as braille",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, cfg, err := newBoard(cmd)
			if err != nil {
				return err
			}
			runToFull(board)

			size := board.Size()
			fmt.Println(viz.Header.Render(fmt.Sprintf("rule %d · %dx%d · %s boundary",
				board.Rule(), size.W, size.H, cfg.Boundary)))
			canvas := viz.DrawCells(board.Cells(), size.W, size.H)
			fmt.Print(canvas.String())
			fmt.Println(viz.Subtle.Render(fmt.Sprintf("%d generations, seed %d", board.Row(), cfg.Seed)))
			return nil
		},
	}
}

func liveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "animate the board in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, cfg, err := newBoard(cmd)
			if err != nil {
				return err
			}
			return tui.Run(board, cfg.TPS, cfg.Seed, cfg.Cycle, delayDuration(cfg))
		},
	}
}

func densityCmd() *cobra.Command {
	graphHeight := 12
	cmd := &cobra.Command{
		Use:   "density",
		Short: "plot live-cell density per generation",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, _, err := newBoard(cmd)
			if err != nil {
				return err
			}
			runToFull(board)

			size := board.Size()
			cells := board.Cells()
			data := make([]float64, size.H)
			for y := 0; y < size.H; y++ {
				live := 0
				for x := 0; x < size.W; x++ {
					if cells[y*size.W+x] != 0 {
						live++
					}
				}
				data[y] = float64(live) / float64(size.W)
			}

			fmt.Println(asciigraph.Plot(data,
				asciigraph.Height(graphHeight),
				asciigraph.Caption(fmt.Sprintf("live-cell density by generation, rule %d", board.Rule())),
			))
			return nil
		},
	}
	cmd.Flags().IntVar(&graphHeight, "graph-height", graphHeight, "height of the plot in rows")
	return cmd
}

func exportCmd() *cobra.Command {
	out := "cells.svg"
	cellSize := 2.0
	cmd := &cobra.Command{
		Use:   "export",
		Short: "run a full board and write it as SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, _, err := newBoard(cmd)
			if err != nil {
				return err
			}
			runToFull(board)

			size := board.Size()
			svg := export.BoardToSVG(board.Cells(), size.W, size.H, cellSize)
			if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
				return err
			}
			fmt.Printf("wrote %s (rule %d, %dx%d)\n", out, board.Rule(), size.W, size.H)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", out, "output file")
	cmd.Flags().Float64Var(&cellSize, "cell-size", cellSize, "cell side length in SVG units")
	return cmd
}

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "print the curated rule pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(viz.Header.Render("curated rules"))
			const perLine = 13
			for i := 0; i < len(elementary.CuratedRules); i += perLine {
				end := i + perLine
				if end > len(elementary.CuratedRules) {
					end = len(elementary.CuratedRules)
				}
				parts := make([]string, 0, perLine)
				for _, r := range elementary.CuratedRules[i:end] {
					parts = append(parts, fmt.Sprintf("%3d", r))
				}
				fmt.Println(strings.Join(parts, " "))
			}
			fmt.Println(viz.Subtle.Render(fmt.Sprintf("%d rules; cycle mode and --rule -1 draw from this pool", len(elementary.CuratedRules))))
			return nil
		},
	}
}

func presetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preset",
		Short: "list the named presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tRULE\tSIZE\tSEED MODE\tBOUNDARY\tCYCLE")
			for _, name := range config.PresetNames() {
				p := config.Presets[name]
				ruleLabel := fmt.Sprint(p.Rule)
				if p.Rule == elementary.RandomRule {
					ruleLabel = "random"
				}
				fmt.Fprintf(w, "%s\t%s\t%dx%d\t%s\t%s\t%v\n",
					name, ruleLabel, p.Width, p.Height, p.SeedMode, p.Boundary, p.Cycle)
			}
			return w.Flush()
		},
	}
}

func configCmd() *cobra.Command {
	out := "cells.yaml"
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "write the resolved configuration to a yaml file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(out, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&out, "out", "o", out, "output file")

	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	cmd.AddCommand(initCmd)
	return cmd
}
