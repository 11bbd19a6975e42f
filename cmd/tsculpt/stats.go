package main

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/almostsurely/tsculpt/internal/analysis"
	"github.com/almostsurely/tsculpt/internal/core"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <world-file>",
		Short: "Compute per-column tile statistics for a world-save file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readWorldFile(args[0])
			if err != nil {
				return err
			}
			w, err := core.Load(data)
			if err != nil {
				return err
			}

			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			s.Prefix = fmt.Sprintf("Computing stats for %s... ", args[0])
			s.Start()
			mapStats, err := analysis.ComputeMapStats(w.Map)
			s.Stop()
			if err != nil {
				return err
			}

			totals := mapStats.Totals()
			fmt.Printf("active tiles: %d\n", totals.ActiveTiles)
			fmt.Printf("liquid tiles: %d\n", totals.LiquidTiles)
			fmt.Printf("wired tiles:  %d\n", totals.WiredTiles)
			fmt.Printf("distinct tile types: %d\n", len(totals.DistinctKind))
			return nil
		},
	}
}
