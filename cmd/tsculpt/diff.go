package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/almostsurely/tsculpt/internal/analysis"
	"github.com/almostsurely/tsculpt/internal/core"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <world-file-a> <world-file-b>",
		Short: "Show a structural diff between two world-save files.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataA, err := readWorldFile(args[0])
			if err != nil {
				return err
			}
			dataB, err := readWorldFile(args[1])
			if err != nil {
				return err
			}

			a, err := core.Load(dataA)
			if err != nil {
				return err
			}
			b, err := core.Load(dataB)
			if err != nil {
				return err
			}

			diff := analysis.DiffWorlds(a, b)
			if diff == "" {
				printSuccess("no differences")
				return nil
			}
			fmt.Println(diff)
			return nil
		},
	}
}
