package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/almostsurely/tsculpt/internal/core"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <world-file>",
		Short: "Print summary metadata for a world-save file.",
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

			fmt.Printf("world:     %s (id %d)\n", w.Header.WorldName, w.Header.WorldID)
			fmt.Printf("version:   %d\n", w.Version)
			fmt.Printf("size:      %d x %d tiles\n", w.Header.XTiles, w.Header.YTiles)
			fmt.Printf("spawn:     (%d, %d)\n", w.Header.SpawnX, w.Header.SpawnY)
			fmt.Printf("chests:    %d\n", len(w.Chests.Chests))
			fmt.Printf("signs:     %d\n", len(w.Signs.Signs))
			fmt.Printf("npcs:      %d\n", len(w.NPCs.NPCs))
			fmt.Printf("hardmode:  %t\n", w.Header.IsHardMode)
			return nil
		},
	}
}
