package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/almostsurely/tsculpt/internal/core"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <world-file>",
		Short: "Check that a world-save file is well-formed and internally consistent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readWorldFile(args[0])
			if err != nil {
				return err
			}

			w, err := core.Load(data)
			if err != nil {
				printError("invalid: %v", err)
				return err
			}

			if !w.Valid() {
				printError("invalid: world failed post-load validation")
				return fmt.Errorf("world failed post-load validation")
			}
			if !w.TitleMatchesWorldName() {
				printError("warning: footer title does not match header world name")
			}

			printSuccess("valid: %s", args[0])
			return nil
		},
	}
}
