// Command tsculpt inspects, validates, diffs, and backs up Terraria
// world-save files.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// colorize reports whether colored output is appropriate: stdout must
// be a real terminal, matching the common isatty guard CLIs use before
// emitting ANSI escapes.
func colorize() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if colorize() {
		color.New(color.FgGreen).Fprintln(os.Stdout, msg)
		return
	}
	fmt.Fprintln(os.Stdout, msg)
}

func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if colorize() {
		color.New(color.FgRed).Fprintln(os.Stderr, msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

func main() {
	root := &cobra.Command{
		Use:   "tsculpt",
		Short: "Inspect and manipulate Terraria world-save files.",
	}

	root.AddCommand(newInfoCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newDiffCmd())
	root.AddCommand(newBackupCmd())
	root.AddCommand(newRestoreCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
