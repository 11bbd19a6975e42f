package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/almostsurely/tsculpt/internal/archive"
)

func newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <world-file> <backup-file>",
		Short: "Write a gzip-compressed backup of a world-save file.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readWorldFile(args[0])
			if err != nil {
				return err
			}

			archived, err := archive.Backup(data)
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], archived, 0o644); err != nil {
				return err
			}
			printSuccess("backed up %s -> %s", args[0], args[1])
			return nil
		},
	}
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <backup-file> <world-file>",
		Short: "Restore a gzip-compressed backup to a world-save file.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			archived, err := readWorldFile(args[0])
			if err != nil {
				return err
			}

			data, err := archive.Restore(archived)
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				return err
			}
			printSuccess("restored %s -> %s", args[0], args[1])
			return nil
		},
	}
}
