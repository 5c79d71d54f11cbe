package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded builds",
		Long:  "Lists recent builds with the change in included buildings against the previous build.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultHistoryLimit, "Maximum number of builds to display")

	return cmd
}

func runHistory(cmd *cobra.Command, limit int) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		if d.HistoryHandler == nil {
			return errors.New("build history is disabled (history.path is empty)")
		}

		entries, err := d.HistoryHandler.Handle(ctx, limit)
		if err != nil {
			return err
		}
		return writeHistory(os.Stdout, entries)
	})
}
