package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <source> <id>",
		Short: "Show how one catalog entry is classified",
		Long:  "Builds both tables from the catalog and prints the normalized record for the given ID.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], args[1])
		},
	}
}

func runInspect(cmd *cobra.Command, source, id string) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		result, err := d.InspectHandler.Handle(ctx, source, id)
		if err != nil {
			return err
		}
		return writeInspect(os.Stdout, result)
	})
}
