package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/planner-catalog/internal/application/handlers"
)

func newBuildCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "build <source>",
		Short: "Build the planner data modules from a catalog",
		Long: "Reads the building catalog from a URL or local JSON file and writes the\n" +
			"main-city and Quantum Incursion modules to the output directory.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args[0], outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory (default: output.dir from config)")

	return cmd
}

func runBuild(cmd *cobra.Command, source, outputDir string) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		if outputDir != "" {
			d.Config.Output.Dir = outputDir
		}

		req := handlers.BuildRequest{
			Source: source,
			Main:   handlers.ModuleTarget{Path: d.Config.MainOutputPath(), Export: d.Config.Output.MainExport},
			QI:     handlers.ModuleTarget{Path: d.Config.QIOutputPath(), Export: d.Config.Output.QIExport},
		}

		result, err := d.BuildHandler.Handle(ctx, req)
		if err != nil {
			return err
		}

		displayBuild(os.Stdout, result)
		return nil
	})
}

func displayBuild(w io.Writer, result *handlers.BuildResult) {
	fmt.Fprintf(w, "Loaded %d entities.\n\n", result.Run.Entities)
	writePassStats(w, "Main city buildings:", result.Run.Main, false)
	fmt.Fprintf(w, "Wrote %s\n\n", result.MainPath)
	writePassStats(w, "Quantum Incursion buildings:", result.Run.QI, true)
	fmt.Fprintf(w, "Wrote %s\n", result.QIPath)
	if result.Recorded {
		fmt.Fprintf(w, "\nRecorded build %s\n", result.Run.ID)
	}
}
