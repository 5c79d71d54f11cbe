package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/planner-catalog/internal/infrastructure/server"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner files over HTTP",
		Long:  "Serves server.root on server.port until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default: server.port from config)")

	return cmd
}

func runServe(cmd *cobra.Command, port int) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		static := d.Server
		if port != 0 {
			cfg := d.Config.Server
			cfg.Port = port
			static = server.NewStatic(cfg, d.Logger)
		}

		fmt.Printf("Serving %s at http://localhost%s\n", d.Config.Server.Root, static.Addr())
		return static.ListenAndServe(ctx)
	})
}
