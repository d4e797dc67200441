package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tracklet-io/tracklet/internal/interfaces/cli/migrate"
	"github.com/tracklet-io/tracklet/internal/interfaces/cli/seed"
	"github.com/tracklet-io/tracklet/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tracklet",
		Short: "Tracklet - a small ticket tracker",
		Long:  `Tracklet serves a ticket tracking HTTP API with hierarchy, typed relations and filtering, plus migration and seeding tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
