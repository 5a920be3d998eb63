package main

import (
	"os"

	"github.com/spf13/cobra"

	"milkrun/internal/interfaces/cli/migrate"
	"milkrun/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "milkrun",
		Short: "Milkrun - dairy catalog and fulfillment service",
		Long:  `Milkrun manages a dairy product catalog, customer profiles, one-time orders, and recurring subscriptions, with a built-in HTTP server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
