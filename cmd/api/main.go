package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "sales-engine",
		Short:   "Sales engine - read-only JSON API over merchant sales data",
		Version: Version,
		// Running without a subcommand starts the server
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addServeFlags(rootCmd)

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(importCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
