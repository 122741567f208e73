package main

import (
	"github.com/sangkips/sales-engine-api/internal/infrastructure/database"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := database.AutoMigrate(a.db); err != nil {
				return err
			}
			a.log.Info("migrations complete")
			return nil
		},
	}
}
