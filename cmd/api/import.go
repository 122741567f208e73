package main

import (
	"fmt"

	"github.com/sangkips/sales-engine-api/internal/infrastructure/database"
	"github.com/sangkips/sales-engine-api/internal/infrastructure/importer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func importCmd() *cobra.Command {
	var (
		dir       string
		batchSize int
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load the CSV fixtures into the database",
		Long: `Load merchants.csv, customers.csv, items.csv, invoices.csv,
invoice_items.csv and transactions.csv from a directory, in that order.
Missing files are skipped. The whole import runs in one transaction.

Examples:
  sales-engine import --dir ./data
  sales-engine import --dir ./data --batch-size 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := database.AutoMigrate(a.db); err != nil {
				return err
			}

			results, err := importer.New(a.db, a.log, batchSize).ImportDir(cmd.Context(), dir)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			total := 0
			for _, r := range results {
				total += r.Rows
			}
			a.log.Info("import complete", zap.Int("rows", total), zap.Int("files", len(results)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "data", "directory containing the CSV files")
	cmd.Flags().IntVar(&batchSize, "batch-size", importer.DefaultBatchSize, "rows per insert batch")

	return cmd
}
