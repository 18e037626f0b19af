package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the transaction database schema up to date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			count, err := store.CountTransactions(cmd.Context())
			if err != nil {
				return err
			}

			slog.Info("Database ready", "transactions", count)
			return nil
		},
	}
}
