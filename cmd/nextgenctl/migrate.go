package main

import (
	"fmt"

	"github.com/nextgencars/backend/internal/config/db"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create enum types and tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.Init(); err != nil {
			return err
		}
		if err := db.Migrate(db.DB); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
		return nil
	},
}
