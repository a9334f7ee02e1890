package main

import (
	"fmt"
	"os"

	"github.com/nextgencars/backend/internal/config"
	"github.com/nextgencars/backend/internal/config/db"
	"github.com/nextgencars/backend/internal/repository"
	"github.com/nextgencars/backend/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

// rootCmd is the operator tool for a NextGen Cars deployment
var rootCmd = &cobra.Command{
	Use:   "nextgenctl",
	Short: "Administer a NextGen Cars backend",
	Long: `nextgenctl talks directly to the database configured through the
usual DB_* environment variables (or .env).

Available subcommands:
  migrate      - Create enum types and tables
  seed         - Load clients, vehicles and work orders from YAML
  user create  - Create a staff account, e.g. the first admin`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = config.LoadConfig()
		level := config.LogLevel
		if verbose {
			level = "debug"
		}
		log, err := logger.New(level, "console", "nextgenctl")
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(log)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(userCmd)
}

// connect opens the database and migrates it so every subcommand sees the
// current schema.
func connect() (*repository.Repos, error) {
	if err := db.Init(); err != nil {
		return nil, err
	}
	if err := db.Migrate(db.DB); err != nil {
		return nil, err
	}
	return repository.NewRepositories(db.DB), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
