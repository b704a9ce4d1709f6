package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/talentco/talentmatch/internal/contract"
	"github.com/talentco/talentmatch/internal/store"
)

// migrateCmd runs schema migrations for the candidate store.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the candidate store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  talentmatch migrate --db-backend sqlite

  # Migrate to specific version
  talentmatch migrate --db-backend sqlite --target-version 1

  # Rollback to initial state
  talentmatch migrate --db-backend sqlite --target-version 0`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := store.Migrate(cfg.DBBackend, cfg.DBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
