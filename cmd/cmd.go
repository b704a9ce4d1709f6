// Package cmd defines the command-line interface for talentmatch.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/talentco/talentmatch/internal/contract"
	"github.com/talentco/talentmatch/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(candidatesCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("position", "", "Only consider candidates with this position")
	rootCmd.PersistentFlags().String("directorate", "", "Only consider candidates from this directorate")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of candidates to consider")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for rate columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("db-backend", string(schema.NoneBackend), "Candidate store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of matchCmd to Viper
	matchCmd.Flags().StringP("role", "r", "", "Role name for the vacancy")
	matchCmd.Flags().String("level", "", "Job level for the vacancy (e.g. Junior, Senior)")
	matchCmd.Flags().String("purpose", "", "One-line purpose of the role")
	matchCmd.Flags().StringP("benchmarks", "b", "", "Comma-separated benchmark employee IDs (at most 3 are used)")
	matchCmd.Flags().Bool("detail", false, "Print per-candidate cluster rate columns")
	matchCmd.Flags().Bool("explain", false, "Print the clusters driving each rate")
	matchCmd.Flags().String("ai-model", "", "Gemini model for job profile generation")
	matchCmd.Flags().String("gemini-api-key", "", "Gemini API key (prefer TALENTMATCH_GEMINI_API_KEY)")
	if err := viper.BindPFlags(matchCmd.Flags()); err != nil {
		contract.LogFatal("Error binding match flags", err)
	}

	// Bind all flags of migrateCmd to Viper
	migrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(migrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding migrate flags", err)
	}
}
