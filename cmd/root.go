package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/talentco/talentmatch/internal/ai"
	"github.com/talentco/talentmatch/internal/contract"
	"github.com/talentco/talentmatch/internal/store"
	"github.com/talentco/talentmatch/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "talentmatch",
	Short:              "Match internal candidates against benchmark employees for a vacancy.",
	Long:               `Talentmatch scores every candidate in the talent pool against a benchmark profile and ranks them by match rate.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".talentmatch") // Name of config file (without extension)
		viper.SetConfigType("yaml")         // We'll use YAML format
		viper.AddConfigPath(".")            // Look in the current directory
		viper.AddConfigPath("$HOME")        // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("TALENTMATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("limit", contract.DefaultResultLimit)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("db-backend", schema.NoneBackend)
	viper.SetDefault("db-connect", "")
	viper.SetDefault("ai-model", "")
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and complex parsing.
	// This function now populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	color.NoColor = !cfg.UseColors

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// buildSource selects the candidate source for the configured backend. The
// returned cleanup is a no-op for the sample source. When a database backend
// is configured but unreachable, the run degrades to the built-in sample
// dataset with a warning, matching how the dashboard behaves offline.
func buildSource() (contract.CandidateSource, func(), error) {
	if cfg.DBBackend == schema.NoneBackend {
		return store.NewSampleSource(), func() {}, nil
	}

	st, err := store.NewStore(cfg.DBBackend, cfg.DBConnect)
	if err != nil {
		contract.LogWarn("candidate store unavailable, using sample data", err)
		return store.NewSampleSource(), func() {}, nil
	}
	return st, func() { _ = st.Close() }, nil
}

// buildGenerator selects the job profile generator. Without an API key the
// deterministic fallback profile is used.
func buildGenerator(ctx context.Context) contract.ProfileGenerator {
	if cfg.GeminiAPIKey == "" {
		return ai.NewProfileGenerator(nil)
	}
	client, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.AIModel)
	if err != nil {
		contract.LogWarn("gemini client unavailable, using fallback profiles", err)
		return ai.NewProfileGenerator(nil)
	}
	return ai.NewProfileGenerator(client)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
