package cmd

import (
	"github.com/spf13/cobra"
	"github.com/talentco/talentmatch/internal/contract"
	"github.com/talentco/talentmatch/internal/outwriter"
)

// candidatesCmd lists the candidate pool.
var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List the candidate pool with their talent scores.",
	Long: `Show the candidates the match pipeline would consider, with their
assessed score counts.

Examples:
  # List the built-in sample pool
  talentmatch candidates

  # List candidates from a SQLite store, filtered by directorate
  talentmatch candidates --db-backend sqlite --directorate Technology

  # Export the full score table
  talentmatch candidates --output csv --output-file scores.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		source, cleanup, err := buildSource()
		if err != nil {
			contract.LogFatal("Cannot open candidate store", err)
		}
		defer cleanup()

		filter := contract.Filter{
			Position:    cfg.Position,
			Directorate: cfg.Directorate,
			Limit:       cfg.ResultLimit,
		}
		candidates, err := source.FetchCandidates(rootCtx, filter)
		if err != nil {
			contract.LogFatal("Cannot fetch candidates", err)
		}

		if err := outwriter.NewOutWriter().WriteCandidates(candidates, cfg); err != nil {
			contract.LogFatal("Cannot write candidates", err)
		}
	},
}
