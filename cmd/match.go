package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/talentco/talentmatch/core"
	"github.com/talentco/talentmatch/internal/contract"
	"github.com/talentco/talentmatch/internal/outwriter"
)

// matchCmd runs a full match for a vacancy.
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank candidates by match rate against benchmark employees.",
	Long: `Score every candidate in the talent pool against a benchmark baseline and
rank them by final match rate.

The baseline is the per-variable mean of up to 3 benchmark employees. Each
candidate's scores are compared against it variable by variable, rolled up
into cluster rates and one final match rate between 0 and 100.

Examples:
  # Match against two benchmark employees using the built-in sample pool
  talentmatch match --role "Data Engineer" --level Senior \
    --purpose "build and operate data pipelines" --benchmarks EMP1000,EMP1003

  # Restrict the pool and show cluster columns
  talentmatch match -r "Backend Engineer" --level Mid --purpose "own services" \
    -b EMP1001 --position "Software Engineer" --detail

  # Export findings to CSV for tracking
  talentmatch match -r "Data Analyst" --level Junior --purpose "analyze metrics" \
    -b EMP1002,EMP1004 --output csv --output-file matches.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := contract.ValidateRole(cfg); err != nil {
			contract.LogFatal("Cannot run match", err)
		}

		source, cleanup, err := buildSource()
		if err != nil {
			contract.LogFatal("Cannot open candidate store", err)
		}
		defer cleanup()

		generator := buildGenerator(rootCtx)
		filter := contract.Filter{
			Position:    cfg.Position,
			Directorate: cfg.Directorate,
			Limit:       cfg.ResultLimit,
		}

		start := time.Now()
		run, err := core.RunPipeline(rootCtx, cfg.Role, cfg.BenchmarkIDs, source, generator, filter, cfg.Weights)
		if err != nil {
			contract.LogFatal("Cannot run match", err)
		}
		duration := time.Since(start)

		// Record the vacancy when a durable store is behind the source.
		// Bookkeeping only: a failed insert never fails the run.
		if recorder, ok := source.(contract.VacancyRecorder); ok {
			vacancyID, err := recorder.InsertVacancy(rootCtx, cfg.Role, run.BenchmarkIDs)
			if err != nil {
				contract.LogWarn("could not record vacancy", err)
			} else {
				fmt.Fprintf(os.Stderr, "📋 Recorded vacancy %s\n", vacancyID)
			}
		}

		if err := outwriter.NewOutWriter().WriteRun(run, cfg, duration); err != nil {
			contract.LogFatal("Cannot write match results", err)
		}
	},
}
