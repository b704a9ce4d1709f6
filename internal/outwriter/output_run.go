package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/talentco/talentmatch/internal/contract"
	"github.com/talentco/talentmatch/internal/parquet"
	"github.com/talentco/talentmatch/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRunResults outputs a match run, dispatching based on the output format configured.
func WriteRunResults(run *schema.PipelineRun, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat := createFloatFormatter(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRunJSONResults(run, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRunCSVResults(run, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeRunParquetResults(run, cfg); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRunTable(run, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRunJSONResults handles opening the file and calling the JSON writer.
func writeRunJSONResults(run *schema.PipelineRun, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForRun(w, run)
	}, "Wrote JSON")
}

// writeRunCSVResults handles opening the file and calling the CSV writer.
func writeRunCSVResults(run *schema.PipelineRun, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForRun(csvWriter, run, fmtFloat)
	}, "Wrote CSV")
}

// writeRunParquetResults converts the run to flat records and writes them out.
// Parquet needs a seekable file, so there is no stdout path here; config
// validation guarantees OutputFile is set.
func writeRunParquetResults(run *schema.PipelineRun, cfg *contract.Config) error {
	records, err := parquet.MatchRecordsFromRun(run)
	if err != nil {
		return err
	}
	if err := parquet.WriteMatchRecordsParquet(records, cfg.OutputFile); err != nil {
		return err
	}
	logWroteFile("Wrote parquet", cfg.OutputFile)
	return nil
}

// writeRunTable generates and writes the human-readable table plus the
// analytics and job profile sections below it.
func writeRunTable(run *schema.PipelineRun, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	clusters := schema.ClusterColumns(run)

	// 1. Define Headers
	headers := []string{"Rank", "ID", "Name", "Position", "Match", "Label"}
	if cfg.Detail {
		headers = append(headers, clusters...)
	}
	if cfg.Explain {
		headers = append(headers, "Explain")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}
	var data [][]string
	for i, r := range run.Results {
		name := r.Name
		if r.IsBenchmark {
			name += " *"
		}
		row := []string{
			strconv.Itoa(i + 1), // Rank
			r.EmployeeID,
			contract.TruncateText(name, getMaxTableNameWidth(cfg)),
			r.Position,
			fmtFloat(r.FinalMatchRate),
			label(r.FinalMatchRate),
		}
		if cfg.Detail {
			for _, cluster := range clusters {
				if rate, ok := r.ClusterRates[cluster]; ok {
					row = append(row, fmtFloat(rate))
				} else {
					row = append(row, "-")
				}
			}
		}
		if cfg.Explain {
			row = append(row, formatTopClusterBreakdown(&r))
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d candidates, * marks benchmark employees\n\n", len(run.Results)); err != nil {
		return err
	}

	// 5. Analytics summary
	a := run.Analytics
	if _, err := fmt.Fprintf(writer, "Average match: %s%%  Benchmark average: %s%%  Top talent (>=%.0f%%): %d\n",
		fmtFloat(a.AvgMatch), fmtFloat(a.BenchmarkAvg), schema.TopTalentThreshold, a.TopTalentCount); err != nil {
		return err
	}
	if _, err := fmt.Fprint(writer, "Distribution:"); err != nil {
		return err
	}
	for _, bucket := range a.Distribution.Buckets() {
		if _, err := fmt.Fprintf(writer, "  %s: %d", bucket.Label, bucket.Count); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(writer); err != nil {
		return err
	}

	// 6. Job profile
	if err := writeJobProfile(writer, run); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "Match completed in %v\n", duration)
	return err
}

// writeJobProfile prints the generated profile sections for the role.
func writeJobProfile(writer io.Writer, run *schema.PipelineRun) error {
	p := run.Profile
	if _, err := fmt.Fprintf(writer, "\nJob profile for %s (%s)\n", run.Role.Name, run.Role.Level); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Requirements: %s\n", p.JobRequirements); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Description: %s\n", p.JobDescription); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(writer, "Key competencies:"); err != nil {
		return err
	}
	for i, comp := range p.KeyCompetencies {
		if _, err := fmt.Fprintf(writer, "  %d. %s\n", i+1, comp); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVResultsForRun writes the flattened run in CSV format. The header is
// the fixed identity columns followed by cluster then variable rate columns.
func writeCSVResultsForRun(w *csv.Writer, run *schema.PipelineRun, fmtFloat func(float64) string) error {
	clusters := schema.ClusterColumns(run)
	variables := schema.VariableColumns(run)

	if err := w.Write(schema.FlatColumns(run)); err != nil {
		return err
	}
	for _, r := range run.Results {
		rec := []string{
			r.EmployeeID,
			r.Name,
			r.Position,
			r.Grade,
			r.Directorate,
			fmtFloat(r.FinalMatchRate),
			strconv.FormatBool(r.IsBenchmark),
		}
		for _, cluster := range clusters {
			rec = append(rec, formatOptionalRate(r.ClusterRates, cluster, fmtFloat))
		}
		for _, variable := range variables {
			rec = append(rec, formatOptionalRate(r.VariableRates, variable, fmtFloat))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForRun writes the run in JSON format with rank and label
// added per result.
func writeJSONResultsForRun(w io.Writer, run *schema.PipelineRun) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONMatchResult struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.MatchResult
	}
	type JSONRun struct {
		Role         schema.RoleDescriptor    `json:"role"`
		BenchmarkIDs []string                 `json:"benchmark_ids"`
		Results      []JSONMatchResult        `json:"results"`
		Analytics    schema.MatchAnalytics    `json:"analytics"`
		Profile      schema.JobProfile        `json:"profile"`
		Baseline     schema.BenchmarkBaseline `json:"baseline"`
	}

	results := make([]JSONMatchResult, len(run.Results))
	for i, r := range run.Results {
		results[i] = JSONMatchResult{
			Rank:        i + 1,
			Label:       contract.GetPlainLabel(r.FinalMatchRate),
			MatchResult: r,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, JSONRun{
		Role:         run.Role,
		BenchmarkIDs: run.BenchmarkIDs,
		Results:      results,
		Analytics:    run.Analytics,
		Profile:      run.Profile,
		Baseline:     run.Baseline,
	})
}
