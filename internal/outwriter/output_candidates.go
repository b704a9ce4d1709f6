package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/talentco/talentmatch/internal/contract"
	"github.com/talentco/talentmatch/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteCandidateList outputs the candidate pool, dispatching on the
// configured output format. Parquet is not supported for the pool listing.
func WriteCandidateList(candidates []schema.CandidateProfile, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, candidates)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForCandidates(csvWriter, candidates)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for candidate listings")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCandidateTable(candidates, cfg, w)
		}, "Wrote table")
	}
}

// writeCandidateTable renders the pool as a human-readable table.
func writeCandidateTable(candidates []schema.CandidateProfile, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"ID", "Name", "Position", "Grade", "Directorate", "Scores"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, c := range candidates {
		data = append(data, []string{
			c.EmployeeID,
			contract.TruncateText(c.Name, getMaxTableNameWidth(cfg)),
			c.Position,
			c.Grade,
			c.Directorate,
			strconv.Itoa(countScores(&c)),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Showing %d candidates\n", len(candidates))
	return err
}

// writeCSVResultsForCandidates writes one row per candidate score, keeping
// the long format the score store uses.
func writeCSVResultsForCandidates(w *csv.Writer, candidates []schema.CandidateProfile) error {
	header := []string{"employee_id", "name", "position", "grade", "directorate", "cluster", "variable", "score"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, c := range candidates {
		for _, cluster := range sortedScoreClusters(&c) {
			vars := c.Scores[cluster]
			for _, variable := range schema.SortedRateKeys(vars) {
				rec := []string{
					c.EmployeeID,
					c.Name,
					c.Position,
					c.Grade,
					c.Directorate,
					cluster,
					variable,
					strconv.FormatFloat(vars[variable], 'f', -1, 64),
				}
				if err := w.Write(rec); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// countScores returns the number of scored variables across all clusters.
func countScores(c *schema.CandidateProfile) int {
	total := 0
	for _, vars := range c.Scores {
		total += len(vars)
	}
	return total
}

// sortedScoreClusters returns the profile's cluster names in lexicographic order.
func sortedScoreClusters(c *schema.CandidateProfile) []string {
	clusters := make([]string, 0, len(c.Scores))
	for cluster := range c.Scores {
		clusters = append(clusters, cluster)
	}
	sort.Strings(clusters)
	return clusters
}
