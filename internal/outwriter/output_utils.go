package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/talentco/talentmatch/internal/contract"
	"github.com/talentco/talentmatch/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		logWroteFile(successMsg, outputFile)
	}
	return nil
}

// logWroteFile reports a successful file write on stderr.
func logWroteFile(successMsg, outputFile string) {
	fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// createFloatFormatter creates the float formatter closure used across output types.
func createFloatFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}

// formatOptionalRate formats a rate column, or an empty string when the
// result has no value for it.
func formatOptionalRate(rates map[string]float64, key string, fmtFloat func(float64) string) string {
	if rate, ok := rates[key]; ok {
		return fmtFloat(rate)
	}
	return ""
}

const topNClusters = 3

// formatTopClusterBreakdown lists the clusters pulling a candidate's final
// rate up, strongest first.
func formatTopClusterBreakdown(r *schema.MatchResult) string {
	if len(r.ClusterRates) == 0 {
		return "Not applicable"
	}

	clusters := schema.SortedRateKeys(r.ClusterRates)
	sort.SliceStable(clusters, func(i, j int) bool {
		return r.ClusterRates[clusters[i]] > r.ClusterRates[clusters[j]]
	})

	limit := min(len(clusters), topNClusters)
	return strings.Join(clusters[:limit], " > ")
}
