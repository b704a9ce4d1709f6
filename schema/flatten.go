package schema

import "sort"

// Flattening turns a PipelineRun into tabular records for export (CSV,
// parquet). Column ordering is fixed identity columns first, then cluster
// rate columns, then variable rate columns, both lexicographically sorted so
// the layout is stable within a run.

// FlatIdentityColumns are the fixed leading columns of a flattened run.
var FlatIdentityColumns = []string{
	"employee_id",
	"name",
	"position",
	"grade",
	"directorate",
	"final_match_rate",
	"is_benchmark",
}

// ClusterColumns returns the sorted cluster names appearing across all
// results of the run.
func ClusterColumns(run *PipelineRun) []string {
	seen := make(map[string]struct{})
	for _, r := range run.Results {
		for cluster := range r.ClusterRates {
			seen[cluster] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// VariableColumns returns the sorted variable names appearing across all
// results of the run.
func VariableColumns(run *PipelineRun) []string {
	seen := make(map[string]struct{})
	for _, r := range run.Results {
		for variable := range r.VariableRates {
			seen[variable] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// FlatColumns returns the full ordered header for a flattened run.
func FlatColumns(run *PipelineRun) []string {
	columns := make([]string, 0, len(FlatIdentityColumns))
	columns = append(columns, FlatIdentityColumns...)
	columns = append(columns, ClusterColumns(run)...)
	columns = append(columns, VariableColumns(run)...)
	return columns
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortedRateKeys returns the keys of a rate map in lexicographic order.
// Aggregation and rendering both iterate rates this way so that output is
// reproducible run to run.
func SortedRateKeys(rates map[string]float64) []string {
	keys := make([]string, 0, len(rates))
	for k := range rates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
