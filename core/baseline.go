package core

import (
	"fmt"

	"github.com/talentco/talentmatch/schema"
)

// MaxBenchmarks is the maximum number of benchmark employees honored per
// run. Extra IDs supplied by the caller are silently ignored.
const MaxBenchmarks = 3

// BuildBaseline derives the reference score profile from the benchmark
// employees. The supplied ID list is truncated to MaxBenchmarks in caller
// order; IDs that match no candidate contribute nothing. For each variable
// the reference value is the arithmetic mean across the matched benchmark
// candidates that carry it (no imputation for missing variables). If no ID
// matches any candidate the build fails with schema.ErrNoBenchmarksFound.
func BuildBaseline(candidates []schema.CandidateProfile, benchmarkIDs []string) (schema.BenchmarkBaseline, error) {
	ids := TruncateBenchmarkIDs(benchmarkIDs)

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var matched []schema.CandidateProfile
	for _, c := range candidates {
		if _, ok := wanted[c.EmployeeID]; ok {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("benchmark ids %v: %w", ids, schema.ErrNoBenchmarksFound)
	}

	type accumulator struct {
		sum   float64
		count int
	}
	sums := make(map[string]map[string]*accumulator)
	for _, c := range matched {
		for cluster, vars := range c.Scores {
			if sums[cluster] == nil {
				sums[cluster] = make(map[string]*accumulator)
			}
			for variable, score := range vars {
				acc := sums[cluster][variable]
				if acc == nil {
					acc = &accumulator{}
					sums[cluster][variable] = acc
				}
				acc.sum += score
				acc.count++
			}
		}
	}

	baseline := make(schema.BenchmarkBaseline, len(sums))
	for cluster, vars := range sums {
		baseline[cluster] = make(map[string]float64, len(vars))
		for variable, acc := range vars {
			baseline[cluster][variable] = acc.sum / float64(acc.count)
		}
	}
	return baseline, nil
}

// TruncateBenchmarkIDs returns at most MaxBenchmarks IDs in caller order.
func TruncateBenchmarkIDs(benchmarkIDs []string) []string {
	if len(benchmarkIDs) > MaxBenchmarks {
		return benchmarkIDs[:MaxBenchmarks]
	}
	return benchmarkIDs
}
