package core

import (
	"fmt"
	"sort"

	"github.com/talentco/talentmatch/schema"
)

// RankCandidates scores every candidate against the baseline and returns the
// ranked run. Benchmark members are scored like everyone else and flagged.
// Variables without a baseline reference are excluded from scoring, never
// scored as zero; a cluster left with no scorable variables is excluded the
// same way. A candidate with no scorable clusters at all fails the run with
// schema.ErrEmptyAggregation.
func RankCandidates(candidates []schema.CandidateProfile, baseline schema.BenchmarkBaseline, benchmarkIDs []string, weights schema.Weights) (*schema.PipelineRun, error) {
	ids := TruncateBenchmarkIDs(benchmarkIDs)
	benchmarkSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		benchmarkSet[id] = struct{}{}
	}

	results := make([]schema.MatchResult, 0, len(candidates))
	for _, c := range candidates {
		result, err := scoreCandidate(&c, baseline, weights)
		if err != nil {
			return nil, fmt.Errorf("score candidate %s: %w", c.EmployeeID, err)
		}
		_, result.IsBenchmark = benchmarkSet[c.EmployeeID]
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].FinalMatchRate != results[j].FinalMatchRate {
			return results[i].FinalMatchRate > results[j].FinalMatchRate
		}
		return results[i].EmployeeID < results[j].EmployeeID
	})

	run := &schema.PipelineRun{
		BenchmarkIDs: ids,
		Baseline:     baseline,
		Results:      results,
		Analytics:    computeAnalytics(results),
	}
	return run, nil
}

// scoreCandidate computes variable, cluster and final match rates for one
// candidate against the baseline.
func scoreCandidate(c *schema.CandidateProfile, baseline schema.BenchmarkBaseline, weights schema.Weights) (schema.MatchResult, error) {
	result := schema.MatchResult{
		EmployeeID:    c.EmployeeID,
		Name:          c.Name,
		Position:      c.Position,
		Grade:         c.Grade,
		Directorate:   c.Directorate,
		VariableRates: make(map[string]float64),
		ClusterRates:  make(map[string]float64),
	}

	for cluster, vars := range c.Scores {
		refs, ok := baseline[cluster]
		if !ok {
			continue
		}
		clusterRates := make(map[string]float64)
		for variable, score := range vars {
			ref, ok := refs[variable]
			if !ok {
				continue
			}
			rate, err := AggregateVariable(score, ref)
			if err != nil {
				return result, fmt.Errorf("variable %q: %w", variable, err)
			}
			clusterRates[variable] = rate
			result.VariableRates[variable] = rate
		}
		if len(clusterRates) == 0 {
			continue
		}
		clusterRate, err := AggregateCluster(clusterRates, weights.Variables)
		if err != nil {
			return result, fmt.Errorf("cluster %q: %w", cluster, err)
		}
		result.ClusterRates[cluster] = clusterRate
	}

	final, err := AggregateFinal(result.ClusterRates, weights.Clusters)
	if err != nil {
		return result, err
	}
	result.FinalMatchRate = final
	return result, nil
}

// computeAnalytics summarizes the full ranked set. Averages are kept at full
// precision here; one-decimal rounding happens at the presentation boundary.
func computeAnalytics(results []schema.MatchResult) schema.MatchAnalytics {
	var analytics schema.MatchAnalytics

	var sum, benchmarkSum float64
	var benchmarkCount int
	for _, r := range results {
		sum += r.FinalMatchRate
		if r.IsBenchmark {
			benchmarkSum += r.FinalMatchRate
			benchmarkCount++
		}
		if r.FinalMatchRate >= schema.TopTalentThreshold {
			analytics.TopTalentCount++
		}
		analytics.Distribution.Add(r.FinalMatchRate)
	}

	if len(results) > 0 {
		analytics.AvgMatch = sum / float64(len(results))
	}
	if benchmarkCount > 0 {
		analytics.BenchmarkAvg = benchmarkSum / float64(benchmarkCount)
	}
	return analytics
}
