package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentco/talentmatch/internal/contract"
	"github.com/talentco/talentmatch/schema"
)

// singleVarBaseline builds a one-cluster, one-variable baseline for tests
// that need exact final rates.
func singleVarBaseline(ref float64) schema.BenchmarkBaseline {
	return schema.BenchmarkBaseline{
		"Core Values": {"Integrity": ref},
	}
}

func singleVarCandidate(id string, score float64) schema.CandidateProfile {
	return makeCandidate(id, map[string]map[string]float64{
		"Core Values": {"Integrity": score},
	})
}

// TestRankCandidatesOrdering verifies descending rate order with employee ID
// ascending as the tie breaker.
func TestRankCandidatesOrdering(t *testing.T) {
	candidates := []schema.CandidateProfile{
		singleVarCandidate("301", 70),
		singleVarCandidate("104", 85),
		singleVarCandidate("103", 85),
		singleVarCandidate("200", 99),
	}

	run, err := RankCandidates(candidates, singleVarBaseline(100), []string{"200"}, schema.Weights{})
	require.NoError(t, err)
	require.Len(t, run.Results, 4)

	for i := 0; i < len(run.Results)-1; i++ {
		assert.GreaterOrEqual(t, run.Results[i].FinalMatchRate, run.Results[i+1].FinalMatchRate)
	}

	// 103 and 104 both rate 85; the lower ID wins the tie.
	assert.Equal(t, "200", run.Results[0].EmployeeID)
	assert.Equal(t, "103", run.Results[1].EmployeeID)
	assert.Equal(t, "104", run.Results[2].EmployeeID)
	assert.Equal(t, "301", run.Results[3].EmployeeID)
}

// TestRankCandidatesBenchmarkFlag ensures benchmark members are scored and
// flagged rather than excluded.
func TestRankCandidatesBenchmarkFlag(t *testing.T) {
	candidates := []schema.CandidateProfile{
		singleVarCandidate("1", 90),
		singleVarCandidate("2", 80),
	}

	run, err := RankCandidates(candidates, singleVarBaseline(90), []string{"1"}, schema.Weights{})
	require.NoError(t, err)

	byID := make(map[string]schema.MatchResult)
	for _, r := range run.Results {
		byID[r.EmployeeID] = r
	}
	assert.True(t, byID["1"].IsBenchmark)
	assert.False(t, byID["2"].IsBenchmark)
	assert.InDelta(t, 100.0, byID["1"].FinalMatchRate, 1e-9)
}

// TestRankCandidatesAnalyticsScenario pins the documented end-to-end
// analytics scenario: final rates 95/82/61 with one benchmark at 95.
func TestRankCandidatesAnalyticsScenario(t *testing.T) {
	candidates := []schema.CandidateProfile{
		singleVarCandidate("EMP1", 95),
		singleVarCandidate("EMP2", 82),
		singleVarCandidate("EMP3", 61),
	}

	run, err := RankCandidates(candidates, singleVarBaseline(100), []string{"EMP1"}, schema.Weights{})
	require.NoError(t, err)

	a := run.Analytics
	assert.InDelta(t, 79.3, contract.Round1(a.AvgMatch), 1e-9)
	assert.InDelta(t, 95.0, contract.Round1(a.BenchmarkAvg), 1e-9)
	assert.Equal(t, 2, a.TopTalentCount)

	assert.Equal(t, 1, a.Distribution.Range90Plus)
	assert.Equal(t, 1, a.Distribution.Range80s)
	assert.Equal(t, 0, a.Distribution.Range70s)
	assert.Equal(t, 1, a.Distribution.Range60s)
	assert.Equal(t, 0, a.Distribution.Below60)
}

// TestRankCandidatesBenchmarkAvgEmpty ensures a benchmark subset that
// matches nobody yields 0, not an error.
func TestRankCandidatesBenchmarkAvgEmpty(t *testing.T) {
	candidates := []schema.CandidateProfile{
		singleVarCandidate("1", 90),
	}

	run, err := RankCandidates(candidates, singleVarBaseline(90), []string{"999"}, schema.Weights{})
	require.NoError(t, err)
	assert.Zero(t, run.Analytics.BenchmarkAvg)
}

// TestRankCandidatesDistributionSum checks the bucket counts always sum to
// the candidate count.
func TestRankCandidatesDistributionSum(t *testing.T) {
	var candidates []schema.CandidateProfile
	for i := range 23 {
		score := float64((i * 17) % 101)
		candidates = append(candidates, singleVarCandidate(fmt.Sprintf("E%02d", i), score))
	}

	run, err := RankCandidates(candidates, singleVarBaseline(80), []string{"E00"}, schema.Weights{})
	require.NoError(t, err)
	assert.Equal(t, len(candidates), run.Analytics.Distribution.Total())
}

// TestRankCandidatesVariableExclusion ensures variables and clusters without
// a baseline reference are excluded from scoring rather than scored as zero.
func TestRankCandidatesVariableExclusion(t *testing.T) {
	candidates := []schema.CandidateProfile{
		makeCandidate("1", map[string]map[string]float64{
			"Core Values": {"Integrity": 95, "Collaboration": 10},
			"Leadership":  {"Vision": 5},
		}),
	}
	// Baseline knows nothing about Collaboration or the Leadership cluster.
	baseline := schema.BenchmarkBaseline{"Core Values": {"Integrity": 95}}

	run, err := RankCandidates(candidates, baseline, []string{"1"}, schema.Weights{})
	require.NoError(t, err)

	r := run.Results[0]
	assert.InDelta(t, 100.0, r.FinalMatchRate, 1e-9)
	assert.NotContains(t, r.VariableRates, "Collaboration")
	assert.NotContains(t, r.VariableRates, "Vision")
	assert.NotContains(t, r.ClusterRates, "Leadership")
}

// TestRankCandidatesNoOverlap ensures a candidate with no scorable variables
// fails the run instead of silently rating 0.
func TestRankCandidatesNoOverlap(t *testing.T) {
	candidates := []schema.CandidateProfile{
		singleVarCandidate("1", 90),
		makeCandidate("2", map[string]map[string]float64{
			"Leadership": {"Vision": 50},
		}),
	}

	_, err := RankCandidates(candidates, singleVarBaseline(90), []string{"1"}, schema.Weights{})
	assert.ErrorIs(t, err, schema.ErrEmptyAggregation)
	assert.ErrorContains(t, err, "candidate 2")
}
