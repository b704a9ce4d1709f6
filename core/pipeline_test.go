package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentco/talentmatch/internal/contract"
	"github.com/talentco/talentmatch/schema"
)

// stubSource returns a fixed snapshot or a fixed error.
type stubSource struct {
	candidates []schema.CandidateProfile
	err        error
}

func (s *stubSource) FetchCandidates(_ context.Context, _ contract.Filter) ([]schema.CandidateProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.candidates, nil
}

// stubGenerator returns a canned profile, mimicking the total-function
// contract of the real generator.
type stubGenerator struct{}

func (stubGenerator) GenerateJobProfile(_ context.Context, role schema.RoleDescriptor) schema.JobProfile {
	return schema.JobProfile{
		JobRequirements: "requirements for " + role.Name,
		JobDescription:  "description for " + role.Name,
		KeyCompetencies: []string{"A", "B", "C", "D", "E"},
	}
}

var testRole = schema.RoleDescriptor{
	Name:    "Data Analyst",
	Level:   "Senior",
	Purpose: "turn raw talent data into hiring decisions",
}

func TestRunPipelineComplete(t *testing.T) {
	source := &stubSource{candidates: []schema.CandidateProfile{
		singleVarCandidate("1", 90),
		singleVarCandidate("2", 72),
	}}

	run, err := RunPipeline(context.Background(), testRole, []string{"1"}, source, stubGenerator{}, contract.Filter{}, schema.Weights{})
	require.NoError(t, err)

	assert.Equal(t, testRole, run.Role)
	assert.Equal(t, []string{"1"}, run.BenchmarkIDs)
	assert.Len(t, run.Results, 2)
	assert.NotEmpty(t, run.Baseline)
	assert.Equal(t, "requirements for Data Analyst", run.Profile.JobRequirements)
	assert.Len(t, run.Profile.KeyCompetencies, 5)
}

// TestRunPipelineDeterminism re-runs the pipeline on an identical snapshot
// and requires bit-identical output.
func TestRunPipelineDeterminism(t *testing.T) {
	source := &stubSource{candidates: []schema.CandidateProfile{
		makeCandidate("1", map[string]map[string]float64{
			"Core Values":          {"Integrity": 81.5, "Collaboration": 63.2},
			"Technical/Functional": {"Technical Skills": 88.8, "Domain Knowledge": 71.1},
		}),
		makeCandidate("2", map[string]map[string]float64{
			"Core Values":          {"Integrity": 92.4, "Collaboration": 59.9},
			"Technical/Functional": {"Technical Skills": 69.6, "Domain Knowledge": 80.0},
		}),
		makeCandidate("3", map[string]map[string]float64{
			"Core Values":          {"Integrity": 40.0, "Collaboration": 99.9},
			"Technical/Functional": {"Technical Skills": 55.5, "Domain Knowledge": 62.3},
		}),
	}}
	weights := schema.Weights{
		Clusters:  map[string]float64{"Core Values": 2},
		Variables: map[string]float64{"Integrity": 1.5},
	}

	first, err := RunPipeline(context.Background(), testRole, []string{"1", "2"}, source, stubGenerator{}, contract.Filter{}, weights)
	require.NoError(t, err)
	second, err := RunPipeline(context.Background(), testRole, []string{"1", "2"}, source, stubGenerator{}, contract.Filter{}, weights)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestRunPipelineFailFast ensures stage errors abort the run with stage
// context and no partial result.
func TestRunPipelineFailFast(t *testing.T) {
	t.Run("source unavailable", func(t *testing.T) {
		source := &stubSource{err: fmt.Errorf("dial db: %w", schema.ErrSourceUnavailable)}

		run, err := RunPipeline(context.Background(), testRole, []string{"1"}, source, stubGenerator{}, contract.Filter{}, schema.Weights{})
		assert.Nil(t, run)
		assert.ErrorIs(t, err, schema.ErrSourceUnavailable)
		assert.ErrorContains(t, err, "fetch candidates")
	})

	t.Run("no benchmarks found", func(t *testing.T) {
		source := &stubSource{candidates: []schema.CandidateProfile{
			singleVarCandidate("1", 90),
		}}

		run, err := RunPipeline(context.Background(), testRole, []string{"312", "335", "175"}, source, stubGenerator{}, contract.Filter{}, schema.Weights{})
		assert.Nil(t, run)
		assert.ErrorIs(t, err, schema.ErrNoBenchmarksFound)
		assert.ErrorContains(t, err, "build baseline")
	})
}
