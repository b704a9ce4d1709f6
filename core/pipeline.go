package core

import (
	"context"
	"fmt"

	"github.com/talentco/talentmatch/internal/contract"
	"github.com/talentco/talentmatch/schema"
)

// RunPipeline executes one full match run: fetch the candidate snapshot,
// derive the benchmark baseline, rank every candidate, and attach the
// generated job profile. The first error from any stage aborts the run with
// stage context; no partial PipelineRun is ever returned. Given an identical
// candidate snapshot and inputs the output is bit-identical, since nothing
// in the core introduces randomness or wall-clock state.
func RunPipeline(ctx context.Context, role schema.RoleDescriptor, benchmarkIDs []string, source contract.CandidateSource, generator contract.ProfileGenerator, filter contract.Filter, weights schema.Weights) (*schema.PipelineRun, error) {
	candidates, err := source.FetchCandidates(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	baseline, err := BuildBaseline(candidates, benchmarkIDs)
	if err != nil {
		return nil, fmt.Errorf("build baseline: %w", err)
	}

	run, err := RankCandidates(candidates, baseline, benchmarkIDs, weights)
	if err != nil {
		return nil, fmt.Errorf("rank candidates: %w", err)
	}

	run.Role = role
	// The generator is total: it falls back to deterministic role-derived
	// text on any internal fault rather than failing the run.
	run.Profile = generator.GenerateJobProfile(ctx, role)

	return run, nil
}
