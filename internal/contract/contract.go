// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/talentco/talentmatch/schema"
)

// Filter narrows the candidate pool fetched from a source.
// Zero values mean no filtering on that dimension.
type Filter struct {
	Position    string // exact position name
	Directorate string // exact directorate name
	Limit       int    // maximum number of candidates, 0 = no limit
}

// CandidateSource supplies the candidate pool for a pipeline run.
// Implementations may back onto a database or a synthetic dataset; the core
// treats the returned slice as an immutable snapshot. Fetch failures wrap
// schema.ErrSourceUnavailable.
type CandidateSource interface {
	FetchCandidates(ctx context.Context, filter Filter) ([]schema.CandidateProfile, error)
}

// ProfileGenerator drafts a job profile for a role. Implementations must be
// total: on any internal fault they return a deterministic, role-derived
// fallback rather than an error, since profile text is advisory and never
// feeds the ranking math.
type ProfileGenerator interface {
	GenerateJobProfile(ctx context.Context, role schema.RoleDescriptor) schema.JobProfile
}

// VacancyRecorder persists a vacancy record for a pipeline run. Recording is
// a store-boundary concern; the core pipeline never calls it.
type VacancyRecorder interface {
	InsertVacancy(ctx context.Context, role schema.RoleDescriptor, benchmarkIDs []string) (string, error)
}
