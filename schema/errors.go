package schema

import "errors"

// Error taxonomy for the matching pipeline. Stages wrap these sentinels with
// context via fmt.Errorf("...: %w", ...); callers test with errors.Is. The
// core never substitutes a default numeric value when one of these fires.
var (
	// ErrInvalidScore indicates a candidate or baseline score outside [0,100].
	ErrInvalidScore = errors.New("score outside valid range [0,100]")

	// ErrInvalidWeight indicates a negative aggregation weight.
	ErrInvalidWeight = errors.New("aggregation weight must be non-negative")

	// ErrEmptyAggregation indicates an aggregation over zero elements.
	ErrEmptyAggregation = errors.New("cannot aggregate over an empty set")

	// ErrNoBenchmarksFound indicates that none of the supplied benchmark IDs
	// resolve to a known candidate.
	ErrNoBenchmarksFound = errors.New("no benchmark employees found in candidate pool")

	// ErrSourceUnavailable indicates a candidate source fetch failure. It is
	// surfaced, never swallowed; any fallback to sample data is a caller
	// decision.
	ErrSourceUnavailable = errors.New("candidate source unavailable")
)
