// Package schema has configs, models and shared types for all parts of talentmatch.
package schema

// CandidateProfile represents a single employee in the candidate pool,
// along with their assessed talent scores. Scores are grouped by
// cluster (talent group variable) and keyed by variable (talent variable)
// within each cluster. Variable names are unique across clusters; the
// store boundary canonicalizes any wire format into this shape before
// scoring ever sees it.
type CandidateProfile struct {
	EmployeeID  string                        `json:"employee_id"`
	Name        string                        `json:"name"`
	Position    string                        `json:"position"`
	Grade       string                        `json:"grade"`
	Directorate string                        `json:"directorate"`
	Scores      map[string]map[string]float64 `json:"scores"` // cluster -> variable -> score in [0,100]
}

// HasVariable reports whether the profile carries a score for the given
// cluster/variable pair.
func (p *CandidateProfile) HasVariable(cluster, variable string) bool {
	vars, ok := p.Scores[cluster]
	if !ok {
		return false
	}
	_, ok = vars[variable]
	return ok
}

// BenchmarkBaseline is the reference score profile derived from benchmark
// employees: cluster -> variable -> mean reference score. A variable absent
// from the baseline is excluded from scoring entirely.
type BenchmarkBaseline map[string]map[string]float64

// MatchResult holds the computed match rates for a single candidate.
// Rates are kept at full float precision; rounding happens only at the
// presentation boundary.
type MatchResult struct {
	EmployeeID     string             `json:"employee_id"`
	Name           string             `json:"name"`
	Position       string             `json:"position"`
	Grade          string             `json:"grade"`
	Directorate    string             `json:"directorate"`
	VariableRates  map[string]float64 `json:"variable_rates"`
	ClusterRates   map[string]float64 `json:"cluster_rates"`
	FinalMatchRate float64            `json:"final_match_rate"`
	IsBenchmark    bool               `json:"is_benchmark"`
}

// RoleDescriptor captures the vacancy being hired for.
type RoleDescriptor struct {
	Name    string `json:"role_name"`
	Level   string `json:"job_level"`
	Purpose string `json:"role_purpose"`
}

// JobProfile is the generated job profile text for a role. It is advisory
// content attached to a pipeline run; it never feeds the ranking math.
type JobProfile struct {
	JobRequirements string   `json:"job_requirements"`
	JobDescription  string   `json:"job_description"`
	KeyCompetencies []string `json:"key_competencies"`
}

// Distribution buckets candidates by final match rate. Bucket boundaries
// follow the dashboard convention: [90,100], [80,90), [70,80), [60,70), <60.
type Distribution struct {
	Range90Plus int `json:"90-100"`
	Range80s    int `json:"80-89"`
	Range70s    int `json:"70-79"`
	Range60s    int `json:"60-69"`
	Below60     int `json:"<60"`
}

// Add places a final match rate into its bucket.
func (d *Distribution) Add(rate float64) {
	switch {
	case rate >= 90:
		d.Range90Plus++
	case rate >= 80:
		d.Range80s++
	case rate >= 70:
		d.Range70s++
	case rate >= 60:
		d.Range60s++
	default:
		d.Below60++
	}
}

// Total returns the sum of all bucket counts.
func (d *Distribution) Total() int {
	return d.Range90Plus + d.Range80s + d.Range70s + d.Range60s + d.Below60
}

// Bucket pairs a distribution range label with its count, in display order.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Buckets returns the distribution as an ordered slice for rendering.
func (d *Distribution) Buckets() []Bucket {
	return []Bucket{
		{Label: "90-100", Count: d.Range90Plus},
		{Label: "80-89", Count: d.Range80s},
		{Label: "70-79", Count: d.Range70s},
		{Label: "60-69", Count: d.Range60s},
		{Label: "<60", Count: d.Below60},
	}
}

// MatchAnalytics summarizes a ranked result set.
type MatchAnalytics struct {
	AvgMatch       float64      `json:"avg_match"`        // mean final rate across all candidates
	BenchmarkAvg   float64      `json:"benchmark_avg"`    // mean final rate of benchmark members, 0 if none matched
	TopTalentCount int          `json:"top_talent_count"` // candidates with final rate >= 80
	Distribution   Distribution `json:"distribution"`
}

// Weights holds optional override weights for aggregation. Missing entries
// default to weight 1; weights need not sum to 1 since aggregation
// normalizes by the sum of weights present. Empty maps mean equal weights.
type Weights struct {
	Clusters  map[string]float64 `mapstructure:"clusters" json:"clusters,omitempty"`
	Variables map[string]float64 `mapstructure:"variables" json:"variables,omitempty"`
}

// PipelineRun groups everything produced by one pipeline invocation.
// It is a plain value: the caller owns its lifetime and the core retains
// nothing between runs.
type PipelineRun struct {
	Role         RoleDescriptor    `json:"role"`
	BenchmarkIDs []string          `json:"benchmark_ids"` // resolved list, truncated to MaxBenchmarks
	Baseline     BenchmarkBaseline `json:"baseline"`
	Results      []MatchResult     `json:"results"` // sorted by final rate desc, employee id asc
	Analytics    MatchAnalytics    `json:"analytics"`
	Profile      JobProfile        `json:"profile"`
}
