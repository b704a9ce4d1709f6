package store

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/talentco/talentmatch/internal/contract"
	"github.com/talentco/talentmatch/schema"
)

// sampleSeed keeps the generated dataset identical across runs.
const sampleSeed = 42

// SampleClusters maps assessment clusters to their variables, matching the
// taxonomy used by the talent dashboard.
var SampleClusters = map[string][]string{
	"Core Values": {
		"Learning Agility",
		"Results Orientation",
		"Collaboration",
		"Innovation",
		"Integrity",
	},
	"Technical/Functional": {
		"Technical Skills",
		"Domain Knowledge",
		"Analytical Thinking",
		"Communication",
	},
}

var samplePositions = []string{
	"Software Engineer",
	"Senior Software Engineer",
	"Data Analyst",
	"Product Manager",
	"Engineering Manager",
}

var sampleGrades = []string{"G3", "G4", "G5", "G6"}

var sampleDirectorates = []string{
	"Technology",
	"Product",
	"Data & Analytics",
}

var sampleNames = []string{
	"Adi Nugroho",
	"Bella Hartono",
	"Chandra Wijaya",
	"Dewi Lestari",
	"Eka Prasetyo",
	"Fajar Ramadhan",
	"Gita Permata",
	"Hendra Kusuma",
	"Indah Sari",
	"Joko Santoso",
	"Kartika Dewanti",
	"Lukman Hakim",
	"Maya Anggraini",
	"Nanda Putra",
	"Oscar Tampubolon",
}

// SampleCandidates builds a deterministic set of candidate profiles. It is
// used when no database backend is configured and to seed fresh databases.
func SampleCandidates() []schema.CandidateProfile {
	rng := rand.New(rand.NewSource(sampleSeed))
	candidates := make([]schema.CandidateProfile, 0, len(sampleNames))

	clusterNames := make([]string, 0, len(SampleClusters))
	for cluster := range SampleClusters {
		clusterNames = append(clusterNames, cluster)
	}
	sort.Strings(clusterNames)

	for i, name := range sampleNames {
		scores := make(map[string]map[string]float64, len(clusterNames))
		// Skew each candidate around an individual ability level so the
		// dataset spans the full label range from Low to Excellent.
		base := 55.0 + rng.Float64()*40.0
		for _, cluster := range clusterNames {
			variables := SampleClusters[cluster]
			scores[cluster] = make(map[string]float64, len(variables))
			for _, variable := range variables {
				score := base + rng.Float64()*20.0 - 10.0
				if score < 0 {
					score = 0
				}
				if score > 100 {
					score = 100
				}
				scores[cluster][variable] = float64(int(score*10)) / 10
			}
		}
		candidates = append(candidates, schema.CandidateProfile{
			EmployeeID:  fmt.Sprintf("EMP%d", 1000+i),
			Name:        name,
			Position:    samplePositions[i%len(samplePositions)],
			Grade:       sampleGrades[i%len(sampleGrades)],
			Directorate: sampleDirectorates[i%len(sampleDirectorates)],
			Scores:      scores,
		})
	}
	return candidates
}

// SampleSource serves the built-in sample dataset through the candidate
// source contract. It backs the pipeline when no database is configured.
type SampleSource struct {
	candidates []schema.CandidateProfile
}

var _ contract.CandidateSource = (*SampleSource)(nil)

// NewSampleSource returns a source over the deterministic sample dataset.
func NewSampleSource() *SampleSource {
	return &SampleSource{candidates: SampleCandidates()}
}

// FetchCandidates returns sample candidates matching the filter, ordered by
// employee ID.
func (s *SampleSource) FetchCandidates(ctx context.Context, filter contract.Filter) ([]schema.CandidateProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrSourceUnavailable, err)
	}
	result := make([]schema.CandidateProfile, 0, len(s.candidates))
	for _, candidate := range s.candidates {
		if filter.Position != "" && candidate.Position != filter.Position {
			continue
		}
		if filter.Directorate != "" && candidate.Directorate != filter.Directorate {
			continue
		}
		result = append(result, candidate)
		if filter.Limit > 0 && len(result) >= filter.Limit {
			break
		}
	}
	return result, nil
}
