package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/talentco/talentmatch/internal/contract"
	"github.com/talentco/talentmatch/schema"
)

// ContentGenerator is the subset of the Gemini client the profile
// generator needs. It exists so tests can stub the model call.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ProfileGenerator drafts job profiles from a language model. Any failure
// along the way (transport, malformed JSON, missing fields) degrades to the
// role-derived fallback profile, so GenerateJobProfile always succeeds.
type ProfileGenerator struct {
	generator ContentGenerator
}

var _ contract.ProfileGenerator = (*ProfileGenerator)(nil)

// NewProfileGenerator returns a generator backed by the given model client.
// A nil client always produces the fallback profile.
func NewProfileGenerator(generator ContentGenerator) *ProfileGenerator {
	return &ProfileGenerator{generator: generator}
}

// GenerateJobProfile drafts a profile for the role, falling back to the
// deterministic profile when the model is unavailable or misbehaves.
func (p *ProfileGenerator) GenerateJobProfile(ctx context.Context, role schema.RoleDescriptor) schema.JobProfile {
	if p.generator == nil {
		return FallbackProfile(role)
	}

	text, err := p.generator.GenerateContent(ctx, buildProfilePrompt(role))
	if err != nil {
		contract.LogWarn("using fallback job profile", err)
		return FallbackProfile(role)
	}

	profile, err := parseProfileJSON(text)
	if err != nil {
		contract.LogWarn("using fallback job profile", err)
		return FallbackProfile(role)
	}
	return profile
}

// buildProfilePrompt asks for strict JSON so the response parses without
// post-processing beyond fence stripping.
func buildProfilePrompt(role schema.RoleDescriptor) string {
	return fmt.Sprintf(`Generate a detailed job profile for a %s level %s position.

Role Purpose: %s

Return ONLY valid JSON with no preamble, markdown, or explanatory text:
{
  "job_requirements": "Detailed technical and soft skill requirements (3-5 sentences)",
  "job_description": "Comprehensive role overview and responsibilities (3-5 sentences)",
  "key_competencies": ["competency1", "competency2", "competency3", "competency4", "competency5"]
}

Make the content professional, specific, and aligned with the role purpose.`,
		role.Level, role.Name, role.Purpose)
}

// parseProfileJSON decodes a model response into a profile. Models often
// wrap JSON in markdown fences despite instructions, so strip them first.
func parseProfileJSON(text string) (schema.JobProfile, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var profile schema.JobProfile
	if err := json.Unmarshal([]byte(cleaned), &profile); err != nil {
		return schema.JobProfile{}, fmt.Errorf("parse profile response: %w", err)
	}
	if profile.JobRequirements == "" || profile.JobDescription == "" || len(profile.KeyCompetencies) == 0 {
		return schema.JobProfile{}, errors.New("profile response is missing required fields")
	}
	return profile, nil
}
