package ai

import (
	"fmt"

	"github.com/talentco/talentmatch/schema"
)

// FallbackProfile builds a deterministic job profile from the role fields
// alone. Same role in, same profile out.
func FallbackProfile(role schema.RoleDescriptor) schema.JobProfile {
	return schema.JobProfile{
		JobRequirements: fmt.Sprintf(
			"%s requires strong technical skills, domain expertise, and proven ability to deliver results at %s level. "+
				"Excellent communication, analytical thinking, and stakeholder management capabilities are essential.",
			role.Name, role.Level),
		JobDescription: fmt.Sprintf(
			"As a %s, you will %s. This %s position requires balancing technical depth with business acumen, "+
				"driving data-informed decisions, and collaborating effectively across teams.",
			role.Name, role.Purpose, role.Level),
		KeyCompetencies: []string{
			"Technical Expertise",
			"Analytical Thinking",
			"Communication Skills",
			"Problem Solving",
			"Stakeholder Management",
		},
	}
}
