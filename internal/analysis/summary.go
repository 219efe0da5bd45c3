package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/airesume/tailor/internal/types"
)

const (
	maxMissingSkillsShown = 10
	maxRequirementsShown  = 5
)

// Summary renders a human-readable digest of a match result.
func Summary(m *types.MatchResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall Match Score: %.1f%%\n", m.OverallScore))
	sb.WriteString(fmt.Sprintf("Technical Skills Match: %.1f%%\n", m.TechnicalMatch))
	sb.WriteString(fmt.Sprintf("Keyword Match: %.1f%%", m.KeywordMatch))

	if len(m.MissingTechnical) > 0 {
		missing := m.MissingTechnical
		if len(missing) > maxMissingSkillsShown {
			missing = missing[:maxMissingSkillsShown]
		}
		sb.WriteString("\n\nMissing Technical Skills: ")
		sb.WriteString(strings.Join(missing, ", "))
	}

	if len(m.Requirements) > 0 {
		skills := make([]string, 0, len(m.Requirements))
		for skill := range m.Requirements {
			skills = append(skills, skill)
		}
		sort.Strings(skills)
		if len(skills) > maxRequirementsShown {
			skills = skills[:maxRequirementsShown]
		}
		sb.WriteString("\n\nExperience Requirements Found:")
		for _, skill := range skills {
			sb.WriteString(fmt.Sprintf("\n  - %s: %d years", skill, m.Requirements[skill]))
		}
	}

	return sb.String()
}
