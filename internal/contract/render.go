package contract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/airesume/tailor/internal/prompts"
	"github.com/airesume/tailor/internal/types"
)

const (
	promptFile = "tailoring.json"

	maxMissingSkillsInPrompt = 10
	maxRequirementsInPrompt  = 5
)

// SystemInstructions returns the system-level instructions sent alongside
// every rendered contract.
func SystemInstructions() string {
	return prompts.MustGet(promptFile, "system")
}

// RenderInstructions renders a contract into the instruction text consumed
// by the external generator. The constraints are deliberately redundant:
// frozen sections are enumerated by name, restrictions are restated with
// positive and negative examples, and the output framing is spelled out
// twice. The generator is untrusted for structural fidelity; asking is not
// verifying, and the validation package re-checks everything after the fact.
func RenderInstructions(c *types.RewriteContract) string {
	var sb strings.Builder

	maxProjects := fmt.Sprintf("%d", c.EditableZoneLimit)

	sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "header"), map[string]string{
		"ResumeText":    c.CandidateText,
		"JobText":       c.TargetText,
		"Score":         fmt.Sprintf("%.1f", c.MatchScore),
		"MissingSkills": missingSkillsLine(c.MissingTechnical),
		"Requirements":  requirementsBlock(c.Requirements),
		"MaxProjects":   maxProjects,
	}))

	sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "frozen-sections"), map[string]string{
		"FrozenSections": sectionList(c.FrozenSections),
		"MaxProjects":    maxProjects,
	}))

	sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "constraints"), map[string]string{
		"MaxProjects": maxProjects,
		"BulletDelta": fmt.Sprintf("%d", c.BulletDeltaBound),
	}))

	if len(c.RequiredEntities) > 0 {
		sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "required-entities"), map[string]string{
			"RequiredEntities": sectionList(c.RequiredEntities),
		}))
	}

	sb.WriteString(prompts.MustGet(promptFile, "examples"))

	sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "output-format"), map[string]string{
		"Delimiter": c.OutputDelimiter,
	}))

	sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "summary-format"), map[string]string{
		"Delimiter": c.OutputDelimiter,
	}))

	return sb.String()
}

func sectionList(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return sb.String()
}

func missingSkillsLine(missing []string) string {
	if len(missing) == 0 {
		return "(none)"
	}
	if len(missing) > maxMissingSkillsInPrompt {
		missing = missing[:maxMissingSkillsInPrompt]
	}
	return strings.Join(missing, ", ")
}

func requirementsBlock(reqs map[string]int) string {
	if len(reqs) == 0 {
		return "\n"
	}
	skills := make([]string, 0, len(reqs))
	for skill := range reqs {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	if len(skills) > maxRequirementsInPrompt {
		skills = skills[:maxRequirementsInPrompt]
	}

	var sb strings.Builder
	sb.WriteString("\n**EXPERIENCE REQUIREMENTS:**\n")
	for _, skill := range skills {
		sb.WriteString(fmt.Sprintf("  - %s: %d years\n", skill, reqs[skill]))
	}
	sb.WriteString("\n")
	return sb.String()
}
