package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// Requirement pattern shapes: "N+ years of X" and "X - N years".
var (
	yearsFirstPattern = regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:experience\s+(?:in\s+|with\s+)?)?([a-z\s\-]+)`)
	skillFirstPattern = regexp.MustCompile(`([a-z\s\-]+)[\s\-:]+(\d+)\+?\s*(?:years?|yrs?)`)
)

// ExtractRequirements scans job-description-like text for experience
// requirements and returns a skill-phrase to year-count mapping. The last
// writer for a skill phrase wins when extraction patterns overlap. This is
// a best-effort heuristic extractor: a phrase that is too short, stop-worded,
// or has an unparseable year is dropped locally, never propagated as an
// error.
func ExtractRequirements(text string) map[string]int {
	requirements := make(map[string]int)
	clean := Normalize(text)

	for _, match := range yearsFirstPattern.FindAllStringSubmatch(clean, -1) {
		if skill, years, ok := acceptRequirement(match[2], match[1]); ok {
			requirements[skill] = years
		}
	}

	for _, match := range skillFirstPattern.FindAllStringSubmatch(clean, -1) {
		if skill, years, ok := acceptRequirement(match[1], match[2]); ok {
			requirements[skill] = years
		}
	}

	return requirements
}

// acceptRequirement filters one regex match at the boundary: the skill phrase
// is trimmed and must be longer than two characters and not a stop word; the
// year must parse as an integer.
func acceptRequirement(rawSkill, rawYears string) (string, int, bool) {
	skill := strings.TrimSpace(rawSkill)
	if len(skill) <= 2 {
		return "", 0, false
	}
	if _, stop := requirementStopWords[skill]; stop {
		return "", 0, false
	}
	years, err := strconv.Atoi(rawYears)
	if err != nil {
		return "", 0, false
	}
	return skill, years, true
}
