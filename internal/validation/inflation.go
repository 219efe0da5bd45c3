package validation

import (
	"regexp"

	"github.com/airesume/tailor/internal/types"
)

// forbiddenVerbPatterns catch resume-speak the contract bans: upgraded action
// verbs and leadership claims absent from the original. A pattern only counts
// when the rewrite introduces it, matching in the rewritten text but not the
// original.
var forbiddenVerbPatterns = []struct {
	pattern *regexp.Regexp
	message string
}{
	{regexp.MustCompile(`(?i)\bArchitected\b`), `Uses "Architected" (should preserve original action verbs)`},
	{regexp.MustCompile(`(?i)\bLed\s+(?:development|implementation)`), `Adds "Led" (leadership inflation)`},
}

func verbInflationIssues(rewritten, original string) []types.Issue {
	var issues []types.Issue
	for _, fv := range forbiddenVerbPatterns {
		if fv.pattern.MatchString(rewritten) && !fv.pattern.MatchString(original) {
			issues = append(issues, types.Issue{
				Kind:     types.IssueKindVerbInflation,
				Severity: types.SeverityHigh,
				Message:  fv.message,
			})
		}
	}
	return issues
}
