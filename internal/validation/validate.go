package validation

import (
	"fmt"

	"github.com/airesume/tailor/internal/types"
)

// Validate checks a rewritten resume against the original it was derived
// from and returns the accumulated issues. A report with no issues marks the
// rewrite valid; any critical issue means the rewrite must not be shown to
// the user as-is.
func Validate(rewritten, original string) *types.ValidationReport {
	var issues []types.Issue

	placeholderFound, placeholderCount := placeholderIssues(rewritten)
	issues = append(issues, placeholderFound...)
	issues = append(issues, entityDriftIssues(rewritten, original)...)
	issues = append(issues, summaryCasingIssue(rewritten, original)...)
	issues = append(issues, verbInflationIssues(rewritten, original)...)

	return &types.ValidationReport{
		Valid:            len(issues) == 0,
		Issues:           issues,
		PlaceholderCount: placeholderCount,
	}
}

// SuggestFixes translates a report's issues into corrective instructions a
// follow-up generation attempt can act on.
func SuggestFixes(report *types.ValidationReport) []string {
	var suggestions []string
	for _, issue := range report.Issues {
		switch issue.Kind {
		case types.IssueKindPlaceholder:
			suggestions = append(suggestions, "CRITICAL: Remove all placeholders and output complete content")
		case types.IssueKindFrozenDrift:
			suggestions = append(suggestions, fmt.Sprintf("Restore verbatim: %s", issue.Message))
		case types.IssueKindCasingDrift:
			suggestions = append(suggestions, "Fix formatting: preserve the original casing exactly")
		case types.IssueKindVerbInflation:
			suggestions = append(suggestions, fmt.Sprintf("Fix action verbs: %s", issue.Message))
		}
	}
	return suggestions
}
