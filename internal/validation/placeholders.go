// Package validation re-checks a generated rewrite against its contract.
// The generator is asked to follow the contract but never trusted to: every
// structural guarantee the contract states is independently verified here
// against the original document.
package validation

import (
	"fmt"
	"regexp"

	"github.com/airesume/tailor/internal/types"
)

// placeholderPatterns match bracketed stand-ins a generator emits instead of
// copying preserved content. All matching is case-insensitive.
var placeholderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\[.*?PRESERVED.*?\]`),
	regexp.MustCompile(`(?i)\[.*?AS WRITTEN.*?\]`),
	regexp.MustCompile(`(?i)\[.*?EXACTLY.*?\]`),
	regexp.MustCompile(`(?i)\[.*?UNCHANGED.*?\]`),
	regexp.MustCompile(`(?i)\[Previous roles.*?\]`),
	regexp.MustCompile(`(?i)\[Environment section.*?\]`),
	regexp.MustCompile(`(?i)\[EDUCATION.*?\]`),
	regexp.MustCompile(`(?i)\[TECHNICAL SKILLS.*?\]`),
	regexp.MustCompile(`(?i)\[All previous.*?\]`),
	regexp.MustCompile(`(?i)\[Earlier roles.*?\]`),
}

const maxPlaceholdersQuoted = 3

// DetectPlaceholders returns every placeholder occurrence in the rewritten
// text, in pattern order. A single bracketed fragment can match more than one
// pattern and is reported once per match.
func DetectPlaceholders(text string) []string {
	var found []string
	for _, pattern := range placeholderPatterns {
		found = append(found, pattern.FindAllString(text, -1)...)
	}
	return found
}

// placeholderIssues folds all placeholder occurrences into one critical
// issue. However many patterns fired, the defect and the fix are the same,
// so the report carries a single entry with the total count.
func placeholderIssues(rewritten string) ([]types.Issue, int) {
	found := DetectPlaceholders(rewritten)
	if len(found) == 0 {
		return nil, 0
	}

	quoted := found
	if len(quoted) > maxPlaceholdersQuoted {
		quoted = quoted[:maxPlaceholdersQuoted]
	}

	issue := types.Issue{
		Kind:     types.IssueKindPlaceholder,
		Severity: types.SeverityCritical,
		Message:  fmt.Sprintf("Found %d placeholder(s): %v", len(found), quoted),
	}
	return []types.Issue{issue}, len(found)
}
