package validation

import (
	"fmt"
	"strings"

	"github.com/airesume/tailor/internal/contract"
	"github.com/airesume/tailor/internal/types"
)

const summaryHeader = "Professional Summary"

// entityDriftIssues verifies that every frozen entity extracted from the
// original document survives the rewrite verbatim. An entity present only
// with altered casing is a formatting defect; an entity absent entirely is a
// critical contract violation.
func entityDriftIssues(rewritten, original string) []types.Issue {
	var issues []types.Issue

	rewrittenLower := strings.ToLower(rewritten)
	for _, entity := range contract.ExtractFrozenEntities(original) {
		if strings.Contains(rewritten, entity) {
			continue
		}
		if strings.Contains(rewrittenLower, strings.ToLower(entity)) {
			issues = append(issues, types.Issue{
				Kind:     types.IssueKindCasingDrift,
				Severity: types.SeverityHigh,
				Message:  fmt.Sprintf("Entity %q appears with altered casing (should preserve original formatting)", entity),
			})
			continue
		}
		issues = append(issues, types.Issue{
			Kind:     types.IssueKindFrozenDrift,
			Severity: types.SeverityCritical,
			Message:  fmt.Sprintf("Missing required entity: %s", entity),
		})
	}

	return issues
}

// summaryCasingIssue flags a Professional Summary whose opening line was
// upper-cased by the rewrite. Generators sometimes "promote" the summary to
// ALL CAPS; the contract requires the original sentence case.
func summaryCasingIssue(rewritten, original string) []types.Issue {
	line := summaryOpeningLine(original)
	if line == "" || line == strings.ToUpper(line) {
		return nil
	}
	if strings.Contains(rewritten, line) || !strings.Contains(rewritten, strings.ToUpper(line)) {
		return nil
	}
	return []types.Issue{{
		Kind:     types.IssueKindCasingDrift,
		Severity: types.SeverityHigh,
		Message:  "Professional Summary changed to ALL CAPS (should preserve original formatting)",
	}}
}

// summaryOpeningLine returns the first non-empty line following the
// Professional Summary header, or "" when the document has no such section.
func summaryOpeningLine(text string) string {
	_, after, ok := strings.Cut(text, summaryHeader)
	if !ok {
		return ""
	}
	for _, line := range strings.Split(after, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
