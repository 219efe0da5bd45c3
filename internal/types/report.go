package types

// Issue kinds reported by the contract validator.
const (
	IssueKindPlaceholder   = "placeholder"
	IssueKindFrozenDrift   = "frozen_drift"
	IssueKindCasingDrift   = "casing_drift"
	IssueKindVerbInflation = "verb_inflation"
)

// Issue severities
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
)

// Issue is a single detected contract violation.
type Issue struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// ValidationReport is the output of the post-hoc contract validator.
// Valid is true iff Issues is empty. Issues are never deduplicated.
type ValidationReport struct {
	Valid            bool    `json:"valid"`
	Issues           []Issue `json:"issues"`
	PlaceholderCount int     `json:"placeholder_count"`
}
