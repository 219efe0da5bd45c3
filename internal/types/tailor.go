package types

// IterationRecord captures the score trajectory of one refinement iteration.
type IterationRecord struct {
	Iteration int     `json:"iteration"`
	Score     float64 `json:"score"`
	Summary   string  `json:"summary,omitempty"`
}

// TailorResult is the shape surfaced to any presentation layer after a
// tailoring attempt (one-shot or iterative).
type TailorResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	OriginalScore float64 `json:"original_score"`
	FinalScore    float64 `json:"final_score"`
	Improvement   float64 `json:"improvement"`

	// RewrittenText is the tailored document, or the untouched original
	// candidate text when Success is false.
	RewrittenText string `json:"rewritten_text"`
	SummaryText   string `json:"summary_text,omitempty"`

	Validation *ValidationReport `json:"validation_report,omitempty"`

	ModelUsed  string            `json:"model_used,omitempty"`
	Usage      *TokenUsage       `json:"usage,omitempty"`
	Cost       *CostEstimate     `json:"cost,omitempty"`
	Iterations []IterationRecord `json:"iterations,omitempty"`
}
