package types

// RewriteContract encodes the constraints communicated to the external
// generator: which sections are frozen verbatim, which zone may be edited,
// and the exact output framing. Built once per tailoring attempt; immutable.
type RewriteContract struct {
	// FrozenSections are section labels that must be reproduced
	// character-for-character.
	FrozenSections []string `json:"frozen_sections"`

	// EditableZoneLimit is the number of most recent experience entries
	// the generator may touch. Always >= 1.
	EditableZoneLimit int `json:"editable_zone_limit"`

	// BulletDeltaBound is the maximum number of bullet lines that may be
	// added or removed per edited entry.
	BulletDeltaBound int `json:"bullet_delta_bound"`

	// RequiredEntities are strings pulled from the candidate document
	// (company names, degree phrases, section headers) that must still
	// occur verbatim in the rewritten text.
	RequiredEntities []string `json:"required_entities"`

	// OutputDelimiter is the literal line separating the rewritten body
	// from the change summary.
	OutputDelimiter string `json:"output_delimiter"`

	// MissingTechnical are the target's technical terms absent from the
	// candidate, surfaced so the generator knows what to emphasize (never
	// fabricate).
	MissingTechnical []string `json:"missing_technical"`

	// Requirements are the target's extracted experience requirements.
	Requirements map[string]int `json:"experience_requirements,omitempty"`

	// MatchScore is the overall score at contract-build time.
	MatchScore float64 `json:"match_score"`

	// CandidateText and TargetText are carried for instruction rendering.
	CandidateText string `json:"-"`
	TargetText    string `json:"-"`
}

// RewriteOutcome is the result of one generation attempt. On failure,
// RewrittenText always holds the untouched original candidate text; the
// system never returns an empty or worse document on failure.
type RewriteOutcome struct {
	RewrittenText string      `json:"rewritten_text"`
	SummaryText   string      `json:"summary_text"`
	Success       bool        `json:"success"`
	Error         string      `json:"error,omitempty"`
	ModelUsed     string      `json:"model_used,omitempty"`
	Usage         *TokenUsage `json:"usage,omitempty"`
}

// TokenUsage records the token budget consumed by a generation call.
type TokenUsage struct {
	PromptTokens     int32 `json:"prompt_tokens"`
	CompletionTokens int32 `json:"completion_tokens"`
	TotalTokens      int32 `json:"total_tokens"`
}

// CostEstimate is a best-effort USD cost derived from token usage and a
// static per-model pricing table.
type CostEstimate struct {
	EstimatedUSD float64 `json:"estimated_cost"`
	InputUSD     float64 `json:"input_cost"`
	OutputUSD    float64 `json:"output_cost"`
	Currency     string  `json:"currency"`
}
