package types

// MatchCounts holds the raw set sizes behind a match score.
type MatchCounts struct {
	TargetKeywords     int `json:"target_keywords"`
	CandidateKeywords  int `json:"candidate_keywords"`
	TargetTechnical    int `json:"target_technical"`
	CandidateTechnical int `json:"candidate_technical"`
}

// MatchResult is the full output of scoring a candidate document against a
// target document. Created fresh on every scoring call; never mutated.
type MatchResult struct {
	// OverallScore is round(0.6*TechnicalMatch + 0.4*KeywordMatch, 2).
	OverallScore   float64 `json:"overall_score"`
	TechnicalMatch float64 `json:"technical_match"`
	KeywordMatch   float64 `json:"keyword_match"`

	MatchedTechnical []string `json:"matched_technical"`
	MissingTechnical []string `json:"missing_technical"`
	MatchedKeywords  []string `json:"matched_keywords"`
	MissingKeywords  []string `json:"missing_keywords"`

	// Requirements maps skill phrases in the target to required years.
	Requirements map[string]int `json:"experience_requirements"`

	Counts MatchCounts `json:"counts"`
}
