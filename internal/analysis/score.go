package analysis

import (
	"math"

	"github.com/airesume/tailor/internal/types"
)

// Score weights: curated technical terms count for more than generic
// keyword overlap.
const (
	technicalWeight = 0.6
	keywordWeight   = 0.4
)

// Score computes the match between a candidate document and a target
// document. It is pure and total over any two strings, including empty
// ones (all sub-scores become 0).
//
// The matched and missing sets are exposed alongside the scalar scores
// because the contract builder consumes "missing technical terms" directly.
func Score(candidateText, targetText string) *types.MatchResult {
	candidateTerms := ExtractAll(candidateText)
	targetTerms := ExtractAll(targetText)
	keywordMatch := overlapPercent(candidateTerms, targetTerms)

	candidateTech := ExtractTechnical(candidateText)
	targetTech := ExtractTechnical(targetText)
	technicalMatch := overlapPercent(candidateTech, targetTech)

	overall := round2(technicalMatch*technicalWeight + keywordMatch*keywordWeight)

	return &types.MatchResult{
		OverallScore:     overall,
		TechnicalMatch:   round2(technicalMatch),
		KeywordMatch:     round2(keywordMatch),
		MatchedTechnical: candidateTech.Intersect(targetTech),
		MissingTechnical: targetTech.Diff(candidateTech),
		MatchedKeywords:  candidateTerms.Intersect(targetTerms),
		MissingKeywords:  targetTerms.Diff(candidateTerms),
		Requirements:     ExtractRequirements(targetText),
		Counts: types.MatchCounts{
			TargetKeywords:     targetTerms.Len(),
			CandidateKeywords:  candidateTerms.Len(),
			TargetTechnical:    targetTech.Len(),
			CandidateTechnical: candidateTech.Len(),
		},
	}
}

// overlapPercent returns 100 * |candidate ∩ target| / |target|, clamped to
// [0,100]. Defined as 0 when the target set is empty.
func overlapPercent(candidate, target *types.TermSet) float64 {
	if target.Len() == 0 {
		return 0
	}
	matched := len(candidate.Intersect(target))
	percent := float64(matched) / float64(target.Len()) * 100
	return math.Min(percent, 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
