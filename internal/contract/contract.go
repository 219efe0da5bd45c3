package contract

import (
	"github.com/airesume/tailor/internal/types"
)

// OutputDelimiter is the literal line separating the rewritten resume body
// from the change summary in a generated response.
const OutputDelimiter = "---TAILORING SUMMARY---"

// delimiterCorePhrase is the looser split marker used when the generator
// drops the surrounding punctuation of the exact delimiter.
const delimiterCorePhrase = "TAILORING SUMMARY"

// DefaultBulletDelta bounds how many bullet lines may be added or removed
// per edited role.
const DefaultBulletDelta = 1

// FrozenSections are the section labels the generator must reproduce
// character-for-character.
var FrozenSections = []string{
	"Professional Summary / Objective",
	"Technical Skills",
	"Education",
	"Contact Information",
	"Certifications",
	"Publications",
	"Awards",
}

// Build constructs the rewrite contract for one tailoring attempt from the
// candidate and target documents and their match result. Construction is
// pure; an editableZoneLimit below 1 is clamped to 1, a bulletDelta below 1
// falls back to DefaultBulletDelta.
func Build(candidate, target types.Document, match *types.MatchResult, editableZoneLimit, bulletDelta int) *types.RewriteContract {
	if editableZoneLimit < 1 {
		editableZoneLimit = 1
	}
	if bulletDelta < 1 {
		bulletDelta = DefaultBulletDelta
	}

	frozen := make([]string, len(FrozenSections))
	copy(frozen, FrozenSections)

	return &types.RewriteContract{
		FrozenSections:    frozen,
		EditableZoneLimit: editableZoneLimit,
		BulletDeltaBound:  bulletDelta,
		RequiredEntities:  ExtractFrozenEntities(candidate.Text),
		OutputDelimiter:   OutputDelimiter,
		MissingTechnical:  match.MissingTechnical,
		Requirements:      match.Requirements,
		MatchScore:        match.OverallScore,
		CandidateText:     candidate.Text,
		TargetText:        target.Text,
	}
}
