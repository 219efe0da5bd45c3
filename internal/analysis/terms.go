package analysis

import (
	"strings"

	"github.com/airesume/tailor/internal/types"
)

// ExtractTechnical returns the set of curated technical terms found in text.
// Category patterns are matched against normalized text; canonical multi-word
// phrases are added underscore-joined when contained in the normalized text.
func ExtractTechnical(text string) *types.TermSet {
	set := types.NewTermSet(types.CategoryTechnical)
	clean := Normalize(text)

	for _, cat := range technicalCatalog {
		for _, match := range cat.pattern.FindAllString(clean, -1) {
			set.Add(match)
		}
	}

	for _, term := range multiWordTerms {
		if strings.Contains(clean, term) {
			set.Add(strings.ReplaceAll(term, " ", "_"))
		}
	}

	return set
}

// ExtractGeneric returns the generic keywords of text: whitespace tokens of
// the normalized text with length > 3 that are not stop words. Tokens are
// added verbatim, not stemmed.
func ExtractGeneric(text string) *types.TermSet {
	set := types.NewTermSet(types.CategoryGeneric)
	for _, word := range strings.Fields(Normalize(text)) {
		if len(word) <= minGenericTokenLen {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		set.Add(word)
	}
	return set
}

// ExtractAll returns the union of technical terms and generic keywords.
func ExtractAll(text string) *types.TermSet {
	return ExtractTechnical(text).Union(ExtractGeneric(text))
}
