// Package analysis implements the match-scoring engine: text normalization,
// technical term and keyword extraction, experience requirement extraction,
// and the weighted match score between a candidate document and a target
// document. Everything in this package is a pure function over strings.
package analysis

import (
	"regexp"
	"strings"
)

// disallowedChars matches any character outside the normalized alphabet.
// Hyphen, plus, and hash are preserved so terms like "c++", "c#", and
// "scikit-learn" survive normalization.
var disallowedChars = regexp.MustCompile(`[^a-z0-9\s\-+#]`)

// Normalize lowercases text, replaces any character outside
// [a-z0-9 -+#] with a space, collapses whitespace runs, and trims.
// It is deterministic, total, and idempotent.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = disallowedChars.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}
