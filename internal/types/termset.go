package types

import "sort"

// TermCategory distinguishes curated technical terms from generic keywords.
type TermCategory string

// Term categories
const (
	// CategoryTechnical marks terms drawn from the curated skill catalog.
	CategoryTechnical TermCategory = "technical"
	// CategoryGeneric marks length-filtered, stop-word-filtered free-text tokens.
	CategoryGeneric TermCategory = "generic"
	// CategoryCombined marks the union of sets with differing categories.
	CategoryCombined TermCategory = "combined"
)

// TermSet is a de-duplicated set of normalized term strings tagged by category.
// Multi-word terms are stored underscore-joined so membership tests are
// exact-string, not substring.
type TermSet struct {
	Category TermCategory
	terms    map[string]struct{}
}

// NewTermSet creates an empty term set with the given category.
func NewTermSet(category TermCategory) *TermSet {
	return &TermSet{
		Category: category,
		terms:    make(map[string]struct{}),
	}
}

// Add inserts a term. Empty strings are ignored.
func (s *TermSet) Add(term string) {
	if term == "" {
		return
	}
	s.terms[term] = struct{}{}
}

// Has reports whether the exact term is in the set.
func (s *TermSet) Has(term string) bool {
	_, ok := s.terms[term]
	return ok
}

// Len returns the number of distinct terms.
func (s *TermSet) Len() int {
	return len(s.terms)
}

// Sorted returns all terms in lexical order.
func (s *TermSet) Sorted() []string {
	out := make([]string, 0, len(s.terms))
	for t := range s.terms {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Union returns a new set containing terms from both sets. The result keeps
// the receiver's category when both sets share it, and is CategoryCombined
// otherwise.
func (s *TermSet) Union(other *TermSet) *TermSet {
	category := s.Category
	if other != nil && other.Category != s.Category {
		category = CategoryCombined
	}
	out := NewTermSet(category)
	for t := range s.terms {
		out.Add(t)
	}
	if other != nil {
		for t := range other.terms {
			out.Add(t)
		}
	}
	return out
}

// Intersect returns the terms present in both sets, in lexical order.
func (s *TermSet) Intersect(other *TermSet) []string {
	if other == nil {
		return nil
	}
	var out []string
	for t := range s.terms {
		if other.Has(t) {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// Diff returns the terms present in s but not in other, in lexical order.
func (s *TermSet) Diff(other *TermSet) []string {
	var out []string
	for t := range s.terms {
		if other == nil || !other.Has(t) {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
