// Package contract builds the rewrite contract communicated to the external
// generator and parses its framed response. The contract is advisory prose,
// not a machine-checked grammar: instruction-following by a generative model
// is probabilistic, so the contract is restated with maximum redundancy here
// and independently re-checked post hoc by the validation package.
package contract

import (
	"regexp"
	"sort"
	"strings"
)

// Patterns for the generic frozen-entity pass. Entities are pulled from the
// candidate document itself rather than from a hardcoded catalog of proper
// nouns, so the contract works for any resume.
var (
	// companyNamePattern matches capitalized multi-word sequences ending in
	// a common organization suffix.
	companyNamePattern = regexp.MustCompile(`\b([A-Z][A-Za-z&.]*(?:\s+[A-Z][A-Za-z&.]*){0,4}\s+(?:Corporation|Corp\.?|Incorporated|Inc\.?|LLC|Ltd\.?|Limited|Technologies|Technology\s+Solutions|Solutions|Systems|Consulting|Labs|Bank|Group))\b`)

	// degreePattern matches degree phrases such as "Master of Computer
	// Applications" or "Bachelor of Science".
	degreePattern = regexp.MustCompile(`\b((?:Bachelor|Master|Doctor)s?\s+of\s+[A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+){0,3})\b`)

	// certificationPattern matches well-known certification phrases.
	certificationPattern = regexp.MustCompile(`\b(AWS\s+Certified\s+[A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z-]+){0,3}|Azure\s+[A-Z][A-Za-z]+\s+Certified|Certified\s+Scrum\s*Master|PMP)\b`)
)

// knownSectionHeaders are resume section labels checked for verbatim
// presence. Only headers that actually occur in the candidate become
// required entities.
var knownSectionHeaders = []string{
	"Professional Summary",
	"Technical Skills",
	"Education",
	"Certifications",
	"Publications",
	"Awards",
}

// ExtractFrozenEntities returns the strings in the candidate text that the
// rewrite must reproduce verbatim: company names, degree phrases,
// certifications, and section headers present in the document. The result
// is de-duplicated and sorted.
func ExtractFrozenEntities(candidateText string) []string {
	seen := make(map[string]struct{})

	for _, pattern := range []*regexp.Regexp{companyNamePattern, degreePattern, certificationPattern} {
		for _, match := range pattern.FindAllString(candidateText, -1) {
			entity := strings.TrimSpace(match)
			if entity != "" {
				seen[entity] = struct{}{}
			}
		}
	}

	for _, header := range knownSectionHeaders {
		if strings.Contains(candidateText, header) {
			seen[header] = struct{}{}
		}
	}

	entities := make([]string, 0, len(seen))
	for entity := range seen {
		entities = append(entities, entity)
	}
	sort.Strings(entities)
	return entities
}
