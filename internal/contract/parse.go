package contract

import "strings"

// SummaryUnavailable is the sentinel summary returned when no delimiter can
// be found in a generated response.
const SummaryUnavailable = "Summary not available"

// ParseResponse splits a raw generated response into the rewritten body and
// the change summary. It tries the exact delimiter line first, then a looser
// split on the delimiter's core phrase, and finally falls back to treating
// the whole response as the body with a sentinel summary. It never fails.
func ParseResponse(raw string) (body, summary string) {
	parts := strings.Split(raw, OutputDelimiter)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}

	if strings.Contains(raw, delimiterCorePhrase) {
		parts = strings.Split(raw, delimiterCorePhrase)
		body = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			return body, strings.TrimSpace(parts[1])
		}
		return body, SummaryUnavailable
	}

	return strings.TrimSpace(raw), SummaryUnavailable
}
