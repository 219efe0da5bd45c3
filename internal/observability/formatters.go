// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/airesume/tailor/internal/types"
	"github.com/airesume/tailor/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of a match analysis.
func (p *Printer) PrintMatchResult(m *types.MatchResult) {
	if m == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:   %.1f%%\n", m.OverallScore))
	sb.WriteString(fmt.Sprintf("Technical: %.1f%%  (%d/%d matched)\n",
		m.TechnicalMatch, len(m.MatchedTechnical), m.Counts.TargetTechnical))
	sb.WriteString(fmt.Sprintf("Keywords:  %.1f%%  (%d/%d matched)\n",
		m.KeywordMatch, len(m.MatchedKeywords), m.Counts.TargetKeywords))

	if len(m.MissingTechnical) > 0 {
		sb.WriteString("\nMissing technical skills:\n")
		count := min(len(m.MissingTechnical), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", m.MissingTechnical[i]))
		}
		if len(m.MissingTechnical) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(m.MissingTechnical)-maxItemsToShow))
		}
	}

	if len(m.Requirements) > 0 {
		sb.WriteString("\nExperience requirements:\n")
		skills := make([]string, 0, len(m.Requirements))
		for skill := range m.Requirements {
			skills = append(skills, skill)
		}
		sort.Strings(skills)
		count := min(len(skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s: %d years\n", skills[i], m.Requirements[skills[i]]))
		}
	}

	p.printBox("MATCH ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationReport outputs detected contract violations.
func (p *Printer) PrintValidationReport(report *types.ValidationReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if report.Valid {
		sb.WriteString("No contract violations detected.")
	} else {
		sb.WriteString(fmt.Sprintf("Issues found: %d\n\n", len(report.Issues)))
		for _, issue := range report.Issues {
			sb.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(issue.Severity), issue.Message))
		}
		if fixes := validation.SuggestFixes(report); len(fixes) > 0 {
			sb.WriteString("\nSuggested fixes:\n")
			for _, fix := range fixes {
				sb.WriteString(fmt.Sprintf("  • %s\n", fix))
			}
		}
	}

	p.printBox("CONTRACT VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTailorResult outputs the score trajectory and cost of a tailoring run.
func (p *Printer) PrintTailorResult(result *types.TailorResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if !result.Success {
		sb.WriteString(fmt.Sprintf("FAILED: %s\n", result.Error))
		sb.WriteString("Original text returned unchanged.")
		p.printBox("TAILORING RESULT", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Score: %.1f%% → %.1f%%  (%+.1f)\n",
		result.OriginalScore, result.FinalScore, result.Improvement))
	if result.ModelUsed != "" {
		sb.WriteString(fmt.Sprintf("Model: %s\n", result.ModelUsed))
	}
	if result.Usage != nil {
		sb.WriteString(fmt.Sprintf("Tokens: %d prompt + %d completion\n",
			result.Usage.PromptTokens, result.Usage.CompletionTokens))
	}
	if result.Cost != nil {
		sb.WriteString(fmt.Sprintf("Est. cost: $%.4f\n", result.Cost.EstimatedUSD))
	}
	for _, iteration := range result.Iterations {
		sb.WriteString(fmt.Sprintf("  iteration %d: %.1f%%\n", iteration.Iteration, iteration.Score))
	}

	p.printBox("TAILORING RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
