// Package pipeline provides the high-level orchestration for scoring and
// tailoring a resume against a job description.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/airesume/tailor/internal/analysis"
	"github.com/airesume/tailor/internal/contract"
	"github.com/airesume/tailor/internal/llm"
	"github.com/airesume/tailor/internal/types"
	"github.com/airesume/tailor/internal/validation"
)

// Defaults applied by New when an Options field is zero.
const (
	DefaultEditableZoneLimit = 2
	DefaultBulletDelta       = contract.DefaultBulletDelta
	DefaultTargetScore       = 85.0
	DefaultMaxIterations     = 2
	DefaultGenerationTimeout = 2 * time.Minute
)

// Options holds configuration for a Tailorer
type Options struct {
	// EditableZoneLimit is the maximum number of recent roles the
	// generator may modify.
	EditableZoneLimit int
	// BulletDelta bounds how many bullet lines may be added or removed
	// per edited role.
	BulletDelta int
	// TargetScore stops iterative refinement early once reached.
	TargetScore float64
	// MaxIterations bounds the iterative refinement loop.
	MaxIterations int
	// GenerationTimeout bounds each external generation call.
	GenerationTimeout time.Duration
	// Logger receives structured progress events; nil disables logging.
	Logger *zap.Logger
}

// Tailorer sequences scoring, contract construction, generation, parsing,
// validation, and re-scoring.
type Tailorer struct {
	client llm.Client
	opts   Options
	log    *zap.Logger
}

// New creates a Tailorer around a generation client, filling in defaults
// for unset options.
func New(client llm.Client, opts Options) *Tailorer {
	if opts.EditableZoneLimit <= 0 {
		opts.EditableZoneLimit = DefaultEditableZoneLimit
	}
	if opts.BulletDelta <= 0 {
		opts.BulletDelta = DefaultBulletDelta
	}
	if opts.TargetScore <= 0 {
		opts.TargetScore = DefaultTargetScore
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.GenerationTimeout <= 0 {
		opts.GenerationTimeout = DefaultGenerationTimeout
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Tailorer{client: client, opts: opts, log: log}
}

// generateOnce runs one contract-bound generation attempt. On any failure
// the outcome carries the untouched candidate text, never an empty or
// partial document.
func (t *Tailorer) generateOnce(ctx context.Context, candidate, target types.Document, match *types.MatchResult, zoneLimit int) *types.RewriteOutcome {
	c := contract.Build(candidate, target, match, zoneLimit, t.opts.BulletDelta)

	ctx, cancel := context.WithTimeout(ctx, t.opts.GenerationTimeout)
	defer cancel()

	result, err := t.client.Generate(ctx, contract.SystemInstructions(), contract.RenderInstructions(c))
	if err != nil {
		return &types.RewriteOutcome{
			RewrittenText: candidate.Text,
			Success:       false,
			Error:         err.Error(),
			ModelUsed:     t.client.Model(),
		}
	}

	body, summary := contract.ParseResponse(result.Text)
	usage := result.Usage
	return &types.RewriteOutcome{
		RewrittenText: body,
		SummaryText:   summary,
		Success:       true,
		ModelUsed:     t.client.Model(),
		Usage:         &usage,
	}
}

// QuickTailor runs the one-shot sequence: score, build contract, generate,
// parse, validate, re-score. On generation failure the result is marked
// unsuccessful and RewrittenText is the original candidate text unchanged.
func (t *Tailorer) QuickTailor(ctx context.Context, candidateText, targetText string) *types.TailorResult {
	log := t.log.With(zap.String("run_id", uuid.NewString()))

	candidate := types.NewCandidate(candidateText)
	target := types.NewTarget(targetText)

	match := analysis.Score(candidateText, targetText)
	log.Info("scored original", zap.Float64("overall_score", match.OverallScore))

	outcome := t.generateOnce(ctx, candidate, target, match, t.opts.EditableZoneLimit)
	if !outcome.Success {
		log.Warn("generation failed", zap.String("error", outcome.Error))
		return &types.TailorResult{
			Success:       false,
			Error:         outcome.Error,
			OriginalScore: match.OverallScore,
			FinalScore:    match.OverallScore,
			RewrittenText: candidateText,
			ModelUsed:     outcome.ModelUsed,
		}
	}

	report := validation.Validate(outcome.RewrittenText, candidateText)
	rescored := analysis.Score(outcome.RewrittenText, targetText)
	log.Info("rescored rewrite",
		zap.Float64("final_score", rescored.OverallScore),
		zap.Bool("valid", report.Valid))

	result := &types.TailorResult{
		Success:       true,
		OriginalScore: match.OverallScore,
		FinalScore:    rescored.OverallScore,
		Improvement:   rescored.OverallScore - match.OverallScore,
		RewrittenText: outcome.RewrittenText,
		SummaryText:   outcome.SummaryText,
		Validation:    report,
		ModelUsed:     outcome.ModelUsed,
		Usage:         outcome.Usage,
	}
	if outcome.Usage != nil {
		result.Cost = llm.EstimateCost(outcome.ModelUsed, *outcome.Usage)
	}
	return result
}

// IterativeTailor repeats the tailoring sequence until the target score is
// reached or the iteration bound is exhausted, feeding each iteration's
// rewrite back in as the next candidate. The editable zone starts at one
// role and widens with each iteration up to the configured limit. The
// best-scoring rewrite seen is kept, not necessarily the last one.
func (t *Tailorer) IterativeTailor(ctx context.Context, candidateText, targetText string) *types.TailorResult {
	log := t.log.With(zap.String("run_id", uuid.NewString()))

	target := types.NewTarget(targetText)

	match := analysis.Score(candidateText, targetText)
	initialScore := match.OverallScore

	currentText := candidateText
	currentScore := initialScore

	bestText := candidateText
	bestScore := initialScore
	bestSummary := ""

	var history []types.IterationRecord
	var totalUsage types.TokenUsage
	var generationError string

	for i := 0; i < t.opts.MaxIterations; i++ {
		if currentScore >= t.opts.TargetScore {
			break
		}

		zoneLimit := i + 1
		if zoneLimit > t.opts.EditableZoneLimit {
			zoneLimit = t.opts.EditableZoneLimit
		}

		outcome := t.generateOnce(ctx, types.NewCandidate(currentText), target, match, zoneLimit)
		if !outcome.Success {
			generationError = outcome.Error
			log.Warn("iteration generation failed",
				zap.Int("iteration", i+1),
				zap.String("error", outcome.Error))
			break
		}
		if outcome.Usage != nil {
			totalUsage.PromptTokens += outcome.Usage.PromptTokens
			totalUsage.CompletionTokens += outcome.Usage.CompletionTokens
			totalUsage.TotalTokens += outcome.Usage.TotalTokens
		}

		rescored := analysis.Score(outcome.RewrittenText, targetText)
		history = append(history, types.IterationRecord{
			Iteration: i + 1,
			Score:     rescored.OverallScore,
			Summary:   outcome.SummaryText,
		})
		log.Info("iteration complete",
			zap.Int("iteration", i+1),
			zap.Int("zone_limit", zoneLimit),
			zap.Float64("score", rescored.OverallScore))

		if rescored.OverallScore > bestScore {
			bestText = outcome.RewrittenText
			bestScore = rescored.OverallScore
			bestSummary = outcome.SummaryText
		}

		currentText = outcome.RewrittenText
		currentScore = rescored.OverallScore
		match = rescored
	}

	result := &types.TailorResult{
		Success:       true,
		OriginalScore: initialScore,
		FinalScore:    bestScore,
		Improvement:   bestScore - initialScore,
		RewrittenText: bestText,
		SummaryText:   bestSummary,
		Validation:    validation.Validate(bestText, candidateText),
		ModelUsed:     t.client.Model(),
		Iterations:    history,
	}
	if generationError != "" && len(history) == 0 {
		// Nothing usable was produced; surface the failure with the
		// original text intact.
		result.Success = false
		result.Error = generationError
	}
	if totalUsage.TotalTokens > 0 {
		result.Usage = &totalUsage
		result.Cost = llm.EstimateCost(result.ModelUsed, totalUsage)
	}
	return result
}
