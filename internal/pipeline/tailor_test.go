package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airesume/tailor/internal/contract"
	"github.com/airesume/tailor/internal/llm"
	"github.com/airesume/tailor/internal/types"
)

// Five catalog terms that are also generic keywords, so every term present
// in the candidate contributes exactly 20 points to the overall score.
const (
	targetText    = "python snowflake databricks spark kafka"
	threeOfFive   = "python snowflake databricks"
	fourOfFive    = "python snowflake databricks spark"
	allFive       = "python snowflake databricks spark kafka"
	stubModelName = "stub-model"
)

func framed(body, summary string) string {
	return body + "\n" + contract.OutputDelimiter + "\n" + summary
}

// stubClient replays canned responses and records the prompts it saw.
type stubClient struct {
	responses []string
	err       error
	calls     int
	prompts   []string
}

func (s *stubClient) Generate(_ context.Context, _, prompt string) (*llm.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.prompts = append(s.prompts, prompt)
	idx := s.calls
	s.calls++
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return &llm.Result{
		Text:  s.responses[idx],
		Usage: types.TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}, nil
}

func (s *stubClient) Model() string { return stubModelName }
func (s *stubClient) Close() error  { return nil }

func TestQuickTailor_Success(t *testing.T) {
	stub := &stubClient{responses: []string{framed(allFive, "added spark and kafka")}}
	tailorer := New(stub, Options{})

	result := tailorer.QuickTailor(context.Background(), threeOfFive, targetText)

	require.True(t, result.Success)
	assert.Equal(t, 60.0, result.OriginalScore)
	assert.Equal(t, 100.0, result.FinalScore)
	assert.Equal(t, 40.0, result.Improvement)
	assert.Equal(t, allFive, result.RewrittenText)
	assert.Equal(t, "added spark and kafka", result.SummaryText)
	assert.Equal(t, stubModelName, result.ModelUsed)
	require.NotNil(t, result.Validation)
	assert.True(t, result.Validation.Valid)
	require.NotNil(t, result.Usage)
	assert.Equal(t, int32(15), result.Usage.TotalTokens)
}

func TestQuickTailor_GenerationFailureFallsBackToOriginal(t *testing.T) {
	stub := &stubClient{err: &llm.ServiceError{Message: "rate limited"}}
	tailorer := New(stub, Options{})

	result := tailorer.QuickTailor(context.Background(), threeOfFive, targetText)

	require.False(t, result.Success)
	assert.Equal(t, threeOfFive, result.RewrittenText)
	assert.Contains(t, result.Error, "rate limited")
	assert.Equal(t, result.OriginalScore, result.FinalScore)
	assert.Nil(t, result.Validation)
}

func TestIterativeTailor_TwoIterationsFromSixty(t *testing.T) {
	stub := &stubClient{responses: []string{
		framed(fourOfFive, "added spark"),
		framed(allFive, "added kafka"),
	}}
	tailorer := New(stub, Options{TargetScore: 85, MaxIterations: 2})

	result := tailorer.IterativeTailor(context.Background(), threeOfFive, targetText)

	require.True(t, result.Success)
	require.Len(t, result.Iterations, 2)
	assert.Equal(t, 80.0, result.Iterations[0].Score)
	assert.Equal(t, 100.0, result.Iterations[1].Score)
	assert.Equal(t, 60.0, result.OriginalScore)
	assert.Equal(t, 100.0, result.FinalScore)
	assert.Equal(t, allFive, result.RewrittenText)
	require.NotNil(t, result.Usage)
	assert.Equal(t, int32(30), result.Usage.TotalTokens)
}

func TestIterativeTailor_OneIterationFromEighty(t *testing.T) {
	stub := &stubClient{responses: []string{framed(allFive, "added kafka")}}
	tailorer := New(stub, Options{TargetScore: 85, MaxIterations: 2})

	result := tailorer.IterativeTailor(context.Background(), fourOfFive, targetText)

	require.True(t, result.Success)
	assert.Len(t, result.Iterations, 1)
	assert.Equal(t, 100.0, result.FinalScore)
}

func TestIterativeTailor_AlreadyAtTargetSkipsGeneration(t *testing.T) {
	stub := &stubClient{responses: []string{framed(allFive, "noop")}}
	tailorer := New(stub, Options{TargetScore: 85, MaxIterations: 2})

	result := tailorer.IterativeTailor(context.Background(), allFive, targetText)

	require.True(t, result.Success)
	assert.Empty(t, result.Iterations)
	assert.Equal(t, allFive, result.RewrittenText)
	assert.Zero(t, stub.calls)
}

func TestIterativeTailor_KeepsBestScoringResult(t *testing.T) {
	// The second iteration regresses; the first iteration's rewrite wins.
	stub := &stubClient{responses: []string{
		framed(allFive, "added everything"),
		framed(threeOfFive, "dropped terms"),
	}}
	tailorer := New(stub, Options{TargetScore: 101, MaxIterations: 2})

	result := tailorer.IterativeTailor(context.Background(), threeOfFive, targetText)

	require.True(t, result.Success)
	require.Len(t, result.Iterations, 2)
	assert.Equal(t, 100.0, result.FinalScore)
	assert.Equal(t, allFive, result.RewrittenText)
	assert.Equal(t, "added everything", result.SummaryText)
}

func TestIterativeTailor_FailureBeforeAnyIteration(t *testing.T) {
	stub := &stubClient{err: &llm.ServiceError{Message: "unavailable"}}
	tailorer := New(stub, Options{TargetScore: 85, MaxIterations: 2})

	result := tailorer.IterativeTailor(context.Background(), threeOfFive, targetText)

	require.False(t, result.Success)
	assert.Equal(t, threeOfFive, result.RewrittenText)
	assert.Contains(t, result.Error, "unavailable")
	assert.Empty(t, result.Iterations)
}

func TestIterativeTailor_EditableZoneWidens(t *testing.T) {
	stub := &stubClient{responses: []string{
		framed(fourOfFive, "first"),
		framed(threeOfFive, "second"),
	}}
	tailorer := New(stub, Options{TargetScore: 101, MaxIterations: 2, EditableZoneLimit: 2})

	tailorer.IterativeTailor(context.Background(), threeOfFive, targetText)

	require.Len(t, stub.prompts, 2)
	assert.Contains(t, stub.prompts[0], "1 most recent")
	assert.Contains(t, stub.prompts[1], "2 most recent")
}

func TestQuickTailor_BulletDeltaReachesPrompt(t *testing.T) {
	stub := &stubClient{responses: []string{framed(allFive, "summary")}}
	tailorer := New(stub, Options{BulletDelta: 2})

	tailorer.QuickTailor(context.Background(), threeOfFive, targetText)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "max +/-2")
}

func TestNew_AppliesDefaults(t *testing.T) {
	tailorer := New(&stubClient{}, Options{})

	assert.Equal(t, DefaultEditableZoneLimit, tailorer.opts.EditableZoneLimit)
	assert.Equal(t, DefaultBulletDelta, tailorer.opts.BulletDelta)
	assert.Equal(t, DefaultTargetScore, tailorer.opts.TargetScore)
	assert.Equal(t, DefaultMaxIterations, tailorer.opts.MaxIterations)
	assert.Equal(t, DefaultGenerationTimeout, tailorer.opts.GenerationTimeout)
}
