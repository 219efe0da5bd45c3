package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/airesume/tailor/internal/analysis"
	"github.com/airesume/tailor/internal/types"
)

// batchConcurrency bounds concurrent scoring goroutines. Scoring is
// CPU-bound regex work; a small limit keeps large batches well-behaved.
const batchConcurrency = 4

// BatchItem is one named job description to score against.
type BatchItem struct {
	Name string
	Text string
}

// BatchScore pairs a batch item's name with its match result.
type BatchScore struct {
	Name   string             `json:"name"`
	Result *types.MatchResult `json:"result"`
}

// ScoreBatch scores one candidate against many job descriptions
// concurrently. Results are returned in input order.
func ScoreBatch(ctx context.Context, candidateText string, items []BatchItem) ([]BatchScore, error) {
	scores := make([]BatchScore, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scores[i] = BatchScore{
				Name:   item.Name,
				Result: analysis.Score(candidateText, item.Text),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
