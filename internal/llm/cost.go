package llm

import (
	"math"

	"github.com/airesume/tailor/internal/types"
)

// modelPricing is approximate USD pricing per 1M tokens.
var modelPricing = map[string]struct {
	input  float64
	output float64
}{
	"gemini-2.5-flash-lite": {input: 0.10, output: 0.40},
	"gemini-2.5-flash":      {input: 0.30, output: 2.50},
	"gemini-2.5-pro":        {input: 1.25, output: 10.00},
}

// EstimateCost converts token usage into a best-effort USD estimate. It
// returns nil for models without a pricing entry and for zero usage, which
// callers treat as "cost unknown" rather than free.
func EstimateCost(model string, usage types.TokenUsage) *types.CostEstimate {
	pricing, ok := modelPricing[model]
	if !ok || usage.TotalTokens == 0 {
		return nil
	}

	inputCost := float64(usage.PromptTokens) / 1_000_000 * pricing.input
	outputCost := float64(usage.CompletionTokens) / 1_000_000 * pricing.output

	return &types.CostEstimate{
		EstimatedUSD: round4(inputCost + outputCost),
		InputUSD:     round4(inputCost),
		OutputUSD:    round4(outputCost),
		Currency:     "USD",
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
