// Package llm provides centralized model configuration and the generation
// client used for resume tailoring. The package isolates provider specifics
// so the pipeline depends only on the Client interface.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for cheap, high-volume runs
	TierLite ModelTier = "lite"
	// TierStandard is the default balance of quality and cost
	TierStandard ModelTier = "standard"
	// TierAdvanced is for the highest-fidelity rewrites
	TierAdvanced ModelTier = "advanced"
)

// Generation settings shared by every tailoring call. Low temperature keeps
// the model from "improving" content it was told to copy; the token ceiling
// must fit a complete resume plus the change summary.
const (
	DefaultTemperature     float32 = 0.3
	DefaultMaxOutputTokens int32   = 6000
)

// Config holds the model configuration for the application
type Config struct {
	Models          map[ModelTier]string
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultConfig returns the default Gemini tier mapping
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxOutputTokens,
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Models:          make(map[ModelTier]string),
		Temperature:     c.Temperature,
		MaxOutputTokens: c.MaxOutputTokens,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}

// ModelInfo describes one selectable model for display purposes.
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CostHint    string `json:"cost"`
	Description string `json:"description"`
}

// Catalog returns the selectable models with rough per-resume cost hints.
func Catalog() []ModelInfo {
	return []ModelInfo{
		{
			ID:          "gemini-2.5-flash",
			Name:        "Gemini 2.5 Flash (Recommended)",
			CostHint:    "~$0.01/resume",
			Description: "Good balance of quality and cost",
		},
		{
			ID:          "gemini-2.5-flash-lite",
			Name:        "Gemini 2.5 Flash Lite",
			CostHint:    "~$0.002/resume",
			Description: "Cheapest, best at following exact instructions",
		},
		{
			ID:          "gemini-2.5-pro",
			Name:        "Gemini 2.5 Pro",
			CostHint:    "~$0.05/resume",
			Description: "Best quality, most expensive",
		},
	}
}
