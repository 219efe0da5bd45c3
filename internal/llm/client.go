package llm

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/airesume/tailor/internal/types"
)

// Result is one completed generation with its token accounting.
type Result struct {
	Text  string
	Usage types.TokenUsage
}

// Client is an abstraction over generation providers
type Client interface {
	// Generate produces text for the prompt under the given system instructions
	Generate(ctx context.Context, system, prompt string) (*Result, error)
	// Model returns the resolved model name used for generation
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
	model  string
}

// NewGeminiClient creates a new Gemini client bound to one model tier
func NewGeminiClient(ctx context.Context, config *Config, tier ModelTier, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &ServiceError{Message: "API key is required"}
	}
	if config == nil {
		config = DefaultConfig()
	}

	modelName := config.GetModel(tier)
	if modelName == "" {
		return nil, &ServiceError{Message: "no model configured for tier " + string(tier)}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &ServiceError{Message: "failed to create Gemini client", Cause: err}
	}

	return &GeminiClient{
		client: client,
		config: config,
		model:  modelName,
	}, nil
}

// Generate produces text for the prompt under the given system instructions
func (c *GeminiClient) Generate(ctx context.Context, system, prompt string) (*Result, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.config.Temperature)
	model.SetMaxOutputTokens(c.config.MaxOutputTokens)
	if system != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, &ServiceError{Message: "failed to generate content", Cause: err}
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	return &Result{
		Text:  text,
		Usage: extractUsage(resp),
	}, nil
}

// Model returns the resolved model name
func (c *GeminiClient) Model() string {
	return c.model
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &ServiceError{Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &ServiceError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &ServiceError{Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}

// extractUsage pulls token accounting out of a response, tolerating its absence
func extractUsage(resp *genai.GenerateContentResponse) types.TokenUsage {
	if resp.UsageMetadata == nil {
		return types.TokenUsage{}
	}
	return types.TokenUsage{
		PromptTokens:     resp.UsageMetadata.PromptTokenCount,
		CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
		TotalTokens:      resp.UsageMetadata.TotalTokenCount,
	}
}
