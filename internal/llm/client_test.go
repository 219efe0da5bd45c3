package llm

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWithParts(parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}

func TestExtractTextFromResponse(t *testing.T) {
	resp := responseWithParts(genai.Text("rewritten "), genai.Text("resume"))

	text, err := extractTextFromResponse(resp)

	require.NoError(t, err)
	assert.Equal(t, "rewritten resume", text)
}

func TestExtractTextFromResponse_Errors(t *testing.T) {
	var serviceErr *ServiceError

	_, err := extractTextFromResponse(&genai.GenerateContentResponse{})
	require.ErrorAs(t, err, &serviceErr)

	_, err = extractTextFromResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	})
	require.ErrorAs(t, err, &serviceErr)
}

func TestExtractUsage(t *testing.T) {
	resp := responseWithParts(genai.Text("x"))
	resp.UsageMetadata = &genai.UsageMetadata{
		PromptTokenCount:     1200,
		CandidatesTokenCount: 800,
		TotalTokenCount:      2000,
	}

	usage := extractUsage(resp)

	assert.Equal(t, int32(1200), usage.PromptTokens)
	assert.Equal(t, int32(800), usage.CompletionTokens)
	assert.Equal(t, int32(2000), usage.TotalTokens)
}

func TestExtractUsage_MissingMetadata(t *testing.T) {
	usage := extractUsage(responseWithParts(genai.Text("x")))
	assert.Zero(t, usage.TotalTokens)
}

func TestServiceError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := &ServiceError{Message: "failed to generate content", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to generate content")
}
