package llm

import (
	"context"
	"testing"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "github.com/NurM0hammad/FoxMind-AI/internal/errors"
	"github.com/NurM0hammad/FoxMind-AI/internal/model"
)

func TestNewGeminiProvider_EmptyKeyIsUnconfigured(t *testing.T) {
	provider, err := NewGeminiProvider(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, provider.Configured())

	_, err = provider.ListModels(context.Background())
	assert.ErrorIs(t, err, app_errors.ErrUnconfigured)

	_, err = provider.StartSession(context.Background(), SessionConfig{Model: "gemini-1.5-pro"}, nil)
	assert.ErrorIs(t, err, app_errors.ErrUnconfigured)
}

func TestHistoryToContents(t *testing.T) {
	history := []model.Message{
		{Role: model.RoleUser, Content: "hello"},
		{Role: model.RoleAssistant, Content: "hi there"},
		{Role: "system", Content: "ignored"},
		{Role: model.RoleUser, Content: "and again"},
	}

	contents := historyToContents(history)

	require.Len(t, contents, 3)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, genai.Text("hello"), contents[0].Parts[0])
	assert.Equal(t, "model", contents[1].Role)
	assert.Equal(t, genai.Text("hi there"), contents[1].Parts[0])
	assert.Equal(t, "user", contents[2].Role)
}

func TestHistoryToContents_Empty(t *testing.T) {
	assert.Nil(t, historyToContents(nil))
	assert.Nil(t, historyToContents([]model.Message{}))
}

func TestCandidateText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Hel"), genai.Text("lo")}}},
			{Content: nil},
		},
	}

	assert.Equal(t, "Hello", candidateText(resp))
	assert.Equal(t, "", candidateText(nil))
	assert.Equal(t, "", candidateText(&genai.GenerateContentResponse{}))
}

func TestUsageFromResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		UsageMetadata: &genai.UsageMetadata{
			PromptTokenCount:     12,
			CandidatesTokenCount: 34,
			TotalTokenCount:      46,
		},
	}

	usage := usageFromResponse(resp)
	assert.Equal(t, 12, usage.PromptTokens)
	assert.Equal(t, 34, usage.CompletionTokens)
	assert.Equal(t, 46, usage.TotalTokens)

	assert.Zero(t, usageFromResponse(nil))
	assert.Zero(t, usageFromResponse(&genai.GenerateContentResponse{}))
}

func TestDescriptorFromInfo(t *testing.T) {
	t.Run("token limit from listing", func(t *testing.T) {
		d := descriptorFromInfo(&genai.ModelInfo{
			Name:            "models/gemini-2.0-flash",
			Description:     "fast",
			InputTokenLimit: 1048576,
		})
		assert.Equal(t, "gemini-2.0-flash", d.Name)
		assert.Equal(t, 1048576, d.ContextWindow)
		assert.True(t, d.SupportsStreaming)
	})

	t.Run("name heuristic when limit missing", func(t *testing.T) {
		d := descriptorFromInfo(&genai.ModelInfo{Name: "models/gemini-1.5-pro"})
		assert.Equal(t, 1000000, d.ContextWindow)
		assert.True(t, d.SupportsVision)

		d = descriptorFromInfo(&genai.ModelInfo{Name: "models/gemini-pro"})
		assert.Equal(t, 30000, d.ContextWindow)
		assert.False(t, d.SupportsVision)
	})

	t.Run("vision models", func(t *testing.T) {
		d := descriptorFromInfo(&genai.ModelInfo{Name: "models/gemini-pro-vision", InputTokenLimit: 12288})
		assert.True(t, d.SupportsVision)
	})
}
