package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	app_errors "github.com/NurM0hammad/FoxMind-AI/internal/errors"
	"github.com/NurM0hammad/FoxMind-AI/internal/model"
)

// Fixed decoding parameters for every session. Temperature is the only
// caller-overridable knob.
const (
	defaultTopP            = 0.95
	defaultTopK            = 40
	defaultMaxOutputTokens = 8192
)

type geminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a Provider backed by the Gemini API. An empty
// API key yields an unconfigured provider whose calls fail with
// ErrUnconfigured rather than an error at construction time, so the server
// can still start and report its status.
func NewGeminiProvider(ctx context.Context, apiKey string) (Provider, error) {
	if apiKey == "" {
		return &geminiProvider{}, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("could not create gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) Configured() bool {
	return p.client != nil
}

func (p *geminiProvider) ListModels(ctx context.Context) ([]model.Descriptor, error) {
	if p.client == nil {
		return nil, app_errors.ErrUnconfigured
	}

	var descriptors []model.Descriptor
	it := p.client.ListModels(ctx)
	for {
		info, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not list models: %w", err)
		}
		if !slices.Contains(info.SupportedGenerationMethods, "generateContent") {
			continue
		}
		descriptors = append(descriptors, descriptorFromInfo(info))
	}
	return descriptors, nil
}

func (p *geminiProvider) StartSession(ctx context.Context, cfg SessionConfig, history []model.Message) (Session, error) {
	if p.client == nil {
		return nil, app_errors.ErrUnconfigured
	}

	m := p.client.GenerativeModel(cfg.Model)
	m.GenerationConfig.SetTemperature(float32(cfg.Temperature))
	m.GenerationConfig.SetTopP(defaultTopP)
	m.GenerationConfig.SetTopK(defaultTopK)
	m.GenerationConfig.SetMaxOutputTokens(defaultMaxOutputTokens)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(cfg.SystemInstruction)}}
	// A single moderate-permissiveness threshold across all categories.
	m.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockOnlyHigh},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockOnlyHigh},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockOnlyHigh},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockOnlyHigh},
	}

	chat := m.StartChat()
	chat.History = historyToContents(history)

	return &geminiSession{model: m, chat: chat}, nil
}

type geminiSession struct {
	model *genai.GenerativeModel
	chat  *genai.ChatSession
}

func (s *geminiSession) SetTemperature(t float64) {
	s.model.GenerationConfig.SetTemperature(float32(t))
}

func (s *geminiSession) Send(ctx context.Context, text string) (*Reply, error) {
	resp, err := s.chat.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return nil, err
	}
	return &Reply{
		Text:  candidateText(resp),
		Usage: usageFromResponse(resp),
	}, nil
}

func (s *geminiSession) SendStream(ctx context.Context, text string, ch chan<- StreamChunk) {
	defer close(ch)

	it := s.chat.SendMessageStream(ctx, genai.Text(text))
	for {
		resp, err := it.Next()
		if err == iterator.Done || errors.Is(err, io.EOF) {
			emit(ctx, ch, StreamChunk{Done: true})
			return
		}
		if err != nil {
			emit(ctx, ch, StreamChunk{Error: err.Error()})
			return
		}
		if delta := candidateText(resp); delta != "" {
			if !emit(ctx, ch, StreamChunk{Text: delta}) {
				return
			}
		}
	}
}

// emit forwards a chunk unless the consumer is gone. It reports whether the
// chunk was delivered.
func emit(ctx context.Context, ch chan<- StreamChunk, chunk StreamChunk) bool {
	select {
	case ch <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}

// historyToContents maps stored messages to the upstream role vocabulary:
// "user" stays "user", "assistant" becomes "model". Anything else is skipped.
func historyToContents(history []model.Message) []*genai.Content {
	var contents []*genai.Content
	for _, msg := range history {
		var role string
		switch msg.Role {
		case model.RoleUser:
			role = "user"
		case model.RoleAssistant:
			role = "model"
		default:
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

// candidateText joins the text parts of all candidates of a response.
func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				b.WriteString(string(txt))
			}
		}
	}
	return b.String()
}

func usageFromResponse(resp *genai.GenerateContentResponse) model.Usage {
	if resp == nil || resp.UsageMetadata == nil {
		return model.Usage{}
	}
	return model.Usage{
		PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
		CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
	}
}

func descriptorFromInfo(info *genai.ModelInfo) model.Descriptor {
	name := strings.TrimPrefix(info.Name, "models/")
	contextWindow := int(info.InputTokenLimit)
	if contextWindow == 0 {
		// Older listings omit token limits; fall back to a name heuristic.
		if strings.Contains(name, "1.5") {
			contextWindow = 1000000
		} else {
			contextWindow = 30000
		}
	}
	lower := strings.ToLower(name)
	return model.Descriptor{
		Name:              name,
		Description:       info.Description,
		ContextWindow:     contextWindow,
		SupportsStreaming: true,
		SupportsVision:    strings.Contains(lower, "vision") || strings.Contains(name, "1.5"),
	}
}
