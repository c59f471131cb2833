package services

import (
	"context"
	"fmt"

	"github.com/playlisto/playlisto/internal/shared"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-1.5-flash-latest"

// GeminiService implements [Generator] on top of the Gemini API.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService creates a Gemini-backed generator authenticated with an
// API key. The model name defaults to [defaultGeminiModel] when empty.
func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini API key is empty", shared.ErrMissingCredentials)
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiService{client: client, model: model}, nil
}

// Name returns the service name.
func (g *GeminiService) Name() string {
	return "Gemini"
}

// Recommend sends the rendered prompt to the model and returns the raw
// response text. Any transport or service error wraps
// [shared.ErrGenerationFailed] so callers can treat it as fatal to the turn.
func (g *GeminiService) Recommend(ctx context.Context, prompt string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrGenerationFailed, err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("%w: model returned empty response", shared.ErrGenerationFailed)
	}

	return text, nil
}
