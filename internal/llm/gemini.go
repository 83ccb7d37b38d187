package llm

import (
	"context"
	"errors"

	genai "google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client,
// kept as an alternative provider behind the same Client interface.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error { return nil }

func (g *GeminiClient) Complete(ctx context.Context, system, user string) (string, error) {
	temp := float32(Temperature)
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: user}}}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
			Temperature:       &temp,
			MaxOutputTokens:   MaxTokens,
		},
	)
	if err != nil {
		return "", &TransportError{Provider: g.Name(), Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &TransportError{Provider: g.Name(), Err: errors.New("empty completion")}
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
