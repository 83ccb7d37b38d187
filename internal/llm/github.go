package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"
)

// GitHubModelsClient calls the GitHub Models chat-completions API
// (OpenAI-compatible, hosted on Azure AI inference).
// See: https://docs.github.com/en/github-models
type GitHubModelsClient struct {
	http    *http.Client
	token   string
	model   string
	baseURL string
}

const githubModelsEndpoint = "https://models.inference.ai.azure.com/chat/completions"

// NewGitHubModelsClient creates a client. If token is empty, it falls
// back to the GITHUB_TOKEN env var.
func NewGitHubModelsClient(token, model string) (*GitHubModelsClient, error) {
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return nil, errors.New("llm: GITHUB_TOKEN is not set")
	}
	return &GitHubModelsClient{
		http:    &http.Client{Timeout: 60 * time.Second},
		token:   token,
		model:   model,
		baseURL: githubModelsEndpoint,
	}, nil
}

func (g *GitHubModelsClient) Name() string { return "GitHubModels:" + g.model }
func (g *GitHubModelsClient) Close() error { return nil }

type chatReq struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
type chatResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends system + user messages and returns the first choice's
// message content verbatim.
func (g *GitHubModelsClient) Complete(ctx context.Context, system, user string) (string, error) {
	reqBody := chatReq{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(b))
	if err != nil {
		return "", &TransportError{Provider: g.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.token)

	resp, err := g.http.Do(req)
	if err != nil {
		return "", &TransportError{Provider: g.Name(), Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &TransportError{Provider: g.Name(), Err: errors.New("unexpected status " + resp.Status)}
	}
	var out chatResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &TransportError{Provider: g.Name(), Err: err}
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", &TransportError{Provider: g.Name(), Err: errors.New("empty completion")}
	}
	return out.Choices[0].Message.Content, nil
}
