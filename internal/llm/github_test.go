package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GitHubModelsClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cli, err := NewGitHubModelsClient("test-token", "gpt-4o")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	cli.baseURL = srv.URL
	return cli
}

func TestGitHubModelsClient_Complete(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		var req chatReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != "gpt-4o" {
			t.Errorf("model = %q", req.Model)
		}
		if req.Temperature != Temperature || req.MaxTokens != MaxTokens {
			t.Errorf("sampling params = %v/%v", req.Temperature, req.MaxTokens)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("messages = %+v", req.Messages)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": `{"stimulus":"x"}`}},
			},
		})
	})

	out, err := cli.Complete(context.Background(), "system text", "user text")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != `{"stimulus":"x"}` {
		t.Fatalf("content = %q", out)
	}
}

func TestGitHubModelsClient_NonOKStatus(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	_, err := cli.Complete(context.Background(), "s", "u")
	var tErr *TransportError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestGitHubModelsClient_EmptyChoices(t *testing.T) {
	cli := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})
	_, err := cli.Complete(context.Background(), "s", "u")
	var tErr *TransportError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestNewGitHubModelsClient_RequiresToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	if _, err := NewGitHubModelsClient("", "gpt-4o"); err == nil {
		t.Fatal("expected error without token")
	}
}
