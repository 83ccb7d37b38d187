package llm

import (
	"context"
	"fmt"
)

// Sampling parameters are fixed for every trace request.
const (
	Temperature = 0.3
	MaxTokens   = 2000
)

// Client is a chat-completion provider. Complete sends a system
// instruction plus one user message and returns the raw message text.
// The caller owns extracting structured data from it.
type Client interface {
	Name() string
	Complete(ctx context.Context, system, user string) (string, error)
	Close() error
}

// TransportError wraps any failure of the completion call itself
// (network, auth, rate limit). It is terminal for the request; callers
// do not retry.
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: completion call failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
