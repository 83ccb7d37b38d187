package app

import (
	"context"
	"fmt"

	"synapse/internal/gateway/config"
	"synapse/internal/gateway/handler"
	"synapse/internal/gateway/server"
	"synapse/internal/gateway/session"
	"synapse/internal/llm"
	"synapse/internal/trace"
)

type App struct {
	server *server.Server
	client llm.Client
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	client, err := newClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build llm client: %w", err)
	}
	client = llm.Wrap(client, llm.Logging())

	sessions := session.NewStore()
	tracer := trace.New(client)

	traceHandler := handler.NewTraceHandler(tracer, sessions)
	referenceHandler := handler.NewReferenceHandler()
	watchHandler := handler.NewWatchHandler(tracer, sessions)

	mux := server.NewMux(traceHandler, referenceHandler, watchHandler)
	srv := server.New(cfg.Port, mux)

	return &App{
		server: srv,
		client: client,
	}, nil
}

func newClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	switch cfg.Provider {
	case config.ProviderFake:
		return llm.NewFakeClient(), nil
	case config.ProviderGemini:
		return llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.Model)
	default:
		return llm.NewGitHubModelsClient(cfg.GitHubToken, cfg.Model)
	}
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	if err := a.client.Close(); err != nil {
		return err
	}
	return a.server.Shutdown(ctx)
}
