package config

import (
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	Provider string
	Model    string

	GitHubToken  string
	GeminiAPIKey string
}

const (
	ProviderGitHub = "github"
	ProviderGemini = "gemini"
	ProviderFake   = "fake"
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8081", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	cfg := &Config{
		Port:         *port,
		Env:          env,
		Provider:     resolveProvider(),
		Model:        strings.TrimSpace(os.Getenv("LLM_MODEL")),
		GitHubToken:  strings.TrimSpace(os.Getenv("GITHUB_TOKEN")),
		GeminiAPIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel(cfg.Provider)
	}
	if err := cfg.checkCredentials(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveProvider() string {
	p := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
	switch p {
	case ProviderGitHub, ProviderGemini, ProviderFake:
		return p
	case "":
		return ProviderGitHub
	default:
		return ProviderGitHub
	}
}

func defaultModel(provider string) string {
	switch provider {
	case ProviderGemini:
		return "gemini-2.0-flash"
	default:
		return "gpt-4o"
	}
}

// checkCredentials fails fast at startup when the selected provider's
// secret is missing, instead of on the first trace.
func (c *Config) checkCredentials() error {
	switch c.Provider {
	case ProviderGitHub:
		if c.GitHubToken == "" {
			return errors.New("config: GITHUB_TOKEN is required for the github provider")
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return errors.New("config: GEMINI_API_KEY is required for the gemini provider")
		}
	}
	return nil
}
