package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/toanvui/internal/store"
)

// NewProvider creates a Provider from configuration, using cfg's API key
// for the selected backend. The result is wrapped with event logging
// (when eventRepo is non-nil) and, if enabled, retries.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderMock:
		if cfg.Mock != nil {
			base = cfg.Mock
		} else {
			base = NewMockProvider()
		}
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base
	p := base
	if eventRepo != nil {
		p = WithLogging(p, cfg.Provider, eventRepo)
	}
	if cfg.Retry.MaxAttempts > 1 {
		p = WithRetry(p, cfg.Retry)
	}
	return p, nil
}

// Factory builds a provider for a given API key. The problem generator
// calls it per request so a newly entered or reset key takes effect
// immediately.
type Factory func(ctx context.Context, apiKey string) (Provider, error)

// NewFactory returns a Factory that applies apiKey to cfg before building.
func NewFactory(cfg Config, eventRepo store.EventRepo) Factory {
	return func(ctx context.Context, apiKey string) (Provider, error) {
		return NewProvider(ctx, cfg.WithAPIKey(apiKey), eventRepo)
	}
}
