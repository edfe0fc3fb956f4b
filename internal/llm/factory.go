package llm

import (
	"context"
	"fmt"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/journal"
)

// NewProvider builds the configured provider. Calls pass through retry,
// then journaling, then the vendor client, so every attempt is journaled.
func NewProvider(ctx context.Context, cfg Config, rec journal.Recorder) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderMock:
		return NewMockProvider(), nil
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithJournal(base, cfg.Provider, rec), cfg.Retry), nil
}
