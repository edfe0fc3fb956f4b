package llm

import (
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, "MATHDASH_LLM_ANTHROPIC_API_KEY"},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "k"}}, ""},
		{"openrouter without key", Config{Provider: ProviderOpenRouter}, "llm.openrouter.api_key"},
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "k"}}, ""},
		{"mock", Config{Provider: ProviderMock}, ""},
		{"unknown", Config{Provider: "llama"}, "unknown llm provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	for _, env := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(env, "")
	}
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider without keys")
	}

	t.Setenv("OPENROUTER_API_KEY", "or")
	t.Setenv("ANTHROPIC_API_KEY", "an")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != ProviderAnthropic || cfg.Anthropic.APIKey != "an" {
		t.Fatalf("got %+v, want anthropic", cfg)
	}
	if cfg.Retry.MaxAttempts != DefaultConfig().Retry.MaxAttempts {
		t.Error("discovered config should carry defaults")
	}
}

func TestConfig_APIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenRouter
	cfg.OpenRouter.APIKey = "or"
	if cfg.APIKey() != "or" {
		t.Errorf("APIKey = %q", cfg.APIKey())
	}
	cfg.Provider = ProviderMock
	if cfg.APIKey() != "" {
		t.Errorf("mock APIKey = %q, want empty", cfg.APIKey())
	}
}

func TestPurposeFrom(t *testing.T) {
	ctx := t.Context()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Errorf("PurposeFrom = %q, want unknown", got)
	}
	if got := PurposeFrom(WithPurpose(ctx, "class-report")); got != "class-report" {
		t.Errorf("PurposeFrom = %q, want class-report", got)
	}
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(t.Context(), Config{Provider: ProviderMock}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q", p.ModelID())
	}

	if _, err := NewProvider(t.Context(), Config{Provider: ProviderGemini}, nil); err == nil {
		t.Error("expected missing key error")
	}

	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenRouter
	cfg.OpenRouter.APIKey = "or"
	p, err = NewProvider(t.Context(), cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(*RetryProvider); !ok {
		t.Errorf("provider = %T, want retry-wrapped", p)
	}
	if p.ModelID() != cfg.OpenRouter.Model {
		t.Errorf("ModelID = %q, want %q", p.ModelID(), cfg.OpenRouter.Model)
	}
}
