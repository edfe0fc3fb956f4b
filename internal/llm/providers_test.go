package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func planSchema() *Schema {
	return &Schema{
		Name: "test-plan",
		Definition: map[string]any{
			"type":       "object",
			"properties": map[string]any{"summary": map[string]any{"type": "string"}},
			"required":   []string{"summary"},
		},
	}
}

func planRequest(schema *Schema) Request {
	return Prompt("You are a maths teacher.", "Summarise progress.", schema, 256)
}

func newTestAnthropic(t *testing.T, status int, body map[string]any) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_1",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 120, "output_tokens": 40},
	}
}

func TestAnthropicProvider_Generate(t *testing.T) {
	p := newTestAnthropic(t, http.StatusOK, anthropicMessage(`{"summary":"Steady progress."}`, "end_turn"))

	resp, err := p.Generate(context.Background(), planRequest(planSchema()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"summary":"Steady progress."}` {
		t.Errorf("Content = %s", resp.Content)
	}
	if resp.Usage != (Usage{InputTokens: 120, OutputTokens: 40, TotalTokens: 160}) {
		t.Errorf("Usage = %+v", resp.Usage)
	}
	if resp.StopReason != StopEnd {
		t.Errorf("StopReason = %q, want %q", resp.StopReason, StopEnd)
	}
}

func TestAnthropicProvider_TruncatedStructuredOutput(t *testing.T) {
	p := newTestAnthropic(t, http.StatusOK, anthropicMessage(`{"summ`, "max_tokens"))

	_, err := p.Generate(context.Background(), planRequest(planSchema()))
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("expected *ErrMaxTokensExceeded, got %T: %v", err, err)
	}
}

func TestAnthropicProvider_SchemaMismatch(t *testing.T) {
	p := newTestAnthropic(t, http.StatusOK, anthropicMessage(`{"other":1}`, "end_turn"))

	_, err := p.Generate(context.Background(), planRequest(planSchema()))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected *ErrInvalidResponse, got %T: %v", err, err)
	}
}

func TestAnthropicProvider_StatusMapping(t *testing.T) {
	errBody := map[string]any{
		"type":  "error",
		"error": map[string]any{"type": "api_error", "message": "boom"},
	}

	p := newTestAnthropic(t, http.StatusTooManyRequests, errBody)
	_, err := p.Generate(context.Background(), planRequest(nil))
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("429: expected *ErrRateLimit, got %T: %v", err, err)
	}

	p = newTestAnthropic(t, http.StatusServiceUnavailable, errBody)
	_, err = p.Generate(context.Background(), planRequest(nil))
	var down *ErrProviderUnavailable
	if !errors.As(err, &down) {
		t.Fatalf("503: expected *ErrProviderUnavailable, got %T: %v", err, err)
	}
}

type chatCapture struct {
	path string
	body map[string]any
}

func newTestChatServer(t *testing.T, status int, reply map[string]any) (*httptest.Server, *chatCapture) {
	t.Helper()
	captured := &chatCapture{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&captured.body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 80, "completion_tokens": 20, "total_tokens": 100},
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	server, captured := newTestChatServer(t, http.StatusOK, chatCompletion(`{"summary":"ok"}`, "stop"))
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-mini", BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "gpt-4o-mini" {
		t.Errorf("ModelID = %q, want alias resolved to gpt-4o-mini", p.ModelID())
	}

	resp, err := p.Generate(context.Background(), planRequest(planSchema()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.TotalTokens != 100 {
		t.Errorf("TotalTokens = %d, want 100", resp.Usage.TotalTokens)
	}

	msgs, _ := captured.body["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("sent %d messages, want system + user", len(msgs))
	}
	format, _ := captured.body["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Errorf("response_format = %v, want json_schema", format)
	}
}

func TestOpenAIProvider_StatusMapping(t *testing.T) {
	errBody := map[string]any{"error": map[string]any{"message": "slow down", "type": "rate_limit"}}
	server, _ := newTestChatServer(t, http.StatusTooManyRequests, errBody)
	p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: server.URL + "/v1"})

	_, err := p.Generate(context.Background(), planRequest(nil))
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected *ErrRateLimit, got %T: %v", err, err)
	}
}

func TestOpenRouterProvider_UsesBaseURLAndRawModel(t *testing.T) {
	server, captured := newTestChatServer(t, http.StatusOK, chatCompletion(`plain text`, "stop"))
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "anthropic/claude-haiku-4-5",
		BaseURL: server.URL + "/api/v1",
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "anthropic/claude-haiku-4-5" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
	if _, err := p.Generate(context.Background(), planRequest(nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(captured.path, "/api/v1/") {
		t.Errorf("request path = %q, want under /api/v1/", captured.path)
	}
	if captured.body["model"] != "anthropic/claude-haiku-4-5" {
		t.Errorf("model sent = %v", captured.body["model"])
	}
}

func TestNewProviders_RequireKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{}); err == nil {
		t.Error("anthropic: expected error without key")
	}
	if _, err := NewOpenAIProvider(OpenAIConfig{}); err == nil {
		t.Error("openai: expected error without key")
	}
	if _, err := NewOpenRouterProvider(OpenRouterConfig{}); err == nil {
		t.Error("openrouter: expected error without key")
	}
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{}); err == nil {
		t.Error("gemini: expected error without key")
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name    string
		aliases map[string]string
		want    string
	}{
		{"claude-haiku", anthropicAliases, "claude-haiku-4-5-20251001"},
		{"gpt-mini", openaiAliases, "gpt-4o-mini"},
		{"gemini-flash", geminiAliases, "gemini-2.5-flash"},
		{"gemini-2.0-flash", geminiAliases, "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.name, tt.aliases); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"chapter": map[string]any{"type": "string", "enum": []string{"Number", "Algebra"}},
			"actions": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"maxItems": 3,
			},
			"score": map[string]any{"type": "integer", "description": "0-100"},
		},
		"required": []any{"chapter"},
	})

	if s.Type != "OBJECT" {
		t.Fatalf("Type = %s, want OBJECT", s.Type)
	}
	if got := s.Properties["chapter"].Enum; len(got) != 2 {
		t.Errorf("chapter enum = %v, want 2 values", got)
	}
	actions := s.Properties["actions"]
	if actions.Type != "ARRAY" || actions.Items == nil || actions.Items.Type != "STRING" {
		t.Errorf("actions = %+v, want ARRAY of STRING", actions)
	}
	if actions.MaxItems == nil || *actions.MaxItems != 3 {
		t.Errorf("actions.MaxItems = %v, want 3", actions.MaxItems)
	}
	if s.Properties["score"].Description != "0-100" {
		t.Errorf("score description = %q", s.Properties["score"].Description)
	}
	if len(s.Required) != 1 || s.Required[0] != "chapter" {
		t.Errorf("Required = %v", s.Required)
	}
}
