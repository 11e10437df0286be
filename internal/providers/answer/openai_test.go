package answer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAICompleteSendsMessages(t *testing.T) {
	var got openAIChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("unexpected authorization header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "  the answer  "}},
			},
		})
	}))
	defer srv.Close()

	provider, err := NewOpenAIProvider(OpenAIOptions{APIKey: "sk-test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewOpenAIProvider() error: %v", err)
	}
	text, err := provider.Complete(context.Background(), "system says", "user asks")
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if text != "the answer" {
		t.Fatalf("Complete() = %q, want trimmed answer", text)
	}
	if got.Model != defaultOpenAIModel {
		t.Fatalf("request model = %q, want %q", got.Model, defaultOpenAIModel)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages: %#v", got.Messages)
	}
	if got.Messages[0].Content != "system says" || got.Messages[1].Content != "user asks" {
		t.Fatalf("unexpected message contents: %#v", got.Messages)
	}
}

func TestOpenAICompleteErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	provider, err := NewOpenAIProvider(OpenAIOptions{APIKey: "sk-test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewOpenAIProvider() error: %v", err)
	}
	if _, err := provider.Complete(context.Background(), "s", "u"); err == nil {
		t.Fatalf("Complete() expected error on non-2xx status")
	}
}

func TestNewOpenAIProviderRequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIOptions{}); err == nil {
		t.Fatalf("NewOpenAIProvider() expected error without api key")
	}
}

func TestNormalizeOpenAIModel(t *testing.T) {
	tests := []struct {
		in         string
		want       string
		wantReason string
	}{
		{"", defaultOpenAIModel, ""},
		{"gpt-3.5-turbo", "gpt-3.5-turbo", ""},
		{"GPT_3.5", "gpt-3.5-turbo", "alias"},
		{"gpt4o-mini", "gpt-4o-mini", "alias"},
		{"totally-unknown", defaultOpenAIModel, "defaulted"},
	}
	for _, tt := range tests {
		got, reason := normalizeOpenAIModel(tt.in)
		if got != tt.want || reason != tt.wantReason {
			t.Fatalf("normalizeOpenAIModel(%q) = (%q, %q), want (%q, %q)", tt.in, got, reason, tt.want, tt.wantReason)
		}
	}
}
