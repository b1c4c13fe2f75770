package transform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIClientComplete(t *testing.T) {
	var got chatRequest
	var gotAuth string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != completionsPath {
			t.Errorf("path = %q, want %q", r.URL.Path, completionsPath)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "the reply"}},
			},
		})
	}))
	defer upstream.Close()

	client := NewOpenAIClient(Config{BaseURL: upstream.URL, Model: "gpt-4o", Timeout: 5})

	reply, err := client.Complete(context.Background(), "sk-user-key", "the prompt")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if reply != "the reply" {
		t.Errorf("reply = %q", reply)
	}
	if gotAuth != "Bearer sk-user-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if got.Model != "gpt-4o" {
		t.Errorf("model = %q", got.Model)
	}
	if got.MaxTokens != maxTokens || got.Temperature != temperature {
		t.Errorf("max_tokens = %d, temperature = %v", got.MaxTokens, got.Temperature)
	}
	if len(got.Messages) != 1 || got.Messages[0].Content != "the prompt" {
		t.Errorf("messages = %+v", got.Messages)
	}
}

func TestOpenAIClientUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}))
	defer upstream.Close()

	client := NewOpenAIClient(Config{BaseURL: upstream.URL, Timeout: 5})

	_, err := client.Complete(context.Background(), "sk-bad", "prompt")
	if err == nil {
		t.Fatal("expected error for non-200 upstream status")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error should carry the upstream status: %v", err)
	}
}

func TestOpenAIClientEmptyChoices(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer upstream.Close()

	client := NewOpenAIClient(Config{BaseURL: upstream.URL, Timeout: 5})

	_, err := client.Complete(context.Background(), "sk-test", "prompt")
	if err != ErrEmptyCompletion {
		t.Errorf("err = %v, want ErrEmptyCompletion", err)
	}
}
