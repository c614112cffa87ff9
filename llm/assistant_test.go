package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func withFakeUpstream(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	old := apiURL
	apiURL = server.URL
	t.Cleanup(func() { apiURL = old })
}

func TestGenerateReply(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	withFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var req OpenAIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[1].Content != "How do I budget?" {
			t.Errorf("messages = %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(OpenAIResponse{
			Choices: []Choice{{Message: Message{Role: "assistant", Content: "Track every expense."}}},
		})
	})

	reply, err := GenerateReply(context.Background(), "How do I budget?")
	if err != nil {
		t.Fatalf("GenerateReply: %v", err)
	}
	if reply != "Track every expense." {
		t.Errorf("reply = %q", reply)
	}
}

func TestGenerateReplyUpstreamError(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	withFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	if _, err := GenerateReply(context.Background(), "hi"); err == nil {
		t.Error("expected error for non-200 upstream response")
	}
}

func TestGenerateReplyNoChoices(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	withFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(OpenAIResponse{})
	})

	if _, err := GenerateReply(context.Background(), "hi"); err == nil {
		t.Error("expected error for empty choices")
	}
}

func TestConfigured(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if Configured() {
		t.Error("Configured() = true without an API key")
	}
	t.Setenv("OPENAI_API_KEY", "k")
	if !Configured() {
		t.Error("Configured() = false with an API key")
	}
}
