package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("missing x-api-key header")
		}
		if r.Header.Get("anthropic-version") != APIVersion {
			t.Errorf("missing anthropic-version header")
		}

		var req MessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model == "" {
			t.Errorf("expected model to be filled in from client default")
		}
		if len(req.Messages) != 1 {
			t.Fatalf("expected 1 message, got %d", len(req.Messages))
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "msg_01",
			"role": "assistant",
			"content": [{"type": "text", "text": "Water deeply once a week"}],
			"stop_reason": "end_turn"
		}`))
	}))
	defer ts.Close()

	client := NewClient("test-key")
	client.SetAPIURL(ts.URL)

	resp, err := client.CreateMessage(context.Background(), MessageRequest{
		MaxTokens: 500,
		Messages:  []Message{TextMessage("user", "How often should I water tomatoes?")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resp.FirstText(); got != "Water deeply once a week" {
		t.Errorf("FirstText = %q, want %q", got, "Water deeply once a week")
	}
}

func TestCreateMessageAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"type": "error"}`))
	}))
	defer ts.Close()

	client := NewClient("test-key")
	client.SetAPIURL(ts.URL)

	_, err := client.CreateMessage(context.Background(), MessageRequest{
		MaxTokens: 10,
		Messages:  []Message{TextMessage("user", "hi")},
	})
	if err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestFirstTextSkipsNonText(t *testing.T) {
	resp := &MessageResponse{Content: []ContentBlock{
		{Type: "tool_use"},
		{Type: "text", Text: "answer"},
	}}
	if got := resp.FirstText(); got != "answer" {
		t.Errorf("FirstText = %q, want %q", got, "answer")
	}

	empty := &MessageResponse{}
	if got := empty.FirstText(); got != "" {
		t.Errorf("FirstText on empty response = %q, want empty", got)
	}
}
