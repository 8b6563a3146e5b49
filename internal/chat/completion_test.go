package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPCompletionClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req completionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.APIKey != "k" {
			t.Errorf("apiKey = %q", req.APIKey)
		}
		if len(req.Messages) == 0 || req.Messages[len(req.Messages)-1].Role != "user" {
			t.Errorf("last message should be the user turn: %+v", req.Messages)
		}
		json.NewEncoder(w).Encode(completionResponse{Text: "hello"})
	}))
	defer srv.Close()

	client := NewHTTPCompletionClient(srv.URL, "k")
	got, err := client.Complete(context.Background(), []CompletionMessage{
		{Role: "assistant", Content: "hi"},
		{Role: "user", Content: "hello?"},
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != "hello" {
		t.Fatalf("reply = %q", got)
	}
}

func TestHTTPCompletionClient_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPCompletionClient(srv.URL, "k")
	if _, err := client.Complete(context.Background(), nil); err == nil {
		t.Fatal("expected error on 502")
	}
}

func TestStubClient_UsesLastUserTurn(t *testing.T) {
	got, err := StubClient{}.Complete(context.Background(), []CompletionMessage{
		{Role: "user", Content: "מה המחיר?"},
		{Role: "assistant", Content: "..."},
		{Role: "user", Content: "יש לכם שירות חירום?"},
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != cannedReplies[2].text {
		t.Fatalf("expected emergency reply, got %q", got)
	}
}
