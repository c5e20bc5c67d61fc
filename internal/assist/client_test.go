package assist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skarun/taskpad/internal/model"
)

func completionResponse(content string) string {
	payload := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func TestDisabledClientMakesNoRequests(t *testing.T) {
	hit := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)
	if client.Enabled() {
		t.Fatal("client without key must be disabled")
	}

	title, err := client.SuggestTitle(context.Background(), "write report")
	if err != nil || title != "" {
		t.Fatalf("disabled suggest must be a no-op, got %q, %v", title, err)
	}
	cat, err := client.Categorize(context.Background(), "t", "d")
	if err != nil || cat != "" {
		t.Fatalf("disabled categorize must be a no-op, got %q, %v", cat, err)
	}
	if hit {
		t.Fatal("disabled client must not touch the network")
	}
}

func TestSuggestTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected auth header %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("expected one user message, got %+v", req.Messages)
		}
		w.Write([]byte(completionResponse("  Write weekly report  ")))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "secret", BaseURL: server.URL}, nil)
	title, err := client.SuggestTitle(context.Background(), "need to put together the weekly status report")
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if title != "Write weekly report" {
		t.Fatalf("expected trimmed suggestion, got %q", title)
	}
}

func TestCategorizeResolvesEnumSubstring(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse("Category: Work stuff")))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "secret", BaseURL: server.URL}, nil)
	cat, err := client.Categorize(context.Background(), "report", "weekly status")
	if err != nil {
		t.Fatalf("categorize failed: %v", err)
	}
	if cat != model.CategoryWork {
		t.Fatalf("expected work, got %q", cat)
	}
}

func TestCategorizeDefaultsToOther(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse("no idea, sorry")))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "secret", BaseURL: server.URL}, nil)
	cat, err := client.Categorize(context.Background(), "t", "d")
	if err != nil {
		t.Fatalf("categorize failed: %v", err)
	}
	if cat != model.CategoryOther {
		t.Fatalf("expected other, got %q", cat)
	}
}

func TestCompleteErrorPaths(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewClient(Config{APIKey: "bad", BaseURL: server.URL}, nil)
		if _, err := client.SuggestTitle(context.Background(), "d"); err == nil {
			t.Fatal("expected error on 401")
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}))
		defer server.Close()

		client := NewClient(Config{APIKey: "k", BaseURL: server.URL}, nil)
		if _, err := client.SuggestTitle(context.Background(), "d"); err == nil {
			t.Fatal("expected decode error")
		}
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": []}`))
		}))
		defer server.Close()

		client := NewClient(Config{APIKey: "k", BaseURL: server.URL}, nil)
		_, err := client.SuggestTitle(context.Background(), "d")
		if !errors.Is(err, ErrNoChoices) {
			t.Fatalf("expected ErrNoChoices, got: %v", err)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := NewClient(Config{APIKey: "k", BaseURL: server.URL, Timeout: 20 * time.Millisecond}, nil)
		if _, err := client.SuggestTitle(context.Background(), "d"); err == nil {
			t.Fatal("expected timeout error")
		}
	})
}
