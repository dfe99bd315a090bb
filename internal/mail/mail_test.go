package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/azurtoy/voidstation/internal/apperr"
)

func TestClientSend(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emails" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer re-key" {
			t.Error("authorization header missing")
		}
		if r.Header.Get("Idempotency-Key") == "" {
			t.Error("idempotency key missing")
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "email-123"})
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "re-key", Timeout: 2 * time.Second})
	if err != nil {
		t.Fatal(err)
	}

	id, err := c.Send(context.Background(), Message{
		From:    "station@voidspaceplan.dev",
		To:      "owner@example.com",
		Subject: "ping",
		HTML:    "<p>hi</p>",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if id != "email-123" {
		t.Errorf("id = %q", id)
	}
	if got.From != "station@voidspaceplan.dev" || len(got.To) != 1 || got.To[0] != "owner@example.com" {
		t.Errorf("payload = %+v", got)
	}
}

func TestClientSend_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid api key"})
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "bad"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Send(context.Background(), Message{To: "x@example.com"})
	if !errors.Is(err, apperr.ErrUpstream) {
		t.Errorf("err = %v, want ErrUpstream", err)
	}
	if strings.Contains(err.Error(), "invalid api key") {
		t.Error("provider error text must not surface")
	}
}

func TestNewClient_RequiresKey(t *testing.T) {
	if _, err := NewClient(ClientConfig{}); err == nil {
		t.Error("missing API key should fail")
	}
}

func TestFeedbackMessage(t *testing.T) {
	msg := FeedbackMessage("station@voidspaceplan.dev", "owner@example.com", "a@lakeheadu.ca", "hello from orbit")

	if msg.From != "station@voidspaceplan.dev" || msg.To != "owner@example.com" {
		t.Errorf("addressing = %+v", msg)
	}
	if msg.Subject != feedbackSubject {
		t.Errorf("subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.HTML, "a@lakeheadu.ca") || !strings.Contains(msg.HTML, "hello from orbit") {
		t.Error("body missing sender or message")
	}
	if !strings.Contains(msg.HTML, "Signal Report") {
		t.Error("body missing report header")
	}
}

func TestFeedbackMessage_Defaults(t *testing.T) {
	msg := FeedbackMessage("f@x.dev", "t@x.dev", "", "")
	if !strings.Contains(msg.HTML, "Unknown") {
		t.Error("blank sender should default to Unknown")
	}
	if !strings.Contains(msg.HTML, "No message provided") {
		t.Error("blank text should default to placeholder")
	}
}

func TestFeedbackMessage_EscapesHTML(t *testing.T) {
	msg := FeedbackMessage("f@x.dev", "t@x.dev", "a@b.c", `<script>alert("x")</script>`)
	if strings.Contains(msg.HTML, "<script>") {
		t.Error("message content must be escaped")
	}
}
